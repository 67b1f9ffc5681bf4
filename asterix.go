package asterix

import (
	"iter"

	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/internal/options"
	"github.com/skytrace/asterix/packet"
	"github.com/skytrace/asterix/record"
	"github.com/skytrace/asterix/registry"
)

// Option configures the registry used by the top-level convenience
// functions in this package.
type Option = options.Option[*registry.Registry]

// WithResyncOnError controls DecodeAll's behavior after a packet fails to
// decode: true (the default) skips the failed packet's declared length and
// continues, false stops the iteration.
func WithResyncOnError(resync bool) Option {
	return registry.WithResyncOnError(resync)
}

// WithCategory registers an additional category catalog beyond the
// built-in 034 and 048, or overrides one of them.
func WithCategory(category uint8, newRecord func() record.Definition) Option {
	return registry.WithCategory(category, newRecord)
}

func registryWithDefaults(opts ...Option) (*registry.Registry, error) {
	reg := registry.Default()
	if err := options.Apply(reg, opts...); err != nil {
		return nil, err
	}

	return reg, nil
}

// DecodePacket decodes a single packet from raw, using the built-in 034/048
// catalog with the default resync policy, unless overridden by opts.
func DecodePacket(raw []byte, opts ...Option) (*packet.Packet, error) {
	reg, err := registryWithDefaults(opts...)
	if err != nil {
		return nil, err
	}

	return packet.Decode(bitio.NewReader(raw), reg)
}

// EncodePacket finalizes p's length against the registered catalog and
// serializes it to its wire form.
func EncodePacket(p *packet.Packet, opts ...Option) ([]byte, error) {
	reg, err := registryWithDefaults(opts...)
	if err != nil {
		return nil, err
	}
	if _, err := packet.Finalize(p, reg); err != nil {
		return nil, err
	}

	w := bitio.NewWriter()
	if err := packet.Encode(w, p, reg); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// DecodeAll iterates consecutive packets out of a concatenated stream,
// using the built-in 034/048 catalog unless overridden by opts.
func DecodeAll(data []byte, opts ...Option) iter.Seq2[*packet.Packet, error] {
	reg, err := registryWithDefaults(opts...)
	if err != nil {
		return func(yield func(*packet.Packet, error) bool) { yield(nil, err) }
	}

	return packet.DecodeAll(data, reg)
}
