package registry

import (
	"fmt"

	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/cat034"
	"github.com/skytrace/asterix/cat048"
	"github.com/skytrace/asterix/errs"
	"github.com/skytrace/asterix/internal/options"
	"github.com/skytrace/asterix/record"
)

// Registry maps a category byte to the constructor for that category's
// Record type, and carries the stream-resync policy DecodeAll consults
// after a packet fails to decode.
type Registry struct {
	catalogs      map[uint8]func() record.Definition
	resyncOnError bool
}

// Option configures a Registry at construction time.
type Option = options.Option[*Registry]

// New builds an empty Registry, defaulting to resync-on-error, and applies
// opts in order.
func New(opts ...Option) (*Registry, error) {
	reg := &Registry{catalogs: make(map[uint8]func() record.Definition), resyncOnError: true}
	if err := options.Apply(reg, opts...); err != nil {
		return nil, err
	}

	return reg, nil
}

// WithCategory registers newRecord as the codec for category at
// construction time, for use with New.
func WithCategory(category uint8, newRecord func() record.Definition) Option {
	return options.NoError(func(reg *Registry) {
		reg.Register(category, newRecord)
	})
}

// WithResyncOnError controls whether a stream-wise decoder (packet.DecodeAll)
// skips a failed packet's declared length and continues (true, the default)
// or stops the iteration at the first error (false).
func WithResyncOnError(resync bool) Option {
	return options.NoError(func(reg *Registry) {
		reg.resyncOnError = resync
	})
}

// ResyncOnError reports the current resync policy.
func (reg *Registry) ResyncOnError() bool {
	return reg.resyncOnError
}

// Default returns a Registry pre-populated with the catalog for every
// category this module implements: 034 and 048.
func Default() *Registry {
	reg, _ := New(
		WithCategory(34, func() record.Definition { return cat034.New() }),
		WithCategory(48, func() record.Definition { return cat048.New() }),
	)

	return reg
}

// Register associates category with the Record constructor newRecord,
// overwriting any prior registration for the same category.
func (reg *Registry) Register(category uint8, newRecord func() record.Definition) {
	reg.catalogs[category] = newRecord
}

// Has reports whether category has a registered codec.
func (reg *Registry) Has(category uint8) bool {
	_, ok := reg.catalogs[category]
	return ok
}

// New constructs an empty Record for category, or returns
// errs.ErrUnknownCategory.
func (reg *Registry) New(category uint8) (record.Definition, error) {
	newRecord, ok := reg.catalogs[category]
	if !ok {
		return nil, fmt.Errorf("category %d: %w", category, errs.ErrUnknownCategory)
	}

	return newRecord(), nil
}

// Decode constructs a fresh Record for category and decodes one record
// body from r into it.
func (reg *Registry) Decode(category uint8, r *bitio.Reader) (record.Definition, error) {
	def, err := reg.New(category)
	if err != nil {
		return nil, err
	}
	if err := record.Decode(r, def); err != nil {
		return nil, fmt.Errorf("category %d: %w", category, err)
	}

	return def, nil
}

// Encode writes def's FSPEC and present Data Items to w.
func (reg *Registry) Encode(w *bitio.Writer, def record.Definition) error {
	return record.Encode(w, def)
}
