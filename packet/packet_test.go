package packet

import (
	"errors"
	"testing"

	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/cat034"
	"github.com/skytrace/asterix/cat048"
	"github.com/skytrace/asterix/errs"
	"github.com/skytrace/asterix/registry"
	"github.com/stretchr/testify/require"
)

// TestDecode_Cat034Minimal reproduces the worked example
// "22 00 0B F0 19 0D 02 35 6D FA 60": category 34, length 11, a single
// record with DataSourceIdentifier(sac=25, sic=13), MessageType=SectorCrossing.
func TestDecode_Cat034Minimal(t *testing.T) {
	raw := []byte{0x22, 0x00, 0x0B, 0xF0, 0x19, 0x0D, 0x02, 0x35, 0x6D, 0xFA, 0x60}
	reg := registry.Default()

	p, err := Decode(bitio.NewReader(raw), reg)
	require.NoError(t, err)
	require.Equal(t, byte(34), p.Category)
	require.Equal(t, uint16(11), p.Length)
	require.Len(t, p.Records, 1)

	rec, ok := p.Records[0].(*cat034.Record)
	require.True(t, ok)
	require.Equal(t, uint8(25), rec.DataSourceIdentifier.SAC)
	require.Equal(t, uint8(13), rec.DataSourceIdentifier.SIC)
	require.Equal(t, cat034.MessageTypeSectorCrossing, rec.MessageType.T)
}

func buildCat048Packet(t *testing.T, reg *registry.Registry) *Packet {
	t.Helper()
	r := cat048.New()
	r.DataSourceIdentifier = &cat048.DataSourceIdentifier{SAC: 25, SIC: 13}
	r.TimeOfDay = &cat048.TimeOfDay{Seconds: 27354.602}

	pkt := &Packet{Category: 48}
	pkt.Records = append(pkt.Records, r)
	_, err := Finalize(pkt, reg)
	require.NoError(t, err)

	return pkt
}

func buildCat034Packet(t *testing.T, reg *registry.Registry) *Packet {
	t.Helper()
	r := cat034.New()
	r.DataSourceIdentifier = &cat034.DataSourceIdentifier{SAC: 25, SIC: 13}
	r.MessageType = &cat034.MessageType{T: cat034.MessageTypeNorthMarker}

	pkt := &Packet{Category: 34}
	pkt.Records = append(pkt.Records, r)
	_, err := Finalize(pkt, reg)
	require.NoError(t, err)

	return pkt
}

// TestFinalize_RecomputesLength checks Length == 3 + encoded record size
// and that Finalize is idempotent.
func TestFinalize_RecomputesLength(t *testing.T) {
	reg := registry.Default()
	pkt := buildCat048Packet(t, reg)

	w := bitio.NewWriter()
	require.NoError(t, reg.Encode(w, pkt.Records[0]))
	require.Equal(t, uint16(HeaderSize+len(w.Bytes())), pkt.Length)

	again, err := Finalize(pkt, reg)
	require.NoError(t, err)
	require.Equal(t, pkt.Length, again.Length)
}

// TestEncodeDecode_RoundTrip checks a full packet round-trips through
// Encode/Decode byte-identically.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	reg := registry.Default()
	pkt := buildCat048Packet(t, reg)

	w := bitio.NewWriter()
	require.NoError(t, Encode(w, pkt, reg))

	out, err := Decode(bitio.NewReader(w.Bytes()), reg)
	require.NoError(t, err)
	require.Equal(t, pkt.Category, out.Category)
	require.Equal(t, pkt.Length, out.Length)
	require.Len(t, out.Records, 1)
}

// TestDecodeAll_ConcatenatedStream reproduces scenario 4: four Cat-048
// packets followed by one Cat-034 packet, decode_all yields five packets in
// order [48,48,48,48,34] and consumes the whole buffer.
func TestDecodeAll_ConcatenatedStream(t *testing.T) {
	reg := registry.Default()

	var buf []byte
	for i := 0; i < 4; i++ {
		pkt := buildCat048Packet(t, reg)
		w := bitio.NewWriter()
		require.NoError(t, Encode(w, pkt, reg))
		buf = append(buf, w.Bytes()...)
	}
	cat34Pkt := buildCat034Packet(t, reg)
	w := bitio.NewWriter()
	require.NoError(t, Encode(w, cat34Pkt, reg))
	buf = append(buf, w.Bytes()...)

	var categories []byte
	var decodeErr error
	for p, err := range DecodeAll(buf, reg) {
		if err != nil {
			decodeErr = err
			break
		}
		categories = append(categories, p.Category)
	}

	require.NoError(t, decodeErr)
	require.Equal(t, []byte{48, 48, 48, 48, 34}, categories)
}

// TestDecodeAll_UnknownCategoryResyncs checks that an unregistered category
// byte surfaces an error but does not prevent the remaining stream from
// being read, since the header's declared length is still skippable.
func TestDecodeAll_UnknownCategoryResyncs(t *testing.T) {
	reg := registry.Default()

	cat34Pkt := buildCat034Packet(t, reg)
	w := bitio.NewWriter()
	require.NoError(t, Encode(w, cat34Pkt, reg))
	known := w.Bytes()

	unknown := []byte{200, 0x00, 0x05, 0xAA, 0xBB}

	buf := append(append([]byte{}, unknown...), known...)

	var packets []*Packet
	var errCount int
	for p, err := range DecodeAll(buf, reg) {
		if err != nil {
			errCount++
			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr)
			require.True(t, errors.Is(err, errs.ErrUnknownCategory))
			require.NotZero(t, decErr.Fingerprint)
			continue
		}
		packets = append(packets, p)
	}

	require.Equal(t, 1, errCount)
	require.Len(t, packets, 1)
	require.Equal(t, byte(34), packets[0].Category)
}
