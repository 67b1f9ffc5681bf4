package asterix

import (
	"testing"

	"github.com/skytrace/asterix/cat034"
	"github.com/skytrace/asterix/cat048"
	"github.com/skytrace/asterix/packet"
	"github.com/stretchr/testify/require"
)

func TestDecodePacket_Cat034Minimal(t *testing.T) {
	raw := []byte{0x22, 0x00, 0x0B, 0xF0, 0x19, 0x0D, 0x02, 0x35, 0x6D, 0xFA, 0x60}

	pkt, err := DecodePacket(raw)
	require.NoError(t, err)
	require.Equal(t, byte(34), pkt.Category)

	rec, ok := pkt.Records[0].(*cat034.Record)
	require.True(t, ok)
	require.Equal(t, uint8(25), rec.DataSourceIdentifier.SAC)
}

func TestEncodePacket_RoundTrip(t *testing.T) {
	r := cat048.New()
	r.DataSourceIdentifier = &cat048.DataSourceIdentifier{SAC: 25, SIC: 13}
	r.AircraftIdentification = &cat048.AircraftIdentification{Identification: "DLH65A "}

	p := &packet.Packet{Category: 48}
	p.Records = append(p.Records, r)

	raw, err := EncodePacket(p)
	require.NoError(t, err)

	out, err := DecodePacket(raw)
	require.NoError(t, err)
	require.Equal(t, byte(48), out.Category)
	got := out.Records[0].(*cat048.Record)
	require.Equal(t, "DLH65A ", got.AircraftIdentification.Identification)
}

func TestDecodeAll_ConcatenatedStream(t *testing.T) {
	mk048 := func() *packet.Packet {
		r := cat048.New()
		r.DataSourceIdentifier = &cat048.DataSourceIdentifier{SAC: 1, SIC: 1}
		p := &packet.Packet{Category: 48}
		p.Records = append(p.Records, r)

		return p
	}
	mk034 := func() *packet.Packet {
		r := cat034.New()
		r.DataSourceIdentifier = &cat034.DataSourceIdentifier{SAC: 1, SIC: 1}
		p := &packet.Packet{Category: 34}
		p.Records = append(p.Records, r)

		return p
	}

	var buf []byte
	for i := 0; i < 4; i++ {
		raw, err := EncodePacket(mk048())
		require.NoError(t, err)
		buf = append(buf, raw...)
	}
	raw, err := EncodePacket(mk034())
	require.NoError(t, err)
	buf = append(buf, raw...)

	var categories []byte
	for pkt, err := range DecodeAll(buf) {
		require.NoError(t, err)
		categories = append(categories, pkt.Category)
	}
	require.Equal(t, []byte{48, 48, 48, 48, 34}, categories)
}
