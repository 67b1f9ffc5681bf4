package fspec

import (
	"testing"

	"github.com/skytrace/asterix/bitio"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPosition_FRN1_IsFirstBitOfFirstOctet(t *testing.T) {
	octet, mask := Position(1)
	require.Equal(t, 0, octet)
	require.Equal(t, byte(0x80), mask)
}

func TestPosition_FRN7_IsLastUsableBitOfFirstOctet(t *testing.T) {
	octet, mask := Position(7)
	require.Equal(t, 0, octet)
	require.Equal(t, byte(0x01)<<1, mask) // bit 1, not bit 0 (FX)
}

func TestPosition_FRN8_RollsToSecondOctet(t *testing.T) {
	octet, mask := Position(8)
	require.Equal(t, 1, octet)
	require.Equal(t, byte(0x80), mask)
}

func TestBuilder_SingleFRN_NoFXBit(t *testing.T) {
	b := NewBuilder()
	b.Set(1)
	got := b.Finalize()
	require.Equal(t, []byte{0x80}, got)
}

func TestBuilder_FRNAcrossOctets_SetsFXOnNonFinal(t *testing.T) {
	b := NewBuilder()
	b.Set(1)
	b.Set(8)
	got := b.Finalize()
	require.Equal(t, []byte{0x81, 0x80}, got)
}

func TestBuilder_TrimsTrailingZeroOctets(t *testing.T) {
	b := NewBuilder()
	b.Set(1)
	b.Set(8) // forces a second octet to exist
	b.octets[1] = 0
	got := b.Finalize()
	require.Equal(t, []byte{0x80}, got)
}

func TestBuilder_EmptyFinalizesToSingleZeroOctet(t *testing.T) {
	b := NewBuilder()
	got := b.Finalize()
	require.Equal(t, []byte{0x00}, got)
}

func TestRead_StopsAtClearFXBit(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteUint(0x81, 8)
	w.WriteUint(0x80, 8)
	w.WriteUint(0xFF, 8) // trailing garbage must not be consumed
	r := bitio.NewReader(w.Bytes())

	got, err := Read(r)
	require.NoError(t, err)
	require.Equal(t, []byte{0x81, 0x80}, got)
	require.Equal(t, 8, r.BitsRemaining())
}

func TestRead_RejectsEmptyFSPEC(t *testing.T) {
	// Never legal: a record always has >=1 FSPEC octet. Read from an
	// empty buffer, where no FSPEC octet is present at all.
	r := bitio.NewReader([]byte{})
	_, err := Read(r)
	require.Error(t, err)
}

func TestIsPresent_RoundTripsWithBuilder(t *testing.T) {
	b := NewBuilder()
	b.Set(1)
	b.Set(5)
	b.Set(9)
	bitmap := b.Finalize()

	require.True(t, IsPresent(bitmap, 1))
	require.True(t, IsPresent(bitmap, 5))
	require.True(t, IsPresent(bitmap, 9))
	require.False(t, IsPresent(bitmap, 2))
	require.False(t, IsPresent(bitmap, 100))
}

func TestRapid_Builder_ReadWriteRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 20).Draw(t, "count")
		frns := make(map[int]bool)
		b := NewBuilder()
		for range count {
			frn := rapid.IntRange(1, 50).Draw(t, "frn")
			frns[frn] = true
			b.Set(frn)
		}
		bitmap := b.Finalize()

		w := bitio.NewWriter()
		Write(w, bitmap)
		r := bitio.NewReader(w.Bytes())
		readBack, err := Read(r)
		require.NoError(t, err)
		require.Equal(t, bitmap, readBack)

		for frn := range frns {
			require.True(t, IsPresent(readBack, frn))
		}
	})
}
