package prim

import (
	"testing"

	"github.com/skytrace/asterix/bitio"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIA5_ASCII_RoundTrip_ValidAlphabet(t *testing.T) {
	valid := " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, c := range []byte(valid) {
		code := ASCIIToIA5(c)
		got := IA5ToASCII(code)
		require.Equalf(t, c, got, "round trip broke for %q", c)
	}
}

func TestIA5_UnknownASCII_MapsToQuestionMark(t *testing.T) {
	for _, c := range []byte{'_', '!', '@', 'a', 'z', 0x00, 0xFF} {
		code := ASCIIToIA5(c)
		require.Equal(t, byte('?'), IA5ToASCII(code))
	}
}

func TestIA5_UnknownCode_MapsToQuestionMark(t *testing.T) {
	for code := range uint8(64) {
		got := IA5ToASCII(code)
		if got == '?' {
			continue
		}
		require.Contains(t, " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", string(got))
	}
}

func TestRapid_IA5_ValidAlphabetRoundTrips(t *testing.T) {
	const alphabet = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	rapid.Check(t, func(t *rapid.T) {
		idx := rapid.IntRange(0, len(alphabet)-1).Draw(t, "idx")
		c := alphabet[idx]
		require.Equal(t, c, IA5ToASCII(ASCIIToIA5(c)))
	})
}

func TestWriteReadIA5String_RoundTrips(t *testing.T) {
	w := bitio.NewWriter()
	WriteIA5String(w, "KL204", 7)
	w.AlignToByte()

	r := bitio.NewReader(w.Bytes())
	got, err := ReadIA5String(r, 7)
	require.NoError(t, err)
	require.Equal(t, "KL204  ", got)
}
