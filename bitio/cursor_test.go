package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader_ReadUint_ByteAligned(t *testing.T) {
	r := NewReader([]byte{0xAB, 0xCD})

	v, err := r.ReadUint(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xAB), v)

	v, err = r.ReadUint(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xCD), v)
}

func TestReader_ReadUint_CrossesByteBoundary(t *testing.T) {
	// 0xAB 0xCD = 1010_1011 1100_1101
	r := NewReader([]byte{0xAB, 0xCD})

	v, err := r.ReadUint(4)
	require.NoError(t, err)
	require.Equal(t, uint64(0xA), v)

	v, err = r.ReadUint(12)
	require.NoError(t, err)
	require.Equal(t, uint64(0xBCD), v)

	require.Equal(t, 0, r.BitsRemaining())
}

func TestReader_ReadUint_Underflow(t *testing.T) {
	r := NewReader([]byte{0xFF})
	_, err := r.ReadUint(9)
	require.Error(t, err)
}

func TestReader_ReadInt_SignExtension(t *testing.T) {
	// 12-bit field 0xFFF = all ones -> -1 when signed
	r := NewReader([]byte{0xFF, 0xF0})
	v, err := r.ReadInt(12)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)
}

func TestReader_ReadInt_PositiveValue(t *testing.T) {
	// 8-bit 0x7F = +127
	r := NewReader([]byte{0x7F})
	v, err := r.ReadInt(8)
	require.NoError(t, err)
	require.Equal(t, int64(127), v)
}

func TestReader_AlignToByte(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF})
	_, err := r.ReadUint(4)
	require.NoError(t, err)
	require.Error(t, r.AlignToByte())

	_, err = r.ReadUint(4)
	require.NoError(t, err)
	require.NoError(t, r.AlignToByte())
}

func TestWriter_WriteUint_CrossesByteBoundary(t *testing.T) {
	w := NewWriter()
	w.WriteUint(0xA, 4)
	w.WriteUint(0xBCD, 12)
	require.Equal(t, []byte{0xAB, 0xCD}, w.Bytes())
}

func TestWriter_WriteInt_Negative(t *testing.T) {
	w := NewWriter()
	w.WriteInt(-1, 12)
	w.AlignToByte()
	require.Equal(t, []byte{0xFF, 0xF0}, w.Bytes())
}

func TestWriter_AlignToByte_Noop_WhenAligned(t *testing.T) {
	w := NewWriter()
	w.WriteUint(0xAB, 8)
	w.AlignToByte()
	require.Equal(t, []byte{0xAB}, w.Bytes())
}

func TestRoundTrip_UintWidths(t *testing.T) {
	widths := []int{1, 3, 6, 7, 8, 12, 16, 24, 32, 48, 64}
	for _, n := range widths {
		w := NewWriter()
		value := maskLow64(n) &^ 1 // deterministic non-trivial pattern
		w.WriteUint(value, n)
		w.AlignToByte()

		r := NewReader(w.Bytes())
		got, err := r.ReadUint(n)
		require.NoError(t, err)
		require.Equalf(t, value, got, "width=%d", n)
	}
}
