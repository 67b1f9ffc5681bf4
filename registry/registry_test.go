package registry

import (
	"errors"
	"testing"

	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/cat034"
	"github.com/skytrace/asterix/errs"
	"github.com/skytrace/asterix/internal/options"
	"github.com/skytrace/asterix/record"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasCat034And048(t *testing.T) {
	reg := Default()
	require.True(t, reg.Has(34))
	require.True(t, reg.Has(48))
	require.False(t, reg.Has(62))
}

func TestNew_UnknownCategory(t *testing.T) {
	reg := Default()
	_, err := reg.New(1)
	require.True(t, errors.Is(err, errs.ErrUnknownCategory))
}

func TestDecode_DispatchesToRegisteredCatalog(t *testing.T) {
	reg := Default()

	src := cat034.New()
	src.DataSourceIdentifier = &cat034.DataSourceIdentifier{SAC: 25, SIC: 13}

	w := bitio.NewWriter()
	require.NoError(t, reg.Encode(w, src))

	def, err := reg.Decode(34, bitio.NewReader(w.Bytes()))
	require.NoError(t, err)

	out, ok := def.(*cat034.Record)
	require.True(t, ok)
	require.Equal(t, src.DataSourceIdentifier, out.DataSourceIdentifier)
}

func TestDecode_UnknownCategoryLeavesCursorUntouched(t *testing.T) {
	reg := Default()
	r := bitio.NewReader([]byte{0x80, 0xFF})
	_, err := reg.Decode(200, r)
	require.True(t, errors.Is(err, errs.ErrUnknownCategory))
	require.Equal(t, 0, r.BytePos())
}

func TestWithCategory_OverridesDefault(t *testing.T) {
	calls := 0
	reg := Default()
	err := options.Apply(reg, WithCategory(34, func() record.Definition {
		calls++
		return cat034.New()
	}))
	require.NoError(t, err)

	_, err = reg.New(34)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}
