package catalog

import (
	"strings"
	"testing"

	"github.com/skytrace/asterix/cat034"
	"github.com/stretchr/testify/require"
)

func TestDescribe_ReportsPresenceByFRN(t *testing.T) {
	r := cat034.New()
	r.DataSourceIdentifier = &cat034.DataSourceIdentifier{SAC: 1, SIC: 2}

	desc := Describe(r)
	require.Len(t, desc.Slots, 12)
	require.Equal(t, 1, desc.Slots[0].FRN)
	require.True(t, desc.Slots[0].Present)
	require.Equal(t, 2, desc.Slots[1].FRN)
	require.False(t, desc.Slots[1].Present)
}

func TestDescription_YAML_RendersFRNs(t *testing.T) {
	r := cat034.New()
	desc := Describe(r)

	out, err := desc.YAML()
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "frn:"))
}
