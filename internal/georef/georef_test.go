package georef

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	provinces := c.Provinces()
	assert.Len(t, provinces, 18)

	for _, p := range provinces {
		assert.Equal(t, model.RegionProvince, p.Kind, p.ID)
		assert.NotEmpty(t, p.Name, p.ID)
		assert.Positive(t, p.Population, p.ID)
		assert.Positive(t, p.AreaKM2, p.ID)
	}
}

func TestLookupByID(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	tests := []struct {
		in       string
		wantID   string
		wantKind model.RegionKind
	}{
		{"LUANDA", "LUANDA", model.RegionProvince},
		{"luanda", "LUANDA", model.RegionProvince},
		{"lunda norte", "LUNDA_NORTE", model.RegionProvince},
		{"VIANA", "VIANA", model.RegionMunicipality},
		{"cazenga", "CAZENGA", model.RegionMunicipality},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := c.Lookup(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, p.ID)
			assert.Equal(t, tc.wantKind, p.Kind)
		})
	}
}

func TestLookupFoldsDiacritics(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	for _, in := range []string{"Uíge", "uige", "UIGE", " uige "} {
		p, err := c.Lookup(in)
		require.NoError(t, err, in)
		assert.Equal(t, "UIGE", p.ID, in)
	}

	p, err := c.Lookup("bié")
	require.NoError(t, err)
	assert.Equal(t, "BIE", p.ID)
}

func TestLookupUnknown(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	_, err = c.Lookup("ATLANTIS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown region")
}

func TestMunicipalitiesOf(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	munis, err := c.MunicipalitiesOf("LUANDA")
	require.NoError(t, err)
	require.NotEmpty(t, munis)

	var names []string
	for _, m := range munis {
		assert.Equal(t, model.RegionMunicipality, m.Kind)
		assert.Equal(t, "LUANDA", m.Province)
		names = append(names, m.Name)
	}
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Viana")
	assert.Contains(t, names, "Cazenga")
}

func TestMunicipalitiesOfRejectsNonProvince(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	_, err = c.MunicipalitiesOf("VIANA")
	assert.Error(t, err)

	_, err = c.MunicipalitiesOf("NOWHERE")
	assert.Error(t, err)
}

func TestAllOrdersProvincesFirst(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	all := c.All()
	require.NotEmpty(t, all)

	seenMunicipality := false
	for _, p := range all {
		if p.Kind == model.RegionMunicipality {
			seenMunicipality = true
		} else {
			assert.False(t, seenMunicipality, "province %s listed after a municipality", p.ID)
		}
	}
	assert.True(t, seenMunicipality)
}

func TestFoldKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Uíge", "uige"},
		{"Lunda Norte", "lunda_norte"},
		{"  Bié  ", "bie"},
		{"Moçâmedes", "mocamedes"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, foldKey(tc.in), tc.in)
	}
}

func TestBoundingBox(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	luanda, err := c.Lookup("LUANDA")
	require.NoError(t, err)

	b := BoundingBox(luanda, 50)
	assert.Less(t, b.Min(0), luanda.Coordinates.Longitude)
	assert.Greater(t, b.Max(0), luanda.Coordinates.Longitude)
	assert.Less(t, b.Min(1), luanda.Coordinates.Latitude)
	assert.Greater(t, b.Max(1), luanda.Coordinates.Latitude)

	// Latitude spread is radius/111.32 degrees on both sides.
	assert.InDelta(t, 2*50/111.32, b.Max(1)-b.Min(1), 1e-9)

	// Away from the equator the longitude spread exceeds the latitude spread.
	assert.Greater(t, b.Max(0)-b.Min(0), b.Max(1)-b.Min(1))

	zero := BoundingBox(luanda, 0)
	assert.InDelta(t, luanda.Coordinates.Longitude, zero.Min(0), 1e-9)
	assert.InDelta(t, luanda.Coordinates.Latitude, zero.Max(1), 1e-9)
}

func TestPoint(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	huambo, err := c.Lookup("HUAMBO")
	require.NoError(t, err)

	pt := Point(huambo)
	assert.Equal(t, 4326, pt.SRID())
	assert.InDelta(t, huambo.Coordinates.Longitude, pt.X(), 1e-9)
	assert.InDelta(t, huambo.Coordinates.Latitude, pt.Y(), 1e-9)
}
