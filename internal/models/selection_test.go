package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsers(t *testing.T) {
	tests := map[string]struct {
		parse   func(string) (string, error)
		in      string
		want    string
		wantErr bool
	}{
		"order default":       {parse: wrap(ParseOrder), in: "", want: "descending"},
		"order ascending":     {parse: wrap(ParseOrder), in: " Ascending ", want: "ascending"},
		"order short":         {parse: wrap(ParseOrder), in: "desc", want: "descending"},
		"order bad":           {parse: wrap(ParseOrder), in: "random", wantErr: true},
		"barmode stack":       {parse: wrap(ParseBarMode), in: "STACK", want: "stack"},
		"barmode bad":         {parse: wrap(ParseBarMode), in: "overlay", wantErr: true},
		"projection spaced":   {parse: wrap(ParseProjection), in: "natural earth", want: "natural earth"},
		"projection snake":    {parse: wrap(ParseProjection), in: "natural_earth", want: "natural earth"},
		"projection ortho":    {parse: wrap(ParseProjection), in: "orthographic", want: "orthographic"},
		"projection bad":      {parse: wrap(ParseProjection), in: "mercator", wantErr: true},
		"chart bubble map":    {parse: wrap(ParseChartType), in: "Bubble map", want: "bubble"},
		"chart choropleth":    {parse: wrap(ParseChartType), in: "Choropleth", want: "choropleth"},
		"chart bad":           {parse: wrap(ParseChartType), in: "pie", wantErr: true},
		"projection equirect": {parse: wrap(ParseProjection), in: "equirectangular", want: "equirectangular"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.parse(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func wrap[T ~string](f func(string) (T, error)) func(string) (string, error) {
	return func(s string) (string, error) {
		v, err := f(s)
		return string(v), err
	}
}

func TestSelection_Normalize(t *testing.T) {
	got, err := Selection{Order: "ASC", Projection: "natural_earth"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, OrderAscending, got.Order)
	assert.Equal(t, BarModeGroup, got.BarMode)
	assert.Equal(t, ProjectionNaturalEarth, got.Projection)
	assert.Equal(t, ChartChoropleth, got.ChartType)

	_, err = Selection{Order: "up", ChartType: "pie"}.Normalize()
	require.ErrorIs(t, err, ErrInvalidSelection)
	assert.Contains(t, err.Error(), `unknown order "up"`)
	assert.Contains(t, err.Error(), `unknown chart type "pie"`)
}

func TestRecord_MedalSum(t *testing.T) {
	r := Record{Gold: 3, Silver: 2, Bronze: 1, TotalMedals: 100}
	assert.Equal(t, 6, r.MedalSum())
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()
	normalized, err := sel.Normalize()
	require.NoError(t, err)
	assert.Equal(t, sel, normalized)
}
