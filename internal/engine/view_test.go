package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medalboard/internal/models"
)

func TestRender_Defaults(t *testing.T) {
	ds := rio2016()

	vm, err := Render(ds, models.Selection{})
	require.NoError(t, err)

	assert.Equal(t, []int{2012, 2016}, vm.Years)
	assert.Equal(t, []string{"CHN", "GBR", "USA"}, vm.Countries)

	// year 0 falls back to the first listed year
	assert.Equal(t, 2012, vm.Ranking.Year)
	assert.Equal(t, "London", vm.Ranking.HostCity)
	assert.Equal(t, "United Kingdom", vm.Ranking.HostCountry)
	assert.Equal(t, models.OrderDescending, vm.Ranking.Order)
	assert.Equal(t, models.BarModeGroup, vm.Ranking.BarMode)
	assert.Equal(t, []string{"GBR"}, names(vm.Ranking.Records))

	assert.False(t, vm.Series.Selected)
	assert.Empty(t, vm.Series.Records)
	require.NotNil(t, vm.Series.Countries)

	raw, err := json.Marshal(vm.Series)
	require.NoError(t, err)
	assert.JSONEq(t, `{"selected":false,"countries":[],"records":[]}`, string(raw))

	require.NotNil(t, vm.Overview)
	assert.Len(t, vm.Overview.Records, 4)

	assert.Equal(t, models.ProjectionNaturalEarth, vm.Map.Projection)
	assert.Equal(t, models.ChartChoropleth, vm.Map.ChartType)
}

func TestRender_Selection(t *testing.T) {
	ds := rio2016()

	vm, err := Render(ds, models.Selection{
		Year:             2016,
		Order:            "Ascending",
		BarMode:          models.BarModeStack,
		Countries:        []string{"GBR"},
		HideAllCountries: true,
		Projection:       "natural_earth",
		ChartType:        "Bubble map",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"GBR", "CHN", "USA"}, names(vm.Ranking.Records))
	assert.Equal(t, models.OrderAscending, vm.Ranking.Order)
	assert.Equal(t, models.BarModeStack, vm.Ranking.BarMode)

	assert.True(t, vm.Series.Selected)
	assert.Equal(t, []int{2012, 2016}, []int{vm.Series.Records[0].Year, vm.Series.Records[1].Year})

	assert.Nil(t, vm.Overview)

	assert.Equal(t, models.ProjectionNaturalEarth, vm.Map.Projection)
	assert.Equal(t, models.ChartBubble, vm.Map.ChartType)
}

func TestRender_AbsentYearAndCountry(t *testing.T) {
	vm, err := Render(rio2016(), models.Selection{Year: 1980, Countries: []string{"Atlantis"}})
	require.NoError(t, err)

	assert.Equal(t, 1980, vm.Ranking.Year)
	assert.Empty(t, vm.Ranking.Records)
	assert.Equal(t, "", vm.Ranking.HostCity)
	assert.True(t, vm.Series.Selected)
	assert.Empty(t, vm.Series.Records)
}

func TestRender_InvalidSelection(t *testing.T) {
	tests := map[string]models.Selection{
		"order":      {Order: "sideways"},
		"bar mode":   {BarMode: "overlay"},
		"projection": {Projection: "mercator"},
		"chart type": {ChartType: "pie"},
		"year":       {Year: -4},
	}

	for name, sel := range tests {
		t.Run(name, func(t *testing.T) {
			vm, err := Render(rio2016(), sel)
			assert.Nil(t, vm)
			assert.ErrorIs(t, err, ErrInvalidSelection)
		})
	}
}

func TestRender_MapFrames(t *testing.T) {
	vm, err := Render(rio2016(), models.DefaultSelection())
	require.NoError(t, err)

	require.Len(t, vm.Map.Frames, 2)
	assert.Equal(t, 2012, vm.Map.Frames[0].Year)
	assert.Len(t, vm.Map.Frames[0].Records, 1)
	assert.Equal(t, 2016, vm.Map.Frames[1].Year)
	assert.Equal(t, []string{"USA", "GBR", "CHN"}, names(vm.Map.Frames[1].Records))

	// frames are the only record list the map carries, so they cover everything
	total := 0
	for _, f := range vm.Map.Frames {
		total += len(f.Records)
	}
	assert.Equal(t, rio2016().Len(), total)
}

func TestRender_EmptyDataset(t *testing.T) {
	vm, err := Render(NewDataset("empty", nil), models.Selection{})
	require.NoError(t, err)

	assert.Empty(t, vm.Years)
	assert.Equal(t, 0, vm.Ranking.Year)
	assert.Empty(t, vm.Ranking.Records)
	assert.Empty(t, vm.Map.Frames)
}
