package engine

import (
	"medalboard/internal/models"
)

// Render evaluates one selection against ds and returns the data for every
// chart on the dashboard. It holds no state between calls.
func Render(ds *Dataset, sel models.Selection) (*models.ViewModel, error) {
	sel, err := sel.Normalize()
	if err != nil {
		return nil, err
	}

	// 1. Widget options
	years := ListYears(ds)
	year := sel.Year
	if year == 0 && len(years) > 0 {
		year = years[0]
	}

	// 2. Ranking of the chosen year
	slice := YearSlice(ds, year)
	vm := &models.ViewModel{
		Years:     years,
		Countries: ListCountries(ds),
		Ranking: models.RankingView{
			Year:        year,
			HostCity:    slice.HostCity(),
			HostCountry: slice.HostCountry(),
			Order:       sel.Order,
			BarMode:     sel.BarMode,
			Records:     RankedMedalTable(slice.Records, sel.Order),
		},
	}

	// 3. Per-country scatter. With nothing picked the overview already
	// carries every country, so the series stays empty.
	countries := sel.Countries
	if countries == nil {
		countries = []string{}
	}
	vm.Series = models.SeriesView{
		Countries: countries,
		Records:   make([]models.Record, 0),
	}
	if series := CountrySeries(ds, sel.Countries); series.Selected {
		vm.Series.Selected = true
		vm.Series.Records = series.Records
	}

	// 4. Everything, colored by continent
	if !sel.HideAllCountries {
		vm.Overview = &models.Overview{Records: FullSeriesByContinent(ds)}
	}

	// 5. Animated map
	vm.Map = models.MapView{
		Projection: sel.Projection,
		ChartType:  sel.ChartType,
		Frames:     mapFrames(ds),
	}

	return vm, nil
}

// mapFrames splits the year-sorted dataset into one frame per year.
func mapFrames(ds *Dataset) []models.MapFrame {
	frames := make([]models.MapFrame, 0)
	for _, r := range ds.records {
		if n := len(frames); n == 0 || frames[n-1].Year != r.Year {
			frames = append(frames, models.MapFrame{Year: r.Year})
		}
		last := &frames[len(frames)-1]
		last.Records = append(last.Records, r)
	}
	return frames
}
