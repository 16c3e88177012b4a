package engine

import (
	"sort"
	"strings"

	"medalboard/internal/models"
)

// TopN is how many countries the ranking keeps.
const TopN = 10

// ListYears returns the distinct years in ascending order.
func ListYears(ds *Dataset) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, r := range ds.records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	sort.Ints(years)
	return years
}

// ListCountries returns the distinct country names in ascending order.
func ListCountries(ds *Dataset) []string {
	seen := make(map[string]struct{})
	countries := make([]string, 0)
	for _, r := range ds.records {
		if _, ok := seen[r.CountryName]; ok {
			continue
		}
		seen[r.CountryName] = struct{}{}
		countries = append(countries, r.CountryName)
	}
	sort.Strings(countries)
	return countries
}

// Slice is every record of a single year plus who hosted it.
type Slice struct {
	Year    int
	Records []models.Record
	// Distinct non-empty host values in first-seen order. More than one entry
	// means the source disagrees with itself for that year.
	HostCities    []string
	HostCountries []string
}

// HostCity is the caption form of HostCities.
func (s Slice) HostCity() string { return strings.Join(s.HostCities, ", ") }

func (s Slice) HostCountry() string { return strings.Join(s.HostCountries, ", ") }

func (s Slice) HasHost() bool { return len(s.HostCities) > 0 || len(s.HostCountries) > 0 }

// YearSlice selects the records of year in dataset order. A year that is not
// in the dataset gives an empty slice without host info.
func YearSlice(ds *Dataset, year int) Slice {
	slice := Slice{Year: year, Records: make([]models.Record, 0)}
	for _, r := range ds.records {
		if r.Year != year {
			continue
		}
		slice.Records = append(slice.Records, r)
		slice.HostCities = appendDistinct(slice.HostCities, r.HostCity)
		slice.HostCountries = appendDistinct(slice.HostCountries, r.HostCountry)
	}
	return slice
}

func appendDistinct(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, have := range list {
		if have == v {
			return list
		}
	}
	return append(list, v)
}

// RankedMedalTable orders records by Gold+Silver+Bronze and keeps the first
// TopN. Any order other than ascending ranks highest first. Ties keep their
// input order in both directions.
func RankedMedalTable(records []models.Record, order models.Order) []models.Record {
	ranked := make([]models.Record, len(records))
	copy(ranked, records)

	if order == models.OrderAscending {
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].MedalSum() < ranked[j].MedalSum() })
	} else {
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].MedalSum() > ranked[j].MedalSum() })
	}

	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	return ranked
}

// Series is the result of a country filter. Selected is false when the
// caller asked for no country in particular; Records is then the whole
// dataset. A selection that matches nothing is Selected with no records.
type Series struct {
	Selected bool
	Records  []models.Record
}

// CountrySeries selects the records of the given countries sorted by Year.
func CountrySeries(ds *Dataset, countries []string) Series {
	if len(countries) == 0 {
		return Series{Records: ds.Records()}
	}

	set := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		set[c] = struct{}{}
	}

	out := make([]models.Record, 0)
	for _, r := range ds.records {
		if _, ok := set[r.CountryName]; ok {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })

	return Series{Selected: true, Records: out}
}

// FullSeriesByContinent returns the dataset unchanged; grouping by continent
// is left to the chart.
func FullSeriesByContinent(ds *Dataset) []models.Record {
	return ds.Records()
}
