package models

// Record is one country's medal results for one Olympic year.
// JSON names follow the source CSV columns.
type Record struct {
	Year        int    `json:"Year"`
	HostCity    string `json:"Host_city"`
	HostCountry string `json:"Host_country"`
	CountryName string `json:"Country_Name"`
	CountryCode string `json:"Country_Code"`
	Continent   string `json:"Continent"`
	Gold        int    `json:"Gold"`
	Silver      int    `json:"Silver"`
	Bronze      int    `json:"Bronze"`
	TotalMedals int    `json:"Total_Medals"`
}

// MedalSum is the ranking key. Total_Medals is deliberately not used here.
func (r Record) MedalSum() int {
	return r.Gold + r.Silver + r.Bronze
}

// ViewModel is everything the dashboard draws for one selection.
type ViewModel struct {
	Years     []int       `json:"years"`
	Countries []string    `json:"countries"`
	Ranking   RankingView `json:"ranking"`
	Series    SeriesView  `json:"series"`
	Overview  *Overview   `json:"overview,omitempty"`
	Map       MapView     `json:"map"`
}

// YearView is one year's records with the host caption.
type YearView struct {
	Year          int      `json:"year"`
	HostCity      string   `json:"host_city"`
	HostCountry   string   `json:"host_country"`
	HostCities    []string `json:"host_cities"`
	HostCountries []string `json:"host_countries"`
	Records       []Record `json:"records"`
}

type RankingView struct {
	Year        int      `json:"year"`
	HostCity    string   `json:"host_city"`
	HostCountry string   `json:"host_country"`
	Order       Order    `json:"order"`
	BarMode     BarMode  `json:"bar_mode"`
	Records     []Record `json:"records"`
}

// SeriesView is the per-country scatter. Selected is false when no country
// was picked, in which case the frontend shows its "pick a country" hint.
type SeriesView struct {
	Selected  bool     `json:"selected"`
	Countries []string `json:"countries"`
	Records   []Record `json:"records"`
}

// Overview is the all-countries scatter colored by continent.
type Overview struct {
	Records []Record `json:"records"`
}

type MapView struct {
	Projection Projection `json:"projection"`
	ChartType  ChartType  `json:"chart_type"`
	Frames     []MapFrame `json:"frames"`
}

// MapFrame is one animation step of the medal map.
type MapFrame struct {
	Year    int      `json:"year"`
	Records []Record `json:"records"`
}
