package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"medalboard/internal/engine"
	"medalboard/internal/models"
)

// Handler serves the dashboard data. Every request asks the store for the
// dataset; after the first load that is a map lookup.
type Handler struct {
	store *engine.Store
	path  string
}

func NewHandler(store *engine.Store, path string) *Handler {
	return &Handler{store: store, path: path}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.GET("/years", h.GetYears)
	api.GET("/years/:year", h.GetYear)
	api.GET("/countries", h.GetCountries)
	api.GET("/ranking", h.GetRanking)
	api.GET("/series", h.GetSeries)
	api.GET("/overview", h.GetOverview)
	api.GET("/view", h.GetView)
}

// --- QUERY PARAMS ---

type rankingQuery struct {
	Year  int    `query:"year" validate:"gte=0"`
	Order string `query:"order"`
}

type seriesQuery struct {
	Countries []string `query:"country" validate:"max=250,dive,max=128"`
}

type viewQuery struct {
	Year       int      `query:"year" validate:"gte=0"`
	Order      string   `query:"order"`
	BarMode    string   `query:"barmode"`
	Countries  []string `query:"country" validate:"max=250,dive,max=128"`
	Hide       bool     `query:"hide"`
	Projection string   `query:"projection"`
	Chart      string   `query:"chart"`
}

func (q viewQuery) selection() models.Selection {
	return models.Selection{
		Year:             q.Year,
		Order:            models.Order(q.Order),
		BarMode:          models.BarMode(q.BarMode),
		Countries:        nonEmpty(q.Countries),
		HideAllCountries: q.Hide,
		Projection:       models.Projection(q.Projection),
		ChartType:        models.ChartType(q.Chart),
	}
}

// nonEmpty drops blank entries such as the one produced by "?country=".
func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// bind fills q from the query string and validates it.
func bind(c echo.Context, q interface{}) error {
	if err := c.Bind(q); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidSelection, err)
	}
	return c.Validate(q)
}

// --- HANDLERS ---

func (h *Handler) Health(c echo.Context) error {
	if !h.store.Loaded(h.path) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetYears(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, engine.ListYears(ds))
}

func (h *Handler) GetCountries(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, engine.ListCountries(ds))
}

// GetYear returns one year's records. An unknown year is an empty 200.
func (h *Handler) GetYear(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 0 {
		return respondError(c, fmt.Errorf("%w: year %q", models.ErrInvalidSelection, c.Param("year")))
	}
	ds, err := h.dataset()
	if err != nil {
		return respondError(c, err)
	}

	slice := engine.YearSlice(ds, year)
	return c.JSON(http.StatusOK, models.YearView{
		Year:          slice.Year,
		HostCity:      slice.HostCity(),
		HostCountry:   slice.HostCountry(),
		HostCities:    orEmpty(slice.HostCities),
		HostCountries: orEmpty(slice.HostCountries),
		Records:       slice.Records,
	})
}

// returns the top 10 of one year
func (h *Handler) GetRanking(c echo.Context) error {
	var q rankingQuery
	if err := bind(c, &q); err != nil {
		return respondError(c, err)
	}
	order, err := models.ParseOrder(q.Order)
	if err != nil {
		return respondError(c, err)
	}
	ds, err := h.dataset()
	if err != nil {
		return respondError(c, err)
	}

	year := q.Year
	if year == 0 {
		if years := engine.ListYears(ds); len(years) > 0 {
			year = years[0]
		}
	}
	slice := engine.YearSlice(ds, year)
	return c.JSON(http.StatusOK, models.RankingView{
		Year:        year,
		HostCity:    slice.HostCity(),
		HostCountry: slice.HostCountry(),
		Order:       order,
		BarMode:     models.BarModeGroup,
		Records:     engine.RankedMedalTable(slice.Records, order),
	})
}

// GetSeries with no country returns every record and selected=false.
func (h *Handler) GetSeries(c echo.Context) error {
	var q seriesQuery
	if err := bind(c, &q); err != nil {
		return respondError(c, err)
	}
	ds, err := h.dataset()
	if err != nil {
		return respondError(c, err)
	}

	countries := nonEmpty(q.Countries)
	series := engine.CountrySeries(ds, countries)
	return c.JSON(http.StatusOK, models.SeriesView{
		Selected:  series.Selected,
		Countries: countries,
		Records:   series.Records,
	})
}

func (h *Handler) GetOverview(c echo.Context) error {
	ds, err := h.dataset()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Overview{Records: engine.FullSeriesByContinent(ds)})
}

// GetView renders the whole dashboard for one widget state.
func (h *Handler) GetView(c echo.Context) error {
	var q viewQuery
	if err := bind(c, &q); err != nil {
		return respondError(c, err)
	}
	ds, err := h.dataset()
	if err != nil {
		return respondError(c, err)
	}

	vm, err := engine.Render(ds, q.selection())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, vm)
}

func (h *Handler) dataset() (*engine.Dataset, error) {
	return h.store.Load(h.path)
}

// respondError maps engine errors onto status codes.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidSelection):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrDataLoad), errors.Is(err, engine.ErrDataSchema):
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
