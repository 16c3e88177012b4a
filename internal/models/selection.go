package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelection is returned when a widget value is not one of the
// recognized options.
var ErrInvalidSelection = errors.New("invalid selection")

type Order string

const (
	OrderDescending Order = "descending"
	OrderAscending  Order = "ascending"
)

type BarMode string

const (
	BarModeGroup BarMode = "group"
	BarModeStack BarMode = "stack"
)

type Projection string

const (
	ProjectionNaturalEarth    Projection = "natural earth"
	ProjectionOrthographic    Projection = "orthographic"
	ProjectionEquirectangular Projection = "equirectangular"
)

type ChartType string

const (
	ChartChoropleth ChartType = "choropleth"
	ChartBubble     ChartType = "bubble"
)

// Selection is the widget state for a single evaluation. Year 0 means the
// first year the dataset offers.
type Selection struct {
	Year             int
	Order            Order
	BarMode          BarMode
	Countries        []string
	HideAllCountries bool
	Projection       Projection
	ChartType        ChartType
}

// DefaultSelection mirrors the initial state of the dashboard widgets.
func DefaultSelection() Selection {
	return Selection{
		Order:      OrderDescending,
		BarMode:    BarModeGroup,
		Projection: ProjectionNaturalEarth,
		ChartType:  ChartChoropleth,
	}
}

// normalize lowercases and trims a raw widget value; "natural_earth" and
// "natural earth" compare equal afterwards.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", " ")
}

func invalid(kind, value string) error {
	return fmt.Errorf("%w: unknown %s %q", ErrInvalidSelection, kind, value)
}

// ParseOrder parses an order widget value. An empty value selects the default.
func ParseOrder(s string) (Order, error) {
	switch normalize(s) {
	case "", "descending", "desc":
		return OrderDescending, nil
	case "ascending", "asc":
		return OrderAscending, nil
	}
	return "", invalid("order", s)
}

func ParseBarMode(s string) (BarMode, error) {
	switch normalize(s) {
	case "", "group":
		return BarModeGroup, nil
	case "stack":
		return BarModeStack, nil
	}
	return "", invalid("bar mode", s)
}

func ParseProjection(s string) (Projection, error) {
	switch normalize(s) {
	case "", "natural earth":
		return ProjectionNaturalEarth, nil
	case "orthographic":
		return ProjectionOrthographic, nil
	case "equirectangular":
		return ProjectionEquirectangular, nil
	}
	return "", invalid("projection", s)
}

func ParseChartType(s string) (ChartType, error) {
	switch normalize(s) {
	case "", "choropleth":
		return ChartChoropleth, nil
	case "bubble", "bubble map":
		return ChartBubble, nil
	}
	return "", invalid("chart type", s)
}

// Normalize returns s with every enum replaced by its canonical value, or
// ErrInvalidSelection listing each unrecognized one.
func (s Selection) Normalize() (Selection, error) {
	var errs []error
	var err error
	if s.Order, err = ParseOrder(string(s.Order)); err != nil {
		errs = append(errs, err)
	}
	if s.BarMode, err = ParseBarMode(string(s.BarMode)); err != nil {
		errs = append(errs, err)
	}
	if s.Projection, err = ParseProjection(string(s.Projection)); err != nil {
		errs = append(errs, err)
	}
	if s.ChartType, err = ParseChartType(string(s.ChartType)); err != nil {
		errs = append(errs, err)
	}
	if s.Year < 0 {
		errs = append(errs, fmt.Errorf("%w: negative year %d", ErrInvalidSelection, s.Year))
	}
	return s, errors.Join(errs...)
}
