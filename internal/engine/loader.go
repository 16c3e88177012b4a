package engine

import (
	"bytes"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/csv"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/rs/zerolog/log"

	"medalboard/internal/models"
)

// Source column names.
const (
	colYear        = "Year"
	colHostCity    = "Host_city"
	colHostCountry = "Host_country"
	colCountryName = "Country_Name"
	colCountryCode = "Country_Code"
	colContinent   = "Continent"
	colGold        = "Gold"
	colSilver      = "Silver"
	colBronze      = "Bronze"
	colTotalMedals = "Total_Medals"
)

// RequiredColumns lists the header names every dataset must carry.
var RequiredColumns = []string{
	colYear, colHostCity, colHostCountry, colCountryName, colCountryCode,
	colContinent, colGold, colSilver, colBronze, colTotalMedals,
}

// rows per Arrow record batch
const chunkRows = 4096

// LoadRecords is the backing read used by Store: it reads the whole file and
// decodes it. Row order is the file order.
func LoadRecords(path string) ([]models.Record, error) {
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	records, err := ParseRecords(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("rows", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("dataset parsed")
	return records, nil
}

// ParseRecords decodes CSV content with a header row. Extra columns are
// ignored; column order does not matter.
func ParseRecords(content []byte) ([]models.Record, error) {
	header, err := readHeader(content)
	if err != nil {
		return nil, err
	}

	// A. Map header -> position, check nothing required is missing
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrDataSchema, strings.Join(missing, ", "))
	}

	// B. Every column is decoded as text and integers are parsed per row, so
	// padding is trimmed the same way in all columns. Empty cells are null.
	fields := make([]arrow.Field, len(header))
	for i, name := range header {
		fields[i] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	r := csv.NewReader(bytes.NewReader(content), schema,
		csv.WithHeader(true),
		csv.WithChunk(chunkRows),
		csv.WithNullReader(true, ""),
		csv.WithAllocator(memory.DefaultAllocator),
	)
	defer r.Release()

	// C. Decode batches
	records := make([]models.Record, 0)
	for r.Next() {
		batch := r.Record()
		cols := columnsFor(batch, index)
		for i := 0; i < int(batch.NumRows()); i++ {
			rec, err := cols.record(i)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %w", ErrDataLoad, len(records)+1, err)
			}
			records = append(records, rec)
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	return records, nil
}

// readHeader returns the trimmed column names of the first CSV line.
func readHeader(content []byte) ([]string, error) {
	header, err := stdcsv.NewReader(bytes.NewReader(content)).Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file, no header row", ErrDataSchema)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrDataLoad, err)
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}
	return header, nil
}

type recordColumns struct {
	year, gold, silver, bronze, total *array.String

	hostCity, hostCountry, countryName, countryCode, continent *array.String
}

func columnsFor(batch arrow.Record, index map[string]int) recordColumns {
	col := func(name string) *array.String { return batch.Column(index[name]).(*array.String) }

	return recordColumns{
		year:        col(colYear),
		gold:        col(colGold),
		silver:      col(colSilver),
		bronze:      col(colBronze),
		total:       col(colTotalMedals),
		hostCity:    col(colHostCity),
		hostCountry: col(colHostCountry),
		countryName: col(colCountryName),
		countryCode: col(colCountryCode),
		continent:   col(colContinent),
	}
}

func (c recordColumns) record(i int) (models.Record, error) {
	year := stringAt(c.year, i)
	if year == "" {
		return models.Record{}, errors.New("empty Year")
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return models.Record{}, fmt.Errorf("%s %q is not an integer", colYear, year)
	}

	rec := models.Record{
		Year:        y,
		HostCity:    stringAt(c.hostCity, i),
		HostCountry: stringAt(c.hostCountry, i),
		CountryName: stringAt(c.countryName, i),
		CountryCode: stringAt(c.countryCode, i),
		Continent:   stringAt(c.continent, i),
	}

	counts := []struct {
		name string
		col  *array.String
		dst  *int
	}{
		{colGold, c.gold, &rec.Gold},
		{colSilver, c.silver, &rec.Silver},
		{colBronze, c.bronze, &rec.Bronze},
		{colTotalMedals, c.total, &rec.TotalMedals},
	}
	for _, cnt := range counts {
		n, err := countAt(cnt.col, i)
		if err != nil {
			return models.Record{}, fmt.Errorf("%s: %w", cnt.name, err)
		}
		if n < 0 {
			return models.Record{}, fmt.Errorf("negative %s count for %q", cnt.name, rec.CountryName)
		}
		*cnt.dst = n
	}
	return rec, nil
}

// countAt reads a medal count; an empty cell counts as zero.
func countAt(col *array.String, i int) (int, error) {
	v := stringAt(col, i)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", v)
	}
	return n, nil
}

// stringAt returns the trimmed cell; null cells read as "".
func stringAt(col *array.String, i int) string {
	if col.IsNull(i) {
		return ""
	}
	return strings.TrimSpace(col.Value(i))
}
