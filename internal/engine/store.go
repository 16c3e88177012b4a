package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"medalboard/internal/models"
)

// Dataset holds every record of one source file sorted by Year. It is never
// modified after construction; accessors hand out copies.
type Dataset struct {
	path    string
	records []models.Record
}

// NewDataset copies records and stable-sorts them by Year, so rows of the same
// year keep their file order.
func NewDataset(path string, records []models.Record) *Dataset {
	sorted := make([]models.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })
	return &Dataset{path: path, records: sorted}
}

func (d *Dataset) Path() string { return d.path }

func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of all records in dataset order.
func (d *Dataset) Records() []models.Record {
	out := make([]models.Record, len(d.records))
	copy(out, d.records)
	return out
}

// ReadFunc produces the raw, unsorted records for a path.
type ReadFunc func(path string) ([]models.Record, error)

// Store caches one Dataset per path for the life of the process. A path is
// read at most once; changes to the file afterwards are not picked up.
// Failed reads are not cached.
type Store struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
	flight   singleflight.Group
	read     ReadFunc
}

// NewStore returns an empty store. A nil read defaults to LoadRecords.
func NewStore(read ReadFunc) *Store {
	if read == nil {
		read = LoadRecords
	}
	return &Store{
		datasets: make(map[string]*Dataset),
		read:     read,
	}
}

// Load returns the dataset for path, reading and sorting it on first use.
// Concurrent first loads of one path share a single read.
func (s *Store) Load(path string) (*Dataset, error) {
	if ds, ok := s.cached(path); ok {
		cacheHits.Inc()
		return ds, nil
	}

	v, err, _ := s.flight.Do(path, func() (interface{}, error) {
		// a flight that finished between our lookup and Do already stored it
		if ds, ok := s.cached(path); ok {
			return ds, nil
		}
		cacheMisses.Inc()

		start := time.Now()
		records, err := s.read(path)
		if err != nil {
			loadFailures.Inc()
			if !errors.Is(err, ErrDataLoad) && !errors.Is(err, ErrDataSchema) {
				err = fmt.Errorf("%w: %w", ErrDataLoad, err)
			}
			log.Error().Err(err).Str("path", path).Msg("dataset load failed")
			return nil, err
		}

		ds := NewDataset(path, records)

		s.mu.Lock()
		s.datasets[path] = ds
		s.mu.Unlock()

		elapsed := time.Since(start)
		loadDuration.Observe(elapsed.Seconds())
		log.Info().
			Str("path", path).
			Int("rows", ds.Len()).
			Dur("elapsed", elapsed).
			Msg("dataset loaded")
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dataset), nil
}

// Loaded reports whether path is already cached.
func (s *Store) Loaded(path string) bool {
	_, ok := s.cached(path)
	return ok
}

func (s *Store) cached(path string) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[path]
	return ds, ok
}
