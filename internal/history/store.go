package history

import (
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"LiquiditySentinel/internal/model"
)

// maxRecords caps the persisted history so the file never grows unbounded.
const maxRecords = 400

// Store manages the persisted daily snapshot log. Single-writer: the
// design assumes at most one run at a time; the mutex only guards the
// daemon's command handlers against an in-flight run.
type Store struct {
	mu      sync.Mutex
	path    string
	records []model.DailyRecord
}

// NewStore loads the history file. A missing or malformed file yields an
// empty history rather than an error, so old corruption never blocks a run.
func NewStore(path string) *Store {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("read history file")
		}
		return s
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("history file malformed, starting empty")
		s.records = nil
	}
	return s
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Records returns a copy of the current history.
func (s *Store) Records() []model.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.DailyRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Latest returns the most recent record by date, or false when empty.
func (s *Store) Latest() (model.DailyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return model.DailyRecord{}, false
	}
	best := s.records[0]
	for _, rec := range s.records[1:] {
		if rec.Date > best.Date {
			best = rec
		}
	}
	return best, true
}

// Upsert replaces the record carrying the same date, or appends a new one.
// Past records are never otherwise mutated.
func (s *Store) Upsert(rec model.DailyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].Date == rec.Date {
			s.records[i] = rec
			return
		}
	}
	s.records = append(s.records, rec)
}

// Save sorts by date, trims to the most recent maxRecords entries and
// rewrites the file in full.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.Slice(s.records, func(i, j int) bool { return s.records[i].Date < s.records[j].Date })
	if len(s.records) > maxRecords {
		s.records = s.records[len(s.records)-maxRecords:]
	}

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
