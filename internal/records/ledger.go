// Package records keeps the high score list: the best final cash amounts,
// highest first, stored as a JSON array of integers.
package records

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/arcanaland/twentyone/internal/fileutil"
	"github.com/charmbracelet/log"
)

// MaxRecords is the number of scores the ledger keeps
const MaxRecords = 15

var (
	// ErrStorageUnavailable means the records file is missing or unreadable
	ErrStorageUnavailable = errors.New("records storage unavailable")
	// ErrMalformedLedger means the records file is not a JSON array of integers
	ErrMalformedLedger = errors.New("malformed records file")
)

// Ledger is the persisted high score list
type Ledger struct {
	mu      sync.Mutex
	path    string
	records []int
	logger  *log.Logger
}

// Option configures a Ledger
type Option func(*Ledger)

// WithLogger sets the logger used for ledger writes
func WithLogger(logger *log.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// Load reads the ledger stored at path. The file must exist; use Init to create
// an empty one.
func Load(path string, opts ...Option) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, path, err)
	}

	var list []int
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedLedger, path, err)
	}

	l := &Ledger{
		path:    path,
		records: normalize(list),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.logger.Debug("loaded records", "path", path, "count", len(l.records))
	return l, nil
}

// Init creates an empty records file at path unless one already exists
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, path, err)
	}
	return write(path, nil)
}

// Path returns the file the ledger is stored in
func (l *Ledger) Path() string {
	return l.path
}

// Records returns a copy of the scores, highest first
func (l *Ledger) Records() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.records)
}

// AddTry records a final score, keeps the best MaxRecords and saves the ledger.
// Scores of zero or less are not recorded.
func (l *Ledger) AddTry(score int) error {
	if score <= 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = normalize(append(l.records, score))
	l.logger.Info("recorded score", "score", score, "rank", slices.Index(l.records, score)+1)
	return l.saveLocked()
}

// Reset removes every score and saves the empty ledger
func (l *Ledger) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = l.records[:0]
	l.logger.Info("reset records", "path", l.path)
	return l.saveLocked()
}

// Save writes the ledger to its file
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.saveLocked()
}

func (l *Ledger) saveLocked() error {
	return write(l.path, l.records)
}

func write(path string, records []int) error {
	if records == nil {
		records = []int{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding records: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("error saving records to %s: %w", path, err)
	}
	return nil
}

// normalize sorts descending and drops everything past MaxRecords
func normalize(list []int) []int {
	slices.SortFunc(list, func(a, b int) int { return cmp.Compare(b, a) })
	if len(list) > MaxRecords {
		list = list[:MaxRecords]
	}
	return list
}
