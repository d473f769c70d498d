package cache

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/yangrq1018/holdem-equity/texas"
	"github.com/yangrq1018/holdem-equity/util"
)

var logger = util.GetModuleLogger("cache")

// Entry is the last computed equity together with the question it answers.
type Entry struct {
	ID          string       `json:"id"`
	Fingerprint string       `json:"fingerprint"`
	Hand        string       `json:"hand"`
	Board       string       `json:"board"`
	Opponents   int          `json:"opponents"`
	Trials      int          `json:"trials"`
	Seed        uint64       `json:"seed"`
	Method      texas.Method `json:"method"`
	Equity      texas.Equity `json:"equity"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Fingerprint identifies a question by hand, board and number of opponents.
// Card order inside hand or board does not matter. The trial budget is not
// part of it, so a rerun with another budget still hits.
func Fingerprint(hand, board []texas.Card, opponents int) string {
	return canonical(hand) + "|" + canonical(board) + "|" + strconv.Itoa(opponents)
}

func canonical(cards []texas.Card) string {
	sorted := make([]texas.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Index() > sorted[j].Index()
	})
	var sb strings.Builder
	for _, c := range sorted {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// NewEntry fills the descriptive fields of an entry for hand and board.
func NewEntry(hand, board []texas.Card, opponents int) Entry {
	return Entry{
		ID:          uuid.NewString(),
		Fingerprint: Fingerprint(hand, board, opponents),
		Hand:        texas.FormatCards(hand),
		Board:       texas.FormatCards(board),
		Opponents:   opponents,
		CreatedAt:   time.Now(),
	}
}

// Store keeps only the most recent entry. With a path the entry survives
// between runs as a msgpack file.
type Store struct {
	path string
	mu   sync.Mutex
	last *Entry
}

// Open loads the entry saved at path. A missing file gives an empty store and
// an empty path keeps everything in memory.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	dec := msgpack.NewDecoder(bytes.NewReader(b))
	dec.SetCustomStructTag("json")
	var e Entry
	if err := dec.Decode(&e); err != nil {
		// a corrupt cache is only a miss
		logger.WithError(err).Warnf("ignore unreadable cache file %s", path)
		return s, nil
	}
	s.last = &e
	return s, nil
}

// Lookup returns the saved entry when it answers fp. A stale entry is dropped.
func (s *Store) Lookup(fp string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Entry{}, false
	}
	if s.last.Fingerprint != fp {
		logger.Debugf("invalidate %s, settings changed to %s", s.last.Fingerprint, fp)
		if err := s.invalidate(); err != nil {
			logger.WithError(err).Warn("remove stale cache")
		}
		return Entry{}, false
	}
	return *s.last, true
}

// Save replaces the entry and writes it to disk when the store has a path.
func (s *Store) Save(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &e
	if s.path == "" {
		return nil
	}
	buf := bytes.NewBuffer(nil)
	enc := msgpack.NewEncoder(buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	logger.WithField("id", e.ID).Debugf("saved %s to %s", e.Fingerprint, s.path)
	return nil
}

// Invalidate drops the entry from memory and disk.
func (s *Store) Invalidate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invalidate()
}

func (s *Store) invalidate() error {
	s.last = nil
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
