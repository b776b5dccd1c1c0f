package reveal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultLength is the size of the yearly countdown
	DefaultLength = 25
	// DefaultTimeZone is the zone used to decide what "today" is
	DefaultTimeZone = "America/New_York"
)

// Ranked is an item that takes part in a yearly countdown
type Ranked interface {
	Position() int
	ListYear() int
}

// Config holds the countdown parameters
type Config struct {
	Length   int
	Location *time.Location
}

// Gate decides which countdown items are visible on a given day
type Gate struct {
	length int
	loc    *time.Location
}

// New creates a Gate
func New(cfg Config) (*Gate, error) {
	if cfg.Length < 1 {
		return nil, goerr.New("countdown length must be positive", goerr.V("length", cfg.Length))
	}
	if cfg.Location == nil {
		return nil, goerr.New("reference time zone is required")
	}
	return &Gate{length: cfg.Length, loc: cfg.Location}, nil
}

// Length returns the countdown length
func (g *Gate) Length() int {
	return g.length
}

// Location returns the reference time zone
func (g *Gate) Location() *time.Location {
	return g.loc
}

// Today returns now in the reference time zone
func (g *Gate) Today(now time.Time) time.Time {
	return now.In(g.loc)
}

// Decide reports whether the item at rank/year is visible at now. When it is
// not, the returned Placeholder describes the upcoming reveal.
func (g *Gate) Decide(rank, year int, now time.Time) (Placeholder, bool) {
	today := now.In(g.loc)
	if year != today.Year() {
		return Placeholder{}, true
	}
	if today.Month() != time.December {
		return g.placeholder(rank, year), false
	}

	// Ranks equal to daysRemaining are still hidden.
	daysRemaining := g.length - today.Day()
	if rank > daysRemaining {
		return Placeholder{}, true
	}
	return g.placeholder(rank, year), false
}

func (g *Gate) placeholder(rank, year int) Placeholder {
	return Placeholder{
		Rank:       rank,
		Year:       year,
		RevealDate: fmt.Sprintf("Dec %d", g.length+1-rank),
		Pending:    true,
	}
}

// Placeholder stands in for an item that has not been revealed yet
type Placeholder struct {
	Rank       int    `json:"rank"`
	Year       int    `json:"year"`
	RevealDate string `json:"reveal_date"`
	Pending    bool   `json:"pending"`
}

// Status tags an Entry
type Status int

const (
	StatusRevealed Status = iota + 1
	StatusPending
)

func (s Status) String() string {
	switch s {
	case StatusRevealed:
		return "revealed"
	case StatusPending:
		return "pending"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Entry is either a revealed item or a placeholder for it
type Entry[T any] struct {
	Status      Status
	Item        T
	Placeholder Placeholder
}

// Revealed returns the item when the entry is revealed
func (e Entry[T]) Revealed() (T, bool) {
	if e.Status != StatusRevealed {
		var zero T
		return zero, false
	}
	return e.Item, true
}

// Pending returns the placeholder when the entry is still hidden
func (e Entry[T]) Pending() (Placeholder, bool) {
	if e.Status != StatusPending {
		return Placeholder{}, false
	}
	return e.Placeholder, true
}

// MarshalJSON encodes the entry with an explicit status field. An entry
// without a status is an error.
func (e Entry[T]) MarshalJSON() ([]byte, error) {
	switch e.Status {
	case StatusRevealed:
		return json.Marshal(struct {
			Status Status `json:"status"`
			Item   T      `json:"item"`
		}{e.Status, e.Item})
	case StatusPending:
		return json.Marshal(struct {
			Status      Status      `json:"status"`
			Placeholder Placeholder `json:"placeholder"`
		}{e.Status, e.Placeholder})
	default:
		return nil, goerr.New("entry has no status", goerr.V("status", int(e.Status)))
	}
}

// Apply runs the gate over a single item
func Apply[T Ranked](g *Gate, item T, now time.Time) Entry[T] {
	ph, ok := g.Decide(item.Position(), item.ListYear(), now)
	if ok {
		return Entry[T]{Status: StatusRevealed, Item: item}
	}
	return Entry[T]{Status: StatusPending, Placeholder: ph}
}

// ApplyAll runs the gate over items, keeping their order
func ApplyAll[T Ranked](g *Gate, items []T, now time.Time) []Entry[T] {
	entries := make([]Entry[T], 0, len(items))
	for _, item := range items {
		entries = append(entries, Apply(g, item, now))
	}
	return entries
}
