package engine

import "errors"

// ErrCategoryUsed is returned when a category already holds a score.
var ErrCategoryUsed = errors.New("category already used")

// LedgerView is the read side of a Ledger.
type LedgerView interface {
	Score(c Category) (int, bool)
	Total() int
	Len() int
	IsFull() bool
}

var _ LedgerView = (*Ledger)(nil)

// Ledger records at most one score per category.
type Ledger struct {
	scores map[Category]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{scores: make(map[Category]int, CategoryCount)}
}

// Record scores roll in category c. It fails with ErrCategoryUsed, leaving
// the ledger untouched, when c was scored before.
func (l *Ledger) Record(c Category, roll Roll) (int, error) {
	invariant(c.Valid(), "category %d outside 0..%d", int(c), CategoryCount-1)
	if _, used := l.scores[c]; used {
		return 0, ErrCategoryUsed
	}
	points := Evaluate(roll, c)
	l.scores[c] = points
	return points, nil
}

// Score returns the recorded points for c and whether c has been scored.
func (l *Ledger) Score(c Category) (int, bool) {
	points, ok := l.scores[c]
	return points, ok
}

// Total is the sum of every recorded score.
func (l *Ledger) Total() int {
	total := 0
	for _, points := range l.scores {
		total += points
	}
	return total
}

// Len is the number of categories scored so far.
func (l *Ledger) Len() int {
	return len(l.scores)
}

// IsFull reports whether all twelve categories are scored.
func (l *Ledger) IsFull() bool {
	return len(l.scores) == CategoryCount
}

// Reset clears every recorded score.
func (l *Ledger) Reset() {
	l.scores = make(map[Category]int, CategoryCount)
}
