package engine

import "fmt"

// Category is one of the twelve single-use scoring slots.
type Category int

const (
	Aces Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	FourOfKind
	FullHouse
	LittleStraight
	BigStraight
	Yacht
	Chance
)

// CategoryCount is the size of the closed category set.
const CategoryCount = 12

var categoryNames = map[Category]string{
	Aces:           "Aces",
	Twos:           "Twos",
	Threes:         "Threes",
	Fours:          "Fours",
	Fives:          "Fives",
	Sixes:          "Sixes",
	FourOfKind:     "Four Of A Kind",
	FullHouse:      "Full House",
	LittleStraight: "Little Straight",
	BigStraight:    "Big Straight",
	Yacht:          "Yacht",
	Chance:         "Chance",
}

var categoryKeys = map[Category]string{
	Aces:           "aces",
	Twos:           "twos",
	Threes:         "threes",
	Fours:          "fours",
	Fives:          "fives",
	Sixes:          "sixes",
	FourOfKind:     "fourofakind",
	FullHouse:      "fullhouse",
	LittleStraight: "littlestraight",
	BigStraight:    "bigstraight",
	Yacht:          "yacht",
	Chance:         "chance",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CATEGORY_%d", int(c))
}

// Key is the single-word name players type to select the category.
func (c Category) Key() string {
	return categoryKeys[c]
}

// Valid reports whether c is one of the twelve categories.
func (c Category) Valid() bool {
	return c >= Aces && c <= Chance
}

// Index is the one-based number shown on the score sheet.
func (c Category) Index() int {
	return int(c) + 1
}

// Categories lists every category in score sheet order.
func Categories() []Category {
	out := make([]Category, 0, CategoryCount)
	for c := Aces; c <= Chance; c++ {
		out = append(out, c)
	}
	return out
}

// CategoryFromIndex maps a one-based sheet number (1..12) to its category.
func CategoryFromIndex(n int) (Category, bool) {
	c := Category(n - 1)
	if !c.Valid() {
		return 0, false
	}
	return c, true
}

// CategoryFromKey resolves an exact, case-sensitive category key.
func CategoryFromKey(key string) (Category, bool) {
	for c, k := range categoryKeys {
		if k == key {
			return c, true
		}
	}
	return 0, false
}
