package engine

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"sort"
)

// DiceCount is the number of dice in every roll.
const DiceCount = 5

// Faces is the number of sides on each die.
const Faces = 6

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("engine: crypto/rand unavailable: " + err.Error())
	}
	return int(v.Int64())
}

// NewSeededSource returns a deterministic Source. Two sources built from the
// same seed produce the same sequence of dice.
func NewSeededSource(seed int64) Source {
	return mrand.New(mrand.NewSource(seed))
}

// rollDie draws a single die value in [1, Faces].
func rollDie(src Source) int {
	return src.Intn(Faces) + 1
}

// Roll is the current set of five dice and their hold flags. Held[i] refers
// to Dice[i].
type Roll struct {
	Dice [DiceCount]int
	Held [DiceCount]bool
}

// FreshRoll draws five new dice with every hold cleared.
func FreshRoll(src Source) Roll {
	var r Roll
	for i := range r.Dice {
		r.Dice[i] = rollDie(src)
	}
	return r
}

// NewRoll builds a roll from literal values, all unheld. Values outside
// [1, Faces] are an invariant violation.
func NewRoll(d1, d2, d3, d4, d5 int) Roll {
	r := Roll{Dice: [DiceCount]int{d1, d2, d3, d4, d5}}
	for _, v := range r.Dice {
		invariant(v >= 1 && v <= Faces, "die value %d outside 1..%d", v, Faces)
	}
	return r
}

// Reroll redraws every die that is not held.
func (r *Roll) Reroll(src Source) {
	for i := range r.Dice {
		if !r.Held[i] {
			r.Dice[i] = rollDie(src)
		}
	}
}

// ToggleHold flips the hold flag of die i (zero-based) and reports whether
// the die is now held.
func (r *Roll) ToggleHold(i int) bool {
	invariant(i >= 0 && i < DiceCount, "die index %d outside 0..%d", i, DiceCount-1)
	r.Held[i] = !r.Held[i]
	return r.Held[i]
}

// Sort orders the dice ascending. Holds are positional, so they are cleared.
func (r *Roll) Sort() {
	sort.Ints(r.Dice[:])
	r.Held = [DiceCount]bool{}
}

// counts returns how many dice show each face, indexed by face value.
func (r Roll) counts() [Faces + 1]int {
	var c [Faces + 1]int
	for _, v := range r.Dice {
		c[v]++
	}
	return c
}

func (r Roll) sum() int {
	total := 0
	for _, v := range r.Dice {
		total += v
	}
	return total
}
