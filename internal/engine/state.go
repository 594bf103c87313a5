package engine

import "fmt"

// TurnState is the position of the game within a turn.
type TurnState int

const (
	FirstRoll TurnState = iota
	SecondRoll
	ThirdRoll
	GameOver
)

var turnStateNames = map[TurnState]string{
	FirstRoll:  "First Roll",
	SecondRoll: "Second Roll",
	ThirdRoll:  "Final Roll",
	GameOver:   "GAME OVER",
}

func (s TurnState) String() string {
	if name, ok := turnStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STATE_%d", int(s))
}

// next is the state after one more roll. Only FirstRoll and SecondRoll can
// advance; anything else reaching here is a control flow defect.
func (s TurnState) next() TurnState {
	switch s {
	case FirstRoll:
		return SecondRoll
	case SecondRoll:
		return ThirdRoll
	case ThirdRoll:
		invariant(false, "cannot advance from the final roll without scoring")
	case GameOver:
		invariant(false, "cannot roll after the game is over")
	}
	invariant(false, "unknown turn state %d", int(s))
	return s
}
