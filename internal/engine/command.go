package engine

// Command is the closed set of player commands. Only types in this file
// implement it.
type Command interface {
	command()
}

// RollCmd rerolls every unheld die.
type RollCmd struct{}

// SortCmd sorts the dice ascending and clears holds.
type SortCmd struct{}

// ScoreCmd submits the current roll to a category.
type ScoreCmd struct {
	Category Category
}

// HoldCmd toggles the hold flag of a zero-based die index.
type HoldCmd struct {
	Die int
}

// NewCmd starts a new game.
type NewCmd struct{}

// QuitCmd ends the control loop. The engine never applies it.
type QuitCmd struct{}

// HelpCmd carries help text for the player.
type HelpCmd struct {
	Text string
}

// UnrecognizedCmd carries the reason an input line was rejected.
type UnrecognizedCmd struct {
	Reason string
}

func (RollCmd) command()         {}
func (SortCmd) command()         {}
func (ScoreCmd) command()        {}
func (HoldCmd) command()         {}
func (NewCmd) command()          {}
func (QuitCmd) command()         {}
func (HelpCmd) command()         {}
func (UnrecognizedCmd) command() {}
