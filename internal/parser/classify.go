package parser

import (
	"strconv"

	"github.com/suderio/yacht-dice/internal/engine"
)

// Classifier maps tokenized input to engine commands. It never touches game
// state.
type Classifier struct {
	catalog *Catalog
}

// NewClassifier returns a classifier using catalog for aliases and help.
func NewClassifier(catalog *Catalog) *Classifier {
	return &Classifier{catalog: catalog}
}

// Classify uses the embedded catalog.
func Classify(tokens []string) engine.Command {
	return NewClassifier(defaultCatalog).Classify(tokens)
}

// Classify always returns a command. Input it cannot understand becomes an
// UnrecognizedCmd carrying the reason.
func (c *Classifier) Classify(tokens []string) engine.Command {
	if len(tokens) == 0 {
		return engine.UnrecognizedCmd{Reason: ReasonNoInput}
	}

	cmd, ok := c.catalog.Lookup(tokens[0])
	if !ok {
		return engine.UnrecognizedCmd{Reason: ReasonUnknownCommand}
	}
	arg, hasArg := "", len(tokens) > 1
	if hasArg {
		arg = tokens[1]
	}

	switch cmd.Name {
	case familyRoll:
		return engine.RollCmd{}
	case familySort:
		return engine.SortCmd{}
	case familyNew:
		return engine.NewCmd{}
	case familyQuit:
		return engine.QuitCmd{}
	case familyHold:
		if !hasArg {
			return engine.UnrecognizedCmd{Reason: ReasonMissingDie}
		}
		return classifyHold(arg)
	case familyScore:
		if !hasArg {
			return engine.UnrecognizedCmd{Reason: ReasonMissingCategory}
		}
		return classifyScore(arg)
	case familyHelp:
		if !hasArg {
			return engine.HelpCmd{Text: c.catalog.Summary}
		}
		text, ok := c.catalog.Topic(arg)
		if !ok {
			return engine.UnrecognizedCmd{Reason: ReasonNoHelp}
		}
		return engine.HelpCmd{Text: text}
	}
	return engine.UnrecognizedCmd{Reason: ReasonUnknownCommand}
}

func classifyHold(arg string) engine.Command {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return engine.UnrecognizedCmd{Reason: ReasonBadDie}
	}
	if n < 1 || n > engine.DiceCount {
		return engine.UnrecognizedCmd{Reason: ReasonDieRange}
	}
	return engine.HoldCmd{Die: n - 1}
}

func classifyScore(arg string) engine.Command {
	if cat, ok := engine.CategoryFromKey(arg); ok {
		return engine.ScoreCmd{Category: cat}
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return engine.UnrecognizedCmd{Reason: ReasonBadCategory}
	}
	cat, ok := engine.CategoryFromIndex(n)
	if !ok {
		return engine.UnrecognizedCmd{Reason: ReasonCategoryRange}
	}
	return engine.ScoreCmd{Category: cat}
}
