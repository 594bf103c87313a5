package parser

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suderio/yacht-dice/internal/engine"
)

func TestClassifySimpleCommands(t *testing.T) {
	tests := []struct {
		input string
		want  engine.Command
	}{
		{"r", engine.RollCmd{}},
		{"roll", engine.RollCmd{}},
		{"roll now please", engine.RollCmd{}},
		{"s", engine.SortCmd{}},
		{"sort", engine.SortCmd{}},
		{"new", engine.NewCmd{}},
		{"q", engine.QuitCmd{}},
		{"quit", engine.QuitCmd{}},
		{"e", engine.QuitCmd{}},
		{"exit", engine.QuitCmd{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(words(t, tt.input)))
		})
	}
}

func TestClassifyHold(t *testing.T) {
	tests := []struct {
		input string
		want  engine.Command
	}{
		{"h 1", engine.HoldCmd{Die: 0}},
		{"hold 5", engine.HoldCmd{Die: 4}},
		{"hold 3 extra", engine.HoldCmd{Die: 2}},
		{"hold", engine.UnrecognizedCmd{Reason: ReasonMissingDie}},
		{"hold one", engine.UnrecognizedCmd{Reason: ReasonBadDie}},
		{"hold 0", engine.UnrecognizedCmd{Reason: ReasonDieRange}},
		{"hold 6", engine.UnrecognizedCmd{Reason: ReasonDieRange}},
		{"hold -2", engine.UnrecognizedCmd{Reason: ReasonDieRange}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(words(t, tt.input)))
		})
	}
}

func TestClassifyScoreByNumber(t *testing.T) {
	for _, c := range engine.Categories() {
		tokens := []string{"sc", strconv.Itoa(c.Index())}
		assert.Equal(t, engine.ScoreCmd{Category: c}, Classify(tokens))
	}
}

func TestClassifyScoreByName(t *testing.T) {
	for _, c := range engine.Categories() {
		assert.Equal(t, engine.ScoreCmd{Category: c}, Classify([]string{"score", c.Key()}))
	}
}

func TestClassifyScoreErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"score", ReasonMissingCategory},
		{"score Yacht", ReasonBadCategory},
		{"score full house", ReasonBadCategory},
		{"score 0", ReasonCategoryRange},
		{"score 13", ReasonCategoryRange},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, engine.UnrecognizedCmd{Reason: tt.want}, Classify(words(t, tt.input)))
		})
	}
}

func TestClassifyHelp(t *testing.T) {
	cat := DefaultCatalog()

	assert.Equal(t, engine.HelpCmd{Text: cat.Summary}, Classify([]string{"help"}))
	assert.Equal(t,
		engine.HelpCmd{Text: "roll: rolls the dice that aren't held. Counts as a roll!"},
		Classify([]string{"help", "r"}))
	assert.Equal(t,
		engine.HelpCmd{Text: "quit: quits the game"},
		Classify([]string{"help", "exit"}))
	assert.Equal(t,
		engine.HelpCmd{Text: "Yacht (11): 50 points for five of a kind"},
		Classify([]string{"help", "yacht"}))
	assert.Equal(t,
		engine.UnrecognizedCmd{Reason: ReasonNoHelp},
		Classify([]string{"help", "dance"}))
}

func TestClassifyUnknownAndEmpty(t *testing.T) {
	assert.Equal(t, engine.UnrecognizedCmd{Reason: ReasonNoInput}, Classify(nil))
	assert.Equal(t, engine.UnrecognizedCmd{Reason: ReasonNoInput}, Classify(words(t, "   ")))
	assert.Equal(t, engine.UnrecognizedCmd{Reason: ReasonUnknownCommand}, Classify([]string{"dance"}))
	assert.Equal(t, engine.UnrecognizedCmd{Reason: ReasonUnknownCommand}, Classify([]string{"ROLL"}))
}

func TestClassifyIsTotal(t *testing.T) {
	inputs := []string{"", "x", "score", "hold 99999999999999999999", "help help help", "sc 7 8", "\t r \n"}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			assert.NotNil(t, Classify(words(t, in)))
		}, in)
	}
}
