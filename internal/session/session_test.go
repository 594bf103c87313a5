package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/suderio/yacht-dice/internal/engine"
	"github.com/suderio/yacht-dice/internal/parser"
)

func newSession(seed int64) *Session {
	return NewSession(engine.NewGame(engine.NewSeededSource(seed)), nil, nil)
}

func TestExecuteRoutesCommands(t *testing.T) {
	s := newSession(1)

	msg, quit := s.Execute("roll")
	assert.False(t, quit)
	assert.Equal(t, "Onto next roll", msg)
	assert.Equal(t, engine.SecondRoll, s.Game().State())

	msg, _ = s.Execute("hold 2")
	assert.Equal(t, "Held dice number 2", msg)
	assert.True(t, s.Game().Holds()[1])

	msg, _ = s.Execute("sort")
	assert.Equal(t, "Dice Sorted!", msg)
	assert.Equal(t, msg, s.Game().Message())
}

func TestExecuteHelpAndErrorsKeepState(t *testing.T) {
	s := newSession(2)
	before := s.Game().Roll()

	msg, quit := s.Execute("help")
	assert.False(t, quit)
	assert.Equal(t, parser.DefaultCatalog().Summary, msg)

	msg, _ = s.Execute("dance")
	assert.Equal(t, parser.ReasonUnknownCommand, msg)

	msg, _ = s.Execute("")
	assert.Equal(t, parser.ReasonNoInput, msg)

	msg, _ = s.Execute("hold 9")
	assert.Equal(t, parser.ReasonDieRange, msg)

	assert.Equal(t, before, s.Game().Roll())
	assert.Equal(t, engine.FirstRoll, s.Game().State())
}

func TestExecuteQuit(t *testing.T) {
	for _, in := range []string{"q", "quit", "e", "exit"} {
		s := newSession(3)
		s.Execute("roll")
		before := s.Game().Roll()

		msg, quit := s.Execute(in)
		assert.True(t, quit, in)
		assert.Empty(t, msg)
		assert.Equal(t, before, s.Game().Roll())
	}
}

func finishGame(t *testing.T, s *Session) {
	t.Helper()
	for _, c := range engine.Categories() {
		_, quit := s.Execute("score " + c.Key())
		require.False(t, quit)
	}
	require.Equal(t, engine.GameOver, s.Game().State())
}

func TestAnyCommandAfterGameOverStartsNewGame(t *testing.T) {
	for _, in := range []string{"roll", "hold 1", "sort", "score 3", "help", "nonsense", "", "new"} {
		t.Run(in, func(t *testing.T) {
			s := newSession(4)
			finishGame(t, s)
			oldID := s.Game().ID()

			msg, quit := s.Execute(in)

			assert.False(t, quit)
			assert.Equal(t, "New Game Started", msg)
			assert.Equal(t, engine.FirstRoll, s.Game().State())
			assert.Equal(t, 0, s.Game().Scored())
			assert.Equal(t, 0, s.Game().Total())
			assert.Equal(t, [engine.DiceCount]bool{}, s.Game().Holds())
			assert.NotEqual(t, oldID, s.Game().ID())
		})
	}
}

func TestQuitAfterGameOverStillQuits(t *testing.T) {
	s := newSession(5)
	finishGame(t, s)

	_, quit := s.Execute("quit")
	assert.True(t, quit)
	assert.Equal(t, engine.GameOver, s.Game().State())
}

func TestExecuteUsedCategory(t *testing.T) {
	s := newSession(6)
	s.Execute("score chance")
	msg, _ := s.Execute("sc 12")
	assert.Equal(t, "That score type was already used!", msg)
	assert.Equal(t, 1, s.Game().Scored())
}

func TestExecuteLogsCommands(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewSession(engine.NewGame(engine.NewSeededSource(7)), nil, zap.New(core))

	s.Execute("score yacht")

	entries := logs.FilterMessage("command applied").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "score yacht", fields["command"])
	assert.Equal(t, "First Roll", fields["from"])
	assert.Equal(t, "First Roll", fields["to"])
}

func TestExecuteOddInputIsUnknownCommand(t *testing.T) {
	s := newSession(4)
	before := s.Game().Roll()

	for _, in := range []string{"r\x00oll", "☃", "score ###"} {
		msg, quit := s.Execute(in)
		assert.False(t, quit, in)
		assert.NotEmpty(t, msg, in)
	}
	msg, _ := s.Execute("☃")
	assert.Equal(t, parser.ReasonUnknownCommand, msg)
	assert.Equal(t, before, s.Game().Roll())
	assert.Equal(t, engine.FirstRoll, s.Game().State())
}
