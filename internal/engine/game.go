package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgRolled        = "Onto next roll"
	msgNoMoreRolls   = "No more rolls available this round, try 'score'"
	msgSorted        = "Dice Sorted!"
	msgCategoryUsed  = "That score type was already used!"
	msgGameOver      = "Game Over! Type 'new' to start a new game!"
	msgNewGame       = "New Game Started"
	msgHeldFormat    = "Held dice number %d"
	msgUnheldFormat  = "Unheld dice number %d"
	msgScoredFormat  = "Score submitted! %s: %d"
	msgGameOverTotal = "%s Final score: %d"
)

// Game is one player's run: the current roll, the score ledger, the turn
// state and the last outcome message. It is not safe for concurrent use.
type Game struct {
	id     uuid.UUID
	roll   Roll
	ledger *Ledger
	state  TurnState
	msg    string
	src    Source
	logger *zap.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGame starts a game with a fresh roll drawn from src.
func NewGame(src Source, opts ...Option) *Game {
	g := &Game{
		ledger: NewLedger(),
		src:    src,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.id = uuid.New()
	g.ledger.Reset()
	g.roll = FreshRoll(g.src)
	g.state = FirstRoll
	g.logger.Debug("game started",
		zap.String("game_id", g.id.String()),
		zap.Ints("dice", g.roll.Dice[:]),
	)
}

// Apply runs cmd against the game and returns the outcome message, which is
// also kept as the game's last message. Player mistakes are reported in the
// message; only control flow defects panic.
func (g *Game) Apply(cmd Command) string {
	g.msg = g.apply(cmd)
	return g.msg
}

func (g *Game) apply(cmd Command) string {
	switch c := cmd.(type) {
	case RollCmd:
		g.requireActive("roll")
		if g.state == ThirdRoll {
			return msgNoMoreRolls
		}
		g.roll.Reroll(g.src)
		g.transition(g.state.next())
		return msgRolled

	case SortCmd:
		g.requireActive("sort")
		g.roll.Sort()
		return msgSorted

	case HoldCmd:
		g.requireActive("hold")
		if g.roll.ToggleHold(c.Die) {
			return fmt.Sprintf(msgHeldFormat, c.Die+1)
		}
		return fmt.Sprintf(msgUnheldFormat, c.Die+1)

	case ScoreCmd:
		g.requireActive("score")
		return g.score(c.Category)

	case NewCmd:
		g.reset()
		return msgNewGame

	case HelpCmd:
		return c.Text

	case UnrecognizedCmd:
		return c.Reason

	case QuitCmd:
		invariant(false, "quit must be handled by the control loop")
	}
	invariant(false, "unhandled command %T", cmd)
	return ""
}

func (g *Game) score(c Category) string {
	points, err := g.ledger.Record(c, g.roll)
	if errors.Is(err, ErrCategoryUsed) {
		return msgCategoryUsed
	}
	g.logger.Debug("score recorded",
		zap.String("game_id", g.id.String()),
		zap.Stringer("category", c),
		zap.Int("points", points),
		zap.Ints("dice", g.roll.Dice[:]),
	)
	scored := fmt.Sprintf(msgScoredFormat, c, points)

	if g.ledger.IsFull() {
		g.transition(GameOver)
		g.logger.Info("game over",
			zap.String("game_id", g.id.String()),
			zap.Int("total", g.ledger.Total()),
		)
		return fmt.Sprintf(msgGameOverTotal, msgGameOver, g.ledger.Total())
	}

	g.roll = FreshRoll(g.src)
	g.transition(FirstRoll)
	return scored
}

func (g *Game) transition(to TurnState) {
	g.logger.Debug("turn state changed",
		zap.String("game_id", g.id.String()),
		zap.Stringer("from", g.state),
		zap.Stringer("to", to),
	)
	g.state = to
}

func (g *Game) requireActive(action string) {
	invariant(g.state != GameOver, "%s applied after game over", action)
}

// ID identifies the current game. It changes on every new game.
func (g *Game) ID() uuid.UUID { return g.id }

// State is the current turn state.
func (g *Game) State() TurnState { return g.state }

// Roll returns a copy of the current roll.
func (g *Game) Roll() Roll { return g.roll }

// Dice returns the current die values.
func (g *Game) Dice() [DiceCount]int { return g.roll.Dice }

// Holds returns the current hold flags.
func (g *Game) Holds() [DiceCount]bool { return g.roll.Held }

// Score returns the recorded points for c, or false when c is unused.
func (g *Game) Score(c Category) (int, bool) { return g.ledger.Score(c) }

// Total is the running score.
func (g *Game) Total() int { return g.ledger.Total() }

// Scored is the number of categories recorded so far.
func (g *Game) Scored() int { return g.ledger.Len() }

// Ledger is a read-only view of the score sheet. It follows the game across
// new games.
func (g *Game) Ledger() LedgerView { return ledgerView{g.ledger} }

// Message is the outcome of the last command.
func (g *Game) Message() string { return g.msg }

// ledgerView hides Record and Reset from callers holding a LedgerView.
type ledgerView struct{ l *Ledger }

func (v ledgerView) Score(c Category) (int, bool) { return v.l.Score(c) }
func (v ledgerView) Total() int                   { return v.l.Total() }
func (v ledgerView) Len() int                     { return v.l.Len() }
func (v ledgerView) IsFull() bool                 { return v.l.IsFull() }
