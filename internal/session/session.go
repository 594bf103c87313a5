package session

import (
	"fmt"

	"github.com/suderio/yacht-dice/internal/engine"
	"github.com/suderio/yacht-dice/internal/parser"

	"go.uber.org/zap"
)

// Session is the control loop policy around a single Game: it classifies raw
// lines, stops on quit and turns any command after game over into a new game.
type Session struct {
	game       *engine.Game
	classifier *parser.Classifier
	logger     *zap.Logger
}

// NewSession wraps game. A nil logger discards output.
func NewSession(game *engine.Game, classifier *parser.Classifier, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if classifier == nil {
		classifier = parser.NewClassifier(parser.DefaultCatalog())
	}
	return &Session{
		game:       game,
		classifier: classifier,
		logger:     logger,
	}
}

// Game exposes the game for rendering.
func (s *Session) Game() *engine.Game {
	return s.game
}

// Execute runs one line of input. It returns the outcome message and whether
// the player asked to quit; on quit the game is left untouched.
func (s *Session) Execute(input string) (string, bool) {
	var cmd engine.Command
	tokens, err := parser.Tokenize(input)
	if err != nil {
		s.logger.Warn("unreadable input", zap.Error(err))
		cmd = engine.UnrecognizedCmd{Reason: parser.ReasonUnknownCommand}
	} else {
		cmd = s.classifier.Classify(tokens)
	}

	if _, ok := cmd.(engine.QuitCmd); ok {
		s.logger.Debug("quit requested", zap.String("game_id", s.game.ID().String()))
		return "", true
	}

	if s.game.State() == engine.GameOver {
		cmd = engine.NewCmd{}
	}

	from := s.game.State()
	msg := s.game.Apply(cmd)
	s.logger.Debug("command applied",
		zap.String("input", input),
		zap.String("command", commandName(cmd)),
		zap.Stringer("from", from),
		zap.Stringer("to", s.game.State()),
		zap.String("message", msg),
	)
	return msg, false
}

func commandName(cmd engine.Command) string {
	switch c := cmd.(type) {
	case engine.RollCmd:
		return "roll"
	case engine.SortCmd:
		return "sort"
	case engine.HoldCmd:
		return fmt.Sprintf("hold %d", c.Die+1)
	case engine.ScoreCmd:
		return fmt.Sprintf("score %s", c.Category.Key())
	case engine.NewCmd:
		return "new"
	case engine.QuitCmd:
		return "quit"
	case engine.HelpCmd:
		return "help"
	case engine.UnrecognizedCmd:
		return "unrecognized"
	}
	return fmt.Sprintf("%T", cmd)
}
