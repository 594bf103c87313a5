package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/suderio/yacht-dice/internal/engine"
	"github.com/suderio/yacht-dice/internal/parser"
	"github.com/suderio/yacht-dice/internal/session"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const welcome = "Welcome to Yacht! Type 'help' for a list of commands."

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game of Yacht",
	Long: `Starts an interactive game.
Usage:
	> roll
	> hold 2
	> score fullhouse`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	addPlayFlags(playCmd)
}

func addPlayFlags(c *cobra.Command) {
	c.Flags().Int64("seed", 0, "seed the dice for a reproducible game (0 uses crypto/rand)")
	c.Flags().Bool("plain", false, "line mode without the full screen interface")
}

// bindPlayFlags points viper at the flags of the command actually running, so
// root and play share the same keys.
func bindPlayFlags(c *cobra.Command) error {
	if err := viper.BindPFlag("seed", c.Flags().Lookup("seed")); err != nil {
		return err
	}
	return viper.BindPFlag("plain", c.Flags().Lookup("plain"))
}

func runPlay(cmd *cobra.Command, args []string) error {
	seed, plain := cfg.Seed, cfg.Plain

	game := engine.NewGame(newSource(seed), engine.WithLogger(logger))
	sess := session.NewSession(game, parser.NewClassifier(parser.DefaultCatalog()), logger)
	logger.Info("session started",
		zap.String("game_id", game.ID().String()),
		zap.Int64("seed", seed),
		zap.Bool("plain", plain),
	)

	if plain {
		return runPlain(os.Stdin, cmd.OutOrStdout(), sess)
	}
	if err := RunTUI(sess); err != nil {
		return fmt.Errorf("fatal TUI error: %w", err)
	}
	return nil
}

func newSource(seed int64) engine.Source {
	if seed != 0 {
		return engine.NewSeededSource(seed)
	}
	return engine.NewCryptoSource()
}

// runPlain is the line oriented front end. End of input quits.
func runPlain(in io.Reader, out io.Writer, sess *session.Session) error {
	fmt.Fprintln(out, welcome)
	fmt.Fprintln(out, renderBoard(sess.Game()))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "--> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		if _, quit := sess.Execute(scanner.Text()); quit {
			break
		}
		fmt.Fprintln(out, renderBoard(sess.Game()))
	}
	return scanner.Err()
}
