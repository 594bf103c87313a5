package cmd

import (
	"fmt"
	"strconv"

	"github.com/suderio/yacht-dice/internal/engine"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval d1 d2 d3 d4 d5",
	Short: "Score a roll in every category",
	Long: `Prints what the given five dice would score in each category.
Dice are taken in the order given, so straights only count in ascending order.
Example:
	yacht eval 3 3 3 2 2`,
	Args: cobra.ExactArgs(engine.DiceCount),
	RunE: func(cmd *cobra.Command, args []string) error {
		roll, err := parseDice(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderEval(roll))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func parseDice(args []string) (engine.Roll, error) {
	if len(args) != engine.DiceCount {
		return engine.Roll{}, fmt.Errorf("expected %d dice, got %d", engine.DiceCount, len(args))
	}
	var d [engine.DiceCount]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return engine.Roll{}, fmt.Errorf("die %d: %q is not a number", i+1, a)
		}
		if v < 1 || v > engine.Faces {
			return engine.Roll{}, fmt.Errorf("die %d: %d is outside 1-%d", i+1, v, engine.Faces)
		}
		d[i] = v
	}
	return engine.NewRoll(d[0], d[1], d[2], d[3], d[4]), nil
}

func renderEval(roll engine.Roll) string {
	rows := make([][]string, 0, engine.CategoryCount)
	for _, c := range engine.Categories() {
		rows = append(rows, []string{
			strconv.Itoa(c.Index()),
			c.String(),
			strconv.Itoa(engine.Evaluate(roll, c)),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Category", "Points").
		Rows(rows...).
		String()
}
