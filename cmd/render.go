package cmd

import (
	"fmt"
	"strings"

	"github.com/suderio/yacht-dice/internal/engine"

	"github.com/charmbracelet/lipgloss"
)

var (
	sheetBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	sheetHeaderStyle = lipgloss.NewStyle().Bold(true)

	dieStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	heldDieStyle = dieStyle.
			BorderForeground(lipgloss.Color("#F25D94"))

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	// state badge colors: foreground, background
	badgeColors = map[engine.TurnState][2]string{
		engine.FirstRoll:  {"#FFFF00", "#008000"},
		engine.SecondRoll: {"#000000", "#FFFF00"},
		engine.ThirdRoll:  {"#FFFFFF", "#FF0000"},
		engine.GameOver:   {"#FFFF00", "#0000FF"},
	}
)

var pips = map[int][3]string{
	1: {"     ", "  O  ", "     "},
	2: {"    O", "     ", "O    "},
	3: {"    O", "  O  ", "O    "},
	4: {"O   O", "     ", "O   O"},
	5: {"O   O", "  O  ", "O   O"},
	6: {"O   O", "O   O", "O   O"},
}

func renderScoreSheet(g *engine.Game) string {
	var b strings.Builder
	b.WriteString(sheetHeaderStyle.Render("SCORE TABLE"))
	b.WriteString("\n")
	for _, c := range engine.Categories() {
		value := "X"
		if points, ok := g.Score(c); ok {
			value = fmt.Sprintf("%d", points)
		}
		fmt.Fprintf(&b, "%2d - %-16s %4s\n", c.Index(), c.String(), value)
	}
	fmt.Fprintf(&b, "%-21s %4d", "TOTAL", g.Total())
	return sheetBoxStyle.Render(b.String())
}

func renderDie(face int, held bool) string {
	style := dieStyle
	marker := "[ ]"
	if held {
		style = heldDieStyle
		marker = "[X]"
	}
	p := pips[face]
	box := style.Render(strings.Join(p[:], "\n"))
	return lipgloss.JoinVertical(lipgloss.Center, box, marker)
}

func renderDice(g *engine.Game) string {
	dice, holds := g.Dice(), g.Holds()
	cols := make([]string, 0, engine.DiceCount)
	for i := range dice {
		label := fmt.Sprintf("%d", i+1)
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center, label, renderDie(dice[i], holds[i])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderBadge(s engine.TurnState) string {
	style := badgeStyle
	if c, ok := badgeColors[s]; ok {
		style = style.Foreground(lipgloss.Color(c[0])).Background(lipgloss.Color(c[1]))
	}
	return style.Render(s.String())
}

// renderBoard lays the score sheet next to the dice, state and last message.
func renderBoard(g *engine.Game) string {
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderBadge(g.State()),
		"",
		renderDice(g),
		"",
		g.Message(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, renderScoreSheet(g), "  ", right)
}
