package cmd

import (
	"fmt"
	"strings"

	"github.com/suderio/yacht-dice/internal/engine"
	"github.com/suderio/yacht-dice/internal/parser"
	"github.com/suderio/yacht-dice/internal/session"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))
)

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type playModel struct {
	sess        *session.Session
	words       []string
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions list.Model
	history     []string
	historyIdx  int
	logContent  string
	width       int
	height      int
	showList    bool
}

func newPlayModel(sess *session.Session, catalog *parser.Catalog) playModel {
	ti := textinput.New()
	ti.Placeholder = "Enter command (e.g., hold 3, score chance)..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	vp := viewport.New(0, 0)
	vp.SetContent(welcome)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 30, 7)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false)
	sugList.SetShowHelp(false)

	return playModel{
		sess:        sess,
		words:       completionWords(catalog),
		textInput:   ti,
		viewport:    vp,
		suggestions: sugList,
		historyIdx:  -1,
		logContent:  welcome,
	}
}

// completionWords is every command alias followed by "score <key>" for each
// category in sheet order. Tab takes the first match, so the order is fixed.
func completionWords(catalog *parser.Catalog) []string {
	words := catalog.Words()
	for _, c := range engine.Categories() {
		words = append(words, "score "+c.Key())
	}
	return words
}

// suggestionsFor returns the completion words that extend val.
func suggestionsFor(words []string, val string) []string {
	if val == "" {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	lower := strings.ToLower(val)
	for _, w := range words {
		if strings.HasPrefix(w, lower) && len(lower) < len(w) && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

func (m *playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playModel) updateSuggestions() {
	var items []list.Item
	for _, w := range suggestionsFor(m.words, m.textInput.Value()) {
		items = append(items, suggestion(w))
	}

	m.suggestions.SetItems(items)
	m.showList = len(items) > 0
	if m.showList {
		h := min(len(items), 7)
		m.suggestions.SetHeight(max(h, 4))
		m.suggestions.ResetSelected()
	}
}

// submit runs one line through the session and reports whether to quit.
func (m *playModel) submit(val string) bool {
	if len(m.history) == 0 || m.history[len(m.history)-1] != val {
		m.history = append(m.history, val)
	}
	m.historyIdx = -1
	m.textInput.SetValue("")
	m.updateSuggestions()

	msg, quit := m.sess.Execute(val)
	if quit {
		return true
	}
	m.logContent += fmt.Sprintf("\n> %s\n%s", val, msg)
	m.viewport.SetContent(m.logContent)
	m.viewport.GotoBottom()
	return false
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
				m.updateSuggestions()
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.updateSuggestions()
			}

		case tea.KeyTab:
			if m.showList {
				if i, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(i))
					m.textInput.SetCursor(len(string(i)))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if m.submit(val) {
				return m, tea.Quit
			}

		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	boardH := lipgloss.Height(renderBoard(m.sess.Game()))
	listH := 0
	if m.showList {
		listH = m.suggestions.Height() + 2
	}
	infoH := lipgloss.Height(infoStyle.Render("Dummy"))

	overhead := titleH + boardH + 1 + listH + infoH + 4
	m.viewport.Height = max(m.height-overhead, 3)

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

func (m *playModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	g := m.sess.Game()
	title := titleStyle.Render(fmt.Sprintf(" Yacht | game %s ", g.ID().String()[:8]))
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	inputArea := m.textInput.View()
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", inputArea, autocompleteStyle.Render(m.suggestions.View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		renderBoard(g),
		logBox,
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)
}

func RunTUI(sess *session.Session) error {
	m := newPlayModel(sess, parser.DefaultCatalog())
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
