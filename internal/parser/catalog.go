package parser

import (
	_ "embed"
	"fmt"

	"github.com/suderio/yacht-dice/internal/engine"

	"gopkg.in/yaml.v3"
)

//go:embed help.yaml
var helpYAML []byte

// Command family names. Every entry of the catalog must use one of them.
const (
	familyRoll  = "roll"
	familySort  = "sort"
	familyHold  = "hold"
	familyScore = "score"
	familyNew   = "new"
	familyQuit  = "quit"
	familyHelp  = "help"
)

var families = []string{familyRoll, familySort, familyHold, familyScore, familyNew, familyQuit, familyHelp}

// CommandHelp describes one command family and the words that select it.
type CommandHelp struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Usage   string   `yaml:"usage"`
	Text    string   `yaml:"text"`
}

// Catalog holds the command aliases and help texts.
type Catalog struct {
	Summary    string            `yaml:"summary"`
	Commands   []CommandHelp     `yaml:"commands"`
	Categories map[string]string `yaml:"categories"`

	byAlias map[string]*CommandHelp
}

// LoadCatalog decodes and validates a YAML catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode help catalog: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) index() error {
	if c.Summary == "" {
		return fmt.Errorf("help catalog has no summary")
	}

	c.byAlias = make(map[string]*CommandHelp)
	seen := make(map[string]bool)
	for i := range c.Commands {
		cmd := &c.Commands[i]
		if !knownFamily(cmd.Name) {
			return fmt.Errorf("help catalog: unknown command %q", cmd.Name)
		}
		if seen[cmd.Name] {
			return fmt.Errorf("help catalog: command %q listed twice", cmd.Name)
		}
		seen[cmd.Name] = true
		if len(cmd.Aliases) == 0 {
			return fmt.Errorf("help catalog: command %q has no aliases", cmd.Name)
		}
		for _, alias := range cmd.Aliases {
			if other, dup := c.byAlias[alias]; dup {
				return fmt.Errorf("help catalog: alias %q used by %q and %q", alias, other.Name, cmd.Name)
			}
			c.byAlias[alias] = cmd
		}
	}
	for _, name := range families {
		if !seen[name] {
			return fmt.Errorf("help catalog: command %q missing", name)
		}
	}

	for _, cat := range engine.Categories() {
		if c.Categories[cat.Key()] == "" {
			return fmt.Errorf("help catalog: no rule text for %s", cat.Key())
		}
	}
	return nil
}

func knownFamily(name string) bool {
	for _, f := range families {
		if f == name {
			return true
		}
	}
	return false
}

// Lookup resolves a command alias.
func (c *Catalog) Lookup(alias string) (*CommandHelp, bool) {
	cmd, ok := c.byAlias[alias]
	return cmd, ok
}

// Topic returns the help text for a command alias or a category key.
func (c *Catalog) Topic(word string) (string, bool) {
	if cmd, ok := c.byAlias[word]; ok {
		return cmd.Text, true
	}
	text, ok := c.Categories[word]
	return text, ok
}

// Words lists every command alias, used for completion.
func (c *Catalog) Words() []string {
	var out []string
	for _, cmd := range c.Commands {
		out = append(out, cmd.Aliases...)
	}
	return out
}

var defaultCatalog = mustLoadCatalog(helpYAML)

func mustLoadCatalog(data []byte) *Catalog {
	c, err := LoadCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
