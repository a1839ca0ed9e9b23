package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/draughts/board"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-desc")
	Args    []string // Possible argument values (for non-option arguments)
}

var commandMetadata = map[string]CommandMetadata{
	"new": {
		Args: []string{"start", "empty"},
	},
	"place": {
		Args: []string{"first", "second"},
	},
	"save": {
		Options: []string{"-desc"},
	},
	"set": {
		Args: []string{"cache", "trace"},
	},
	"help": {
		Args: []string{"new", "position", "load", "save", "place", "clear", "show", "moves", "set", "script"},
	},
}

// Common command names for command completion
var commandNames = []string{
	"help", "new", "position", "load", "save", "place", "clear", "show",
	"moves", "set", "script", "exit",
}

var boolValues = []string{"true", "false"}

// occupiedCells lists the pieces on the shell's board, as "x,y".
func (c *ShellCompleter) occupiedCells() []string {
	if c.sc == nil || c.sc.occ == nil {
		return nil
	}
	return lo.Map(c.sc.occ.AllOccupied(), func(cell board.Cell, _ int) string {
		return cell.ShortString()
	})
}

// Do implements the readline.AutoComplete interface
// It provides context-aware autocomplete based on what's been typed
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}

	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		// Completing a command name
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		// Number of positional arguments before the one being typed.
		nargs := len(fields) - 1
		if !endsWithSpace {
			nargs--
		}

		switch cmdName {
		case "moves", "m", "gen", "clear", "rm":
			completions = c.occupiedCells()
		case "set":
			if nargs == 1 {
				completions = boolValues
			}
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") {
					completions = metadata.Options
				} else if nargs == 0 && len(metadata.Args) > 0 {
					completions = metadata.Args
				} else {
					completions = metadata.Options
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}

	return matches, len(prefix)
}
