package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/cache"
	"github.com/domino14/draughts/config"
	"github.com/domino14/draughts/layout"
	"github.com/domino14/draughts/movegen"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
)

// Options to configure the interactive shell
type ShellOptions struct {
	cacheMoves  bool
	traceSearch bool
}

func NewShellOptions(cfg *config.Config) *ShellOptions {
	return &ShellOptions{
		cacheMoves:  cfg.GetBool(config.ConfigCacheMoves),
		traceSearch: cfg.GetBool(config.ConfigTraceSearch),
	}
}

func (opts *ShellOptions) Show(key string) (bool, string) {
	switch key {
	case "cache":
		return true, fmt.Sprintf("%v", opts.cacheMoves)
	case "trace":
		return true, fmt.Sprintf("%v", opts.traceSearch)
	default:
		return false, "No such option: " + key
	}
}

func (opts *ShellOptions) ToDisplayText() string {
	keys := []string{"cache", "trace"}
	out := strings.Builder{}
	out.WriteString("Settings:\n")
	for _, key := range keys {
		_, val := opts.Show(key)
		out.WriteString("  " + key + ": ")
		out.WriteString(val + "\n")
	}
	return out.String()
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

// extractFields splits a line into a command, its positional arguments and
// its -key value options. Quoted arguments are kept together.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

type ShellController struct {
	l         *readline.Instance
	config    *config.Config
	options   *ShellOptions
	occ       *board.Occupancy
	gen       movegen.MoveGenerator
	moveCache *cache.MoveCache
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	if sc.l == nil {
		writeln(msg, os.Stderr)
		return
	}
	writeln(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// newController sets up everything but the terminal.
func newController(cfg *config.Config) (*ShellController, error) {
	sc := &ShellController{
		config:    cfg,
		options:   NewShellOptions(cfg),
		gen:       movegen.NewRulesGenerator(),
		moveCache: cache.NewMoveCache(cfg.GetInt(config.ConfigCacheSize)),
	}
	occ, err := initialOccupancy(cfg.GetString(config.ConfigInitialLayout))
	if err != nil {
		return nil, err
	}
	sc.occ = occ
	sc.applyTrace()
	return sc, nil
}

func initialOccupancy(name string) (*board.Occupancy, error) {
	switch name {
	case "", "start":
		return board.StartingOccupancy(), nil
	case "empty":
		return board.EmptyOccupancy(), nil
	}
	return layout.ParseCompact(name)
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	sc, err := newController(cfg)
	if err != nil {
		return nil, err
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mdraughts>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	return sc, nil
}

// applyTrace turns the capture-search trace on or off. The search logs at
// trace level, so this changes the global level.
func (sc *ShellController) applyTrace() {
	if sc.options.traceSearch {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	} else if zerolog.GlobalLevel() == zerolog.TraceLevel {
		if sc.config.GetBool(config.ConfigDebug) {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showMessage(sc.occ.ToDisplayText())
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if line == "exit" || line == "bye" {
			sig <- syscall.SIGINT
			break
		}
		if line == "" {
			continue
		}
		resp, err := sc.handle(line)
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line without starting the interactive loop.
func (sc *ShellController) Execute(line string) {
	resp, err := sc.handle(line)
	if err != nil {
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Cleanup() {
	hits, misses := sc.moveCache.Stats()
	log.Debug().Int("hits", hits).Int("misses", misses).Msg("move cache stats")
	if sc.l != nil {
		sc.l.Close()
	}
}
