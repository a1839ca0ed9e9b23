package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/layout"
	"github.com/domino14/draughts/move"
)

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "help", "h", "?":
		return sc.help(cmd)
	case "new", "n":
		return sc.newPosition(cmd)
	case "position", "pos":
		return sc.position(cmd)
	case "load":
		return sc.load(cmd)
	case "save":
		return sc.save(cmd)
	case "place", "pl":
		return sc.place(cmd)
	case "clear", "rm":
		return sc.clear(cmd)
	case "show", "s":
		return sc.show()
	case "moves", "gen", "m":
		return sc.moves(cmd)
	case "set":
		return sc.set(cmd)
	case "script":
		return sc.script(cmd)
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

func (sc *ShellController) setOccupancy(occ *board.Occupancy) {
	sc.occ = occ
}

func (sc *ShellController) show() (*Response, error) {
	return msg(sc.occ.ToDisplayText()), nil
}

func (sc *ShellController) newPosition(cmd *shellcmd) (*Response, error) {
	name := "start"
	if len(cmd.args) > 0 {
		name = cmd.args[0]
	}
	switch name {
	case "start":
		sc.setOccupancy(board.StartingOccupancy())
	case "empty":
		sc.setOccupancy(board.EmptyOccupancy())
	default:
		return nil, errors.New("new [start|empty]")
	}
	return sc.show()
}

func (sc *ShellController) position(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(layout.ToCompact(sc.occ)), nil
	}
	occ, err := layout.ParseCompact(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.setOccupancy(occ)
	return sc.show()
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("load <path/to/position.yaml>")
	}
	occ, err := layout.LoadFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.setOccupancy(occ)
	return sc.show()
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("save <path/to/position.yaml> [-desc description]")
	}
	err := layout.SaveFile(cmd.args[0], sc.occ, cmd.options["desc"])
	if err != nil {
		return nil, err
	}
	return msg("Saved position to " + cmd.args[0]), nil
}

func parseCells(args []string) ([]board.Cell, error) {
	cells := make([]board.Cell, 0, len(args))
	for _, a := range args {
		c, err := board.ParseCell(a)
		if err != nil {
			return nil, err
		}
		if !c.IsPlayable() {
			return nil, fmt.Errorf("%v is not a playable cell", c)
		}
		cells = append(cells, c)
	}
	return cells, nil
}

// withoutCells returns the pieces of occ, minus those on the given cells.
func withoutCells(occ *board.Occupancy, cells []board.Cell) (first, second []board.Cell) {
	drop := make(map[board.Cell]bool, len(cells))
	for _, c := range cells {
		drop[c] = true
	}
	for _, c := range occ.AllOccupied() {
		if drop[c] {
			continue
		}
		if col, _ := occ.ColorAt(c); col == board.First {
			first = append(first, c)
		} else {
			second = append(second, c)
		}
	}
	return first, second
}

func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("place <first|second> <x,y> [<x,y>...]")
	}
	color, err := board.ParseColor(cmd.args[0])
	if err != nil {
		return nil, err
	}
	cells, err := parseCells(cmd.args[1:])
	if err != nil {
		return nil, err
	}
	// Placing a piece replaces whatever was on the cell.
	first, second := withoutCells(sc.occ, cells)
	if color == board.First {
		first = append(first, cells...)
	} else {
		second = append(second, cells...)
	}
	occ, err := board.NewOccupancy(first, second)
	if err != nil {
		return nil, err
	}
	sc.setOccupancy(occ)
	return sc.show()
}

func (sc *ShellController) clear(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("clear <x,y> [<x,y>...]")
	}
	cells, err := parseCells(cmd.args)
	if err != nil {
		return nil, err
	}
	occ, err := board.NewOccupancy(withoutCells(sc.occ, cells))
	if err != nil {
		return nil, err
	}
	sc.setOccupancy(occ)
	return sc.show()
}

func (sc *ShellController) generate(cell board.Cell) ([]*move.Move, error) {
	if sc.options.cacheMoves {
		return sc.moveCache.Get(cell, sc.occ, func(c board.Cell, occ *board.Occupancy) ([]*move.Move, error) {
			if err := sc.gen.GenAll(c, occ); err != nil {
				return nil, err
			}
			return sc.gen.Plays(), nil
		})
	}
	if err := sc.gen.GenAll(cell, sc.occ); err != nil {
		return nil, err
	}
	return sc.gen.Plays(), nil
}

func moveTableRow(idx int, m *move.Move) string {
	switch m.Action() {
	case move.MoveTypeCapture:
		return fmt.Sprintf("%3d: %s  [%d captured]", idx+1, m.ShortDescription(), m.NumCaptured())
	default:
		return fmt.Sprintf("%3d: %s", idx+1, m.ShortDescription())
	}
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("moves <x,y>")
	}
	cell, err := board.ParseCell(cmd.args[0])
	if err != nil {
		return nil, err
	}
	plays, err := sc.generate(cell)
	if err != nil {
		return nil, err
	}
	color, _ := sc.occ.ColorAt(cell)
	if len(plays) == 0 {
		return msg(fmt.Sprintf("no legal moves for %v piece on %v", color, cell)), nil
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("moves for %v piece on %v:\n", color, cell))
	for i, p := range plays {
		sb.WriteString(moveTableRow(i, p))
		sb.WriteString("\n")
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.options.ToDisplayText()), nil
	}
	opt := cmd.args[0]
	if len(cmd.args) == 1 {
		_, val := sc.options.Show(opt)
		return msg(val), nil
	}
	val, err := strconv.ParseBool(cmd.args[1])
	if err != nil {
		return nil, fmt.Errorf("value for %v must be true or false", opt)
	}
	switch opt {
	case "cache":
		sc.options.cacheMoves = val
		if !val {
			sc.moveCache.Clear()
		}
	case "trace":
		sc.options.traceSearch = val
		sc.applyTrace()
	default:
		return nil, errors.New("option " + opt + " not recognized")
	}
	_, shown := sc.options.Show(opt)
	return msg(opt + " set to " + shown), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	if len(cmd.args) == 0 {
		usage(&sb)
	} else {
		usageTopic(&sb, cmd.args[0])
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}
