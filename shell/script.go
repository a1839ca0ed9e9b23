package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"

	"github.com/domino14/draughts/board"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("draughts_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// Run executes one shell command line and returns its output. Errors are
// returned as a second value.
func Run(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.handle(lv)
	if err != nil {
		log.Err(err).Str("line", lv).Msg("error-executing-command")
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(r.message))
	// return number of results pushed to stack.
	return 1
}

// Moves returns the legal moves of a piece as a table of tables, each with
// the target cell, the number of captured pieces and the description.
func Moves(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	cell, err := board.ParseCell(lv)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	plays, err := sc.generate(cell)
	if err != nil {
		log.Err(err).Msg("error-executing-moves")
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	tbl := L.NewTable()
	for _, p := range plays {
		m := L.NewTable()
		m.RawSetString("target", lua.LString(p.Target().ShortString()))
		m.RawSetString("captured", lua.LNumber(p.NumCaptured()))
		m.RawSetString("description", lua.LString(p.ShortDescription()))
		tbl.Append(m)
	}
	L.Push(tbl)
	return 1
}

// Pieces returns the cells of one color, as "x,y" strings.
func Pieces(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	color, err := board.ParseColor(lv)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	cells, err := sc.occ.PiecesOf(color)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	tbl := L.NewTable()
	for _, c := range cells {
		tbl.Append(lua.LString(c.ShortString()))
	}
	L.Push(tbl)
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()
	luajson.Preload(L)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("draughts_shell", lsc)
	L.SetGlobal("draughts_run", L.NewFunction(Run))
	L.SetGlobal("draughts_moves", L.NewFunction(Moves))
	L.SetGlobal("draughts_pieces", L.NewFunction(Pieces))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return msg("ran " + filepath), nil
}
