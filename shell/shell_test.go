package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/config"
	"github.com/domino14/draughts/layout"
)

func TestMain(m *testing.M) {
	// The capture search logs every step at trace level.
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"save /tmp/pos.yaml -desc opening",
			&shellcmd{"save", []string{"/tmp/pos.yaml"}, map[string]string{"desc": "opening"}},
			nil},
		{"moves 3,5",
			&shellcmd{"moves", []string{"3,5"}, map[string]string{}},
			nil},
		{"place second 9,3 '(5, 5)' ",
			&shellcmd{"place",
				[]string{"second", "9,3", "(5, 5)"},
				map[string]string{}},
			nil,
		},
		{"save pos.yaml -desc",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func testController(t *testing.T) *ShellController {
	t.Helper()
	sc, err := newController(config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func run(t *testing.T, sc *ShellController, line string) string {
	t.Helper()
	resp, err := sc.handle(line)
	if err != nil {
		t.Fatalf("%s: %v", line, err)
	}
	return resp.message
}

func TestInitialLayout(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	is.Equal(layout.ToCompact(sc.occ), layout.StartingPosition)

	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigInitialLayout, "empty")
	sc, err := newController(cfg)
	is.NoErr(err)
	is.Equal(sc.occ.NumPieces(board.First), 0)

	cfg.Set(config.ConfigInitialLayout, "10/10/10/10/10/10/10/10/10/s9")
	sc, err = newController(cfg)
	is.NoErr(err)
	second, err := sc.occ.PiecesOf(board.Second)
	is.NoErr(err)
	is.Equal(second, []board.Cell{board.NewCell(0, 0)})

	cfg.Set(config.ConfigInitialLayout, "bogus")
	_, err = newController(cfg)
	is.True(err != nil)
}

func TestPlaceAndMoves(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	run(t, sc, "new empty")
	run(t, sc, "place first 8,4 6,4 6,2 5,5 4,2")
	run(t, sc, "place second 9,3")

	out := run(t, sc, "moves 9,3")
	is.Equal(out, strings.Join([]string{
		"moves for second piece on (9,3):",
		"  1: (7,5)x(8,4) (5,3)x(6,4) (3,1)x(4,2)  [3 captured]",
		"  2: (7,5)x(8,4) (5,3)x(6,4) (7,1)x(6,2)  [3 captured]",
	}, "\n"))

	// Asked again, the answer comes from the cache.
	is.Equal(run(t, sc, "m (9,3)"), out)
	hits, misses := sc.moveCache.Stats()
	is.Equal(hits, 1)
	is.Equal(misses, 1)
}

func TestPlaceReplacesPiece(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	run(t, sc, "new empty")
	run(t, sc, "place first 3,3")
	run(t, sc, "place black 3,3")
	c, ok := sc.occ.ColorAt(board.NewCell(3, 3))
	is.True(ok)
	is.Equal(c, board.Second)
	is.Equal(sc.occ.NumPieces(board.First), 0)
}

func TestSimpleMovesAndClear(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	run(t, sc, "new empty")
	run(t, sc, "place first 0,0 1,1")
	is.Equal(run(t, sc, "moves 0,0"), "no legal moves for first piece on (0,0)")
	run(t, sc, "clear 1,1")
	is.Equal(run(t, sc, "moves 0,0"), "moves for first piece on (0,0):\n  1: (1,1)")
}

func TestCommandErrors(t *testing.T) {
	sc := testController(t)
	for _, line := range []string{
		"frobnicate",
		"new sideways",
		"moves 4,4",
		"moves four",
		"moves",
		"place purple 3,3",
		"place first 3,4",
		"clear",
		"position 10/10",
		"load",
		"set cache maybe",
		"set colour true",
	} {
		_, err := sc.handle(line)
		assert.Error(t, err, line)
	}
}

func TestPositionCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	is.Equal(run(t, sc, "position"), layout.StartingPosition)
	pos := "10/10/10/10/5f4/4f1f3/9s/4f1f3/10/10"
	run(t, sc, "position "+pos)
	is.Equal(run(t, sc, "pos"), pos)
}

func TestSaveAndLoad(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	path := filepath.Join(t.TempDir(), "pos.yaml")
	run(t, sc, "position 10/10/10/10/5f4/4f1f3/9s/4f1f3/10/10")
	is.Equal(run(t, sc, "save "+path+" -desc 'two ways'"), "Saved position to "+path)
	saved := layout.ToCompact(sc.occ)

	run(t, sc, "new")
	is.Equal(layout.ToCompact(sc.occ), layout.StartingPosition)
	run(t, sc, "load "+path)
	is.Equal(layout.ToCompact(sc.occ), saved)

	_, err := sc.handle("load " + filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(err != nil)
}

func TestSetOptions(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	is.Equal(run(t, sc, "set"), "Settings:\n  cache: true\n  trace: false\n")
	is.Equal(run(t, sc, "set cache"), "true")
	is.Equal(run(t, sc, "set cache false"), "cache set to false")
	is.True(!sc.options.cacheMoves)

	run(t, sc, "new empty")
	run(t, sc, "place first 5,5")
	run(t, sc, "moves 5,5")
	run(t, sc, "moves 5,5")
	hits, misses := sc.moveCache.Stats()
	is.Equal(hits+misses, 0)
}

func TestHelp(t *testing.T) {
	sc := testController(t)
	assert.Contains(t, run(t, sc, "help"), "moves <x,y>")
	assert.Contains(t, run(t, sc, "help position"), "compact")
	assert.Contains(t, run(t, sc, "help nothing"), "There is no help text")
}

func TestShowBoard(t *testing.T) {
	sc := testController(t)
	assert.Equal(t, sc.occ.ToDisplayText(), run(t, sc, "show"))
	assert.Contains(t, run(t, sc, "s"), "first: 20  second: 20")
}

func TestScript(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	path := filepath.Join(t.TempDir(), "test.lua")
	script := `
local json = require("json")
draughts_run("new empty")
draughts_run("place first 5,5")
local moves = draughts_moves("5,5")
if #moves ~= 2 then error("expected 2 moves") end
local enc = json.encode(draughts_pieces("first"))
if enc ~= '["5,5"]' then error(enc) end
local out, err = draughts_run("moves 0,1")
if out ~= nil or err == nil then error("expected an error") end
draughts_run("place second " .. moves[1].target)
`
	is.NoErr(os.WriteFile(path, []byte(script), 0644))
	is.Equal(run(t, sc, "script "+path), "ran "+path)
	c, ok := sc.occ.ColorAt(board.NewCell(4, 6))
	is.True(ok)
	is.Equal(c, board.Second)

	_, err := sc.handle("script " + filepath.Join(t.TempDir(), "missing.lua"))
	is.True(err != nil)
}
