// Package layout reads and writes board positions, either in a compact
// one-line notation or as YAML files.
package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/draughts/board"
)

// StartingPosition is the opening layout in compact notation.
const StartingPosition = "1s1s1s1s1s/s1s1s1s1s1/1s1s1s1s1s/s1s1s1s1s1/10/10/" +
	"1f1f1f1f1f/f1f1f1f1f1/1f1f1f1f1f/f1f1f1f1f1"

var (
	ErrRowCount       = errors.New("position must have 10 rows separated by /")
	ErrRowLength      = errors.New("row must describe exactly 10 cells")
	ErrBadToken       = errors.New("unrecognized character in position")
	ErrUnplayableCell = errors.New("piece on a light cell")
)

// ParseCompact returns the occupancy described by a compact position string.
// The string has 10 rows separated by '/', the first one being row 9. In a
// row, 'f' is a First piece, 's' a Second piece and a number is a run of
// empty cells. See StartingPosition for an example.
func ParseCompact(pos string) (*board.Occupancy, error) {
	rows := strings.Split(strings.TrimSpace(pos), "/")
	if len(rows) != board.Dim {
		return nil, fmt.Errorf("%w: got %d", ErrRowCount, len(rows))
	}
	var first, second []board.Cell
	for i, row := range rows {
		y := board.Dim - 1 - i
		x := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			switch {
			case ch >= '0' && ch <= '9':
				k := j
				for k+1 < len(row) && row[k+1] >= '0' && row[k+1] <= '9' {
					k++
				}
				n, err := strconv.Atoi(row[j : k+1])
				if err != nil {
					return nil, err
				}
				x += n
				j = k
			case ch == 'f' || ch == 's':
				cell := board.NewCell(x, y)
				if x >= board.Dim {
					return nil, fmt.Errorf("%w: row %d", ErrRowLength, y)
				}
				if !cell.IsPlayable() {
					return nil, fmt.Errorf("%w: %v", ErrUnplayableCell, cell)
				}
				if ch == 'f' {
					first = append(first, cell)
				} else {
					second = append(second, cell)
				}
				x++
			default:
				return nil, fmt.Errorf("%w: %q in row %d", ErrBadToken, ch, y)
			}
		}
		if x != board.Dim {
			return nil, fmt.Errorf("%w: row %d has %d", ErrRowLength, y, x)
		}
	}
	log.Debug().Int("first", len(first)).Int("second", len(second)).Msg("parsed-compact-position")
	return board.NewOccupancy(first, second)
}

// ToCompact is the inverse of ParseCompact.
func ToCompact(occ *board.Occupancy) string {
	rows := make([]string, 0, board.Dim)
	for y := board.Dim - 1; y >= 0; y-- {
		var sb strings.Builder
		empty := 0
		for x := 0; x < board.Dim; x++ {
			col, ok := occ.ColorAt(board.NewCell(x, y))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			if col == board.First {
				sb.WriteByte('f')
			} else {
				sb.WriteByte('s')
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "/")
}
