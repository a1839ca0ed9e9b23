package board

import (
	"fmt"
	"strings"
)

// DisplayRune returns the character used for cell c in board diagrams.
func (o *Occupancy) DisplayRune(c Cell) rune {
	if col, ok := o.ColorAt(c); ok {
		if col == First {
			return 'f'
		}
		return 's'
	}
	if c.IsPlayable() {
		return '.'
	}
	return ' '
}

// ToDisplayText renders the board with row 9 at the top and column 0 on the
// left.
func (o *Occupancy) ToDisplayText() string {
	var str strings.Builder
	row := "   "
	for x := 0; x < Dim; x++ {
		row = row + fmt.Sprintf("%d ", x)
	}
	str.WriteString(row + "\n")
	str.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	for y := Dim - 1; y >= 0; y-- {
		row := fmt.Sprintf("%2d|", y)
		for x := 0; x < Dim; x++ {
			row = row + string(o.DisplayRune(NewCell(x, y))) + " "
		}
		row = row + "|"
		str.WriteString(row + "\n")
	}
	str.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	str.WriteString(fmt.Sprintf("first: %d  second: %d\n",
		o.NumPieces(First), o.NumPieces(Second)))
	return "\n" + str.String()
}
