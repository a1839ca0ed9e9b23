package layout

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/draughts/board"
)

// PositionFile is the on-disk form of a position. Cells are written as "x,y".
type PositionFile struct {
	Description string   `yaml:"description,omitempty"`
	First       []string `yaml:"first"`
	Second      []string `yaml:"second"`
}

func parseCells(strs []string) ([]board.Cell, error) {
	cells := make([]board.Cell, 0, len(strs))
	for _, s := range strs {
		c, err := board.ParseCell(s)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func cellStrings(cells []board.Cell) []string {
	return lo.Map(cells, func(c board.Cell, _ int) string {
		return c.ShortString()
	})
}

// Occupancy builds the snapshot described by the file.
func (pf *PositionFile) Occupancy() (*board.Occupancy, error) {
	first, err := parseCells(pf.First)
	if err != nil {
		return nil, fmt.Errorf("first: %w", err)
	}
	second, err := parseCells(pf.Second)
	if err != nil {
		return nil, fmt.Errorf("second: %w", err)
	}
	return board.NewOccupancy(first, second)
}

// ReadYAML decodes a position file.
func ReadYAML(r io.Reader) (*board.Occupancy, error) {
	var pf PositionFile
	if err := yaml.NewDecoder(r).Decode(&pf); err != nil {
		if err == io.EOF {
			return board.EmptyOccupancy(), nil
		}
		return nil, err
	}
	return pf.Occupancy()
}

// WriteYAML encodes occ as a position file.
func WriteYAML(w io.Writer, occ *board.Occupancy, description string) error {
	first, err := occ.PiecesOf(board.First)
	if err != nil {
		return err
	}
	second, err := occ.PiecesOf(board.Second)
	if err != nil {
		return err
	}
	pf := PositionFile{
		Description: description,
		First:       cellStrings(first),
		Second:      cellStrings(second),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&pf); err != nil {
		return err
	}
	return enc.Close()
}

// LoadFile reads a YAML position file from disk.
func LoadFile(path string) (*board.Occupancy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	log.Debug().Str("path", path).Msg("loading-position-file")
	return ReadYAML(f)
}

// SaveFile writes occ to a YAML position file, replacing any existing file.
func SaveFile(path string, occ *board.Occupancy, description string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteYAML(f, occ, description); err != nil {
		f.Close()
		return err
	}
	log.Debug().Str("path", path).Msg("saved-position-file")
	return f.Close()
}
