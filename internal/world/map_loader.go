package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gridcaster/internal/logger"

	"go.uber.org/zap"
)

// ParseMap reads a text map: one row per line, one digit per cell.
// '.' is an alias for an empty cell. Spaces, tabs and commas between
// cells are ignored, as are blank lines and lines starting with '#'.
func ParseMap(r io.Reader) (*Grid, error) {
	var rows [][]Cell
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		row := make([]Cell, 0, len(trimmed))
		for col, ch := range trimmed {
			switch {
			case ch >= '0' && ch <= '9':
				row = append(row, Cell(ch-'0'))
			case ch == '.':
				row = append(row, CellEmpty)
			case ch == ' ' || ch == '\t' || ch == ',':
				continue
			default:
				return nil, fmt.Errorf("line %d col %d: unexpected map symbol %q", lineNo, col+1, ch)
			}
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}

	return NewGrid(rows)
}

// LoadMap loads a map from the specified file path
func LoadMap(mapPath string) (*Grid, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	grid, err := ParseMap(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	logger.Info("map loaded",
		zap.String("path", mapPath),
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.Int("doors", grid.Count(CellDoor)))
	return grid, nil
}
