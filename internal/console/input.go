package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/benbeisheim/checkers-backend/internal/model"
)

var ErrTooFewPositions = errors.New("enter a starting square and at least one destination")

// ParseSequence reads whitespace-separated "row,col" pairs, e.g. "2,1 3,2".
func ParseSequence(line string) ([]model.Position, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, ErrTooFewPositions
	}

	sequence := make([]model.Position, 0, len(fields))
	for _, field := range fields {
		pos, err := parseCoordinates(field)
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, pos)
	}
	return sequence, nil
}

func parseCoordinates(field string) (model.Position, error) {
	parts := strings.Split(field, ",")
	if len(parts) != 2 {
		return model.Position{}, fmt.Errorf("invalid coordinates %q: expected row,col", field)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Position{}, fmt.Errorf("invalid row in %q: %w", field, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Position{}, fmt.Errorf("invalid column in %q: %w", field, err)
	}
	return model.Position{Row: row, Col: col}, nil
}
