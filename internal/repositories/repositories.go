package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// intCriterion reads a positive int from List criteria.
func intCriterion(criteria map[string]any, key string) (int, bool, error) {
	v, ok := criteria[key]
	if !ok {
		return 0, false, nil
	}
	n, ok := v.(int)
	if !ok || n <= 0 {
		return 0, false, fmt.Errorf("criterion %s must be a positive int, got %v", key, v)
	}
	return n, true, nil
}
