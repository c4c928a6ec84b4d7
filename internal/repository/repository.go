package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/qrobotics/storefront-api/internal/apperrors"
)

// pq error codes we classify instead of surfacing as raw storage errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// classifyPQError maps constraint violations to the application error
// taxonomy. Anything else becomes a StorageError for the given operation.
func classifyPQError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return apperrors.NewConflict("duplicate value violates a uniqueness constraint")
		case pqForeignKeyViolation:
			return apperrors.NewConflict("referenced row does not exist or is still referenced")
		}
	}
	return apperrors.NewStorage(op, err)
}

// updateSet collects column/value pairs for a partial UPDATE and renders the
// SET clause with sequential placeholders, so callers never track placeholder
// indexes by hand.
type updateSet struct {
	cols []string
	args []interface{}
}

// Add registers one column assignment.
func (u *updateSet) Add(column string, value interface{}) {
	u.cols = append(u.cols, column)
	u.args = append(u.args, value)
}

// Empty reports whether no assignments were registered.
func (u *updateSet) Empty() bool { return len(u.cols) == 0 }

// Clause renders "col1 = $1, col2 = $2, ..." starting at placeholder $1 and
// returns the clause together with its ordered arguments. Extra trailing
// arguments (e.g. the WHERE id) continue the numbering via NextIndex.
func (u *updateSet) Clause() (string, []interface{}) {
	parts := make([]string, len(u.cols))
	for i, col := range u.cols {
		parts[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return strings.Join(parts, ", "), u.args
}

// NextIndex returns the placeholder index that follows the rendered clause.
func (u *updateSet) NextIndex() int { return len(u.cols) + 1 }
