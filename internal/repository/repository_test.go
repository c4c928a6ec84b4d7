package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrobotics/storefront-api/internal/apperrors"
)

func TestClassifyPQError(t *testing.T) {
	t.Parallel()

	t.Run("unique violation is a conflict", func(t *testing.T) {
		t.Parallel()

		err := classifyPQError("insert user", &pq.Error{Code: "23505"})
		assert.True(t, apperrors.IsConflict(err))
		assert.Contains(t, err.Error(), "uniqueness")
	})

	t.Run("foreign key violation is a conflict", func(t *testing.T) {
		t.Parallel()

		err := classifyPQError("insert address", &pq.Error{Code: "23503"})
		assert.True(t, apperrors.IsConflict(err))
		assert.Contains(t, err.Error(), "referenced row")
	})

	t.Run("other pq codes become storage errors", func(t *testing.T) {
		t.Parallel()

		cause := &pq.Error{Code: "23514"}
		err := classifyPQError("insert product", cause)
		assert.False(t, apperrors.IsConflict(err))

		var storageErr *apperrors.StorageError
		require.True(t, errors.As(err, &storageErr))
		assert.Equal(t, "insert product", storageErr.Op)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("non-pq errors become storage errors", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection reset")
		err := classifyPQError("list orders", cause)

		var storageErr *apperrors.StorageError
		require.True(t, errors.As(err, &storageErr))
		assert.ErrorIs(t, err, cause)
	})
}

func TestUpdateSet(t *testing.T) {
	t.Parallel()

	t.Run("empty set renders nothing", func(t *testing.T) {
		t.Parallel()

		var u updateSet
		assert.True(t, u.Empty())

		clause, args := u.Clause()
		assert.Empty(t, clause)
		assert.Empty(t, args)
		assert.Equal(t, 1, u.NextIndex())
	})

	t.Run("single column", func(t *testing.T) {
		t.Parallel()

		var u updateSet
		u.Add("payment_status", "completed")

		clause, args := u.Clause()
		assert.Equal(t, "payment_status = $1", clause)
		assert.Equal(t, []interface{}{"completed"}, args)
		assert.Equal(t, 2, u.NextIndex())
	})

	t.Run("multiple columns number sequentially", func(t *testing.T) {
		t.Parallel()

		var u updateSet
		u.Add("payment_status", "completed")
		u.Add("shipping_status", "shipped")
		u.Add("updated_at", "NOW()")

		clause, args := u.Clause()
		assert.Equal(t, "payment_status = $1, shipping_status = $2, updated_at = $3", clause)
		assert.Len(t, args, 3)
		assert.Equal(t, 4, u.NextIndex(), "WHERE clause continues from here")
		assert.False(t, u.Empty())
	})
}
