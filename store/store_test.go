package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	t.Run("valid hex id", func(t *testing.T) {
		oid, err := ParseID("507f1f77bcf86cd799439011")
		assert.NoError(t, err)
		assert.Equal(t, "507f1f77bcf86cd799439011", oid.Hex())
	})

	t.Run("rejects short id", func(t *testing.T) {
		_, err := ParseID("123")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("rejects non-hex id", func(t *testing.T) {
		_, err := ParseID("zzzzzzzzzzzzzzzzzzzzzzzz")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := ParseID("")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestNilStoreIsUnavailable(t *testing.T) {
	var s *Store
	assert.False(t, s.Available())
	assert.Error(t, s.Ping(context.Background()))

	_, err := s.Count(context.Background(), Products)
	assert.Error(t, err)

	_, err = s.InsertOne(context.Background(), Orders, map[string]any{"x": 1})
	assert.Error(t, err)
}
