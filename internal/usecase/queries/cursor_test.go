//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("round trip keeps microsecond precision", func(t *testing.T) {
		at := time.Date(2025, 5, 1, 9, 30, 15, 987654321, time.UTC)
		id := uuid.New()

		gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

		require.NoError(t, err)
		assert.Equal(t, at.Truncate(time.Microsecond), gotAt)
		assert.Equal(t, id, gotID)
	})

	encode := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }
	invalid := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "unknown version", cursor: encode("v2:1700000000-" + uuid.NewString())},
		{name: "missing separator", cursor: encode("v1:1700000000")},
		{name: "bad timestamp", cursor: encode("v1:abc-" + uuid.NewString())},
		{name: "bad uuid", cursor: encode("v1:1700000000-not-a-uuid")},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
