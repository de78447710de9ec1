//go:build unit

package errs_test

import (
	"testing"

	"movecar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	t.Run("Markされたエラーをセンチネルとして判定できる", func(t *testing.T) {
		cause := errs.New("dial tcp: connection refused")
		marked := errs.Mark(cause, errs.ErrStoreUnavailable)

		assert.True(t, errs.Is(marked, errs.ErrStoreUnavailable))
		assert.False(t, errs.Is(marked, errs.ErrRateLimited))
	})

	t.Run("Wrapを重ねてもマークは残る", func(t *testing.T) {
		cause := errs.Mark(errs.New("timeout"), errs.ErrStoreUnavailable)
		wrapped := errs.Wrap(cause, "failed to write session")

		assert.True(t, errs.Is(wrapped, errs.ErrStoreUnavailable))
	})

	t.Run("直接返されたセンチネルも一致する", func(t *testing.T) {
		assert.True(t, errs.Is(errs.ErrRateLimited, errs.ErrRateLimited))
	})

	t.Run("nilは何にも一致しない", func(t *testing.T) {
		assert.False(t, errs.Is(nil, errs.ErrStoreUnavailable))
	})
}
