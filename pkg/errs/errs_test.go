package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "", ErrorCode(nil))
	assert.Equal(t, ENOTFOUND, ErrorCode(New(ENOTFOUND, "post not found")))
	assert.Equal(t, EINTERNAL, ErrorCode(errors.New("boom")))
}

func TestErrorCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("follow: %w", New(ECONFLICT, "already following"))
	assert.Equal(t, ECONFLICT, ErrorCode(err))
	assert.True(t, IsCode(err, ECONFLICT))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "bad input 3", ErrorMessage(Errorf(EINVALID, "bad input %d", 3)))
	assert.Equal(t, "internal server error", ErrorMessage(errors.New("pq: connection refused")))
	assert.Equal(t, "", ErrorMessage(nil))
}

func TestSentinelMatching(t *testing.T) {
	sentinel := New(ECONFLICT, "already liked")
	wrapped := fmt.Errorf("like post 7: %w", sentinel)
	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Equal(t, "conflict: already liked", sentinel.Error())
}
