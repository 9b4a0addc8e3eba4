package pinnedref_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pinnedref"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pinnedref.Errorf(pinnedref.ENOTFOUND, "bookmark %d not found", 42)

	assert.Equal(t, pinnedref.ENOTFOUND, pinnedref.ErrorCode(err))
	assert.Equal(t, "bookmark 42 not found", pinnedref.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("build card: %w", pinnedref.Errorf(pinnedref.EINVALID, "bad url"))

	assert.Equal(t, pinnedref.EINVALID, pinnedref.ErrorCode(err))
	assert.Equal(t, "bad url", pinnedref.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, pinnedref.EINTERNAL, pinnedref.ErrorCode(err))
	assert.Equal(t, "Internal error", pinnedref.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pinnedref.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pinnedref.ErrorMessage(nil))
}
