package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/iconswap/pkg/errors"
)

func TestSwapError_Error(t *testing.T) {
	err := errors.New(errors.ErrNoBackup, "no backup found")
	assert.Equal(t, "[NO_BACKUP] no backup found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("disk full"), errors.ErrFileWrite, "failed to write icon")
	assert.Equal(t, "[FILE_WRITE] failed to write icon: disk full", wrapped.Error())
}

func TestSwapError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("connection reset")
	err := errors.Wrap(inner, errors.ErrFetchFailed, "fetch failed")

	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestSwapError_IsMatchesOnCode(t *testing.T) {
	err := errors.Newf(errors.ErrMappingEmpty, "pack %s maps no icons", "p")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrMappingEmpty, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrMappingParse, "")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.ErrCancelled, errors.GetCode(errors.New(errors.ErrCancelled, "stopped")))
	assert.Equal(t, errors.ErrUnknown, errors.GetCode(fmt.Errorf("plain")))

	// Codes survive fmt wrapping
	wrapped := fmt.Errorf("outer: %w", errors.New(errors.ErrNoBackup, "none"))
	assert.Equal(t, errors.ErrNoBackup, errors.GetCode(wrapped))
	assert.True(t, errors.IsCode(wrapped, errors.ErrNoBackup))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "should be nil"))
}
