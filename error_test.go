package wheelads_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/wheelads"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wheelads.Errorf(wheelads.ENOTFOUND, "listing %q not found", "123")

	assert.Equal(t, wheelads.ENOTFOUND, wheelads.ErrorCode(err))
	assert.Equal(t, "listing \"123\" not found", wheelads.ErrorMessage(err))
	assert.Equal(t, "listing \"123\" not found", err.Error())
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wheelads.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch page: %w", wheelads.Errorf(wheelads.EUNAVAILABLE, "HTTP 503"))

	assert.Equal(t, wheelads.EUNAVAILABLE, wheelads.ErrorCode(err))
	assert.Equal(t, "HTTP 503", wheelads.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, wheelads.EINTERNAL, wheelads.ErrorCode(err))
	assert.Equal(t, "boom", wheelads.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wheelads.ErrorMessage(nil))
}
