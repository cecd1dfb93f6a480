package htmlscan_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/htmlscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := htmlscan.Errorf(htmlscan.EINVALID, "scan root %q is not a directory", "/tmp/nope")

	assert.Equal(t, htmlscan.EINVALID, htmlscan.ErrorCode(err))
	assert.Equal(t, "scan root \"/tmp/nope\" is not a directory", htmlscan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, htmlscan.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, htmlscan.EINTERNAL, htmlscan.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, htmlscan.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", htmlscan.ErrorMessage(errors.New("boom")))
}
