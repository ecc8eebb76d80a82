package flightbag_test

import (
	"errors"
	"testing"

	"github.com/flightbag/flightbag"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := flightbag.Errorf(flightbag.ENOTFOUND, "pub %q not found", "sop")

	assert.Equal(t, flightbag.ENOTFOUND, flightbag.ErrorCode(err))
	assert.Equal(t, "pub \"sop\" not found", flightbag.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, flightbag.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, flightbag.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, flightbag.EINTERNAL, flightbag.ErrorCode(errors.New("boom")))
}
