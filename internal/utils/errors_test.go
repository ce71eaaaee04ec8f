package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusPerKind(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{NewValidationError("bad input"), http.StatusBadRequest},
		{NewAuthorizationError("not yours"), http.StatusForbidden},
		{NewNotFoundError("bill"), http.StatusNotFound},
		{NewDuplicateError("already captured"), http.StatusConflict},
		{NewInvalidStateError("cannot move"), http.StatusConflict},
		{NewAmountMismatchError(25000, 25001), http.StatusBadRequest},
		{NewSignatureMismatchError(), http.StatusBadRequest},
		{NewUpstreamGatewayError(errors.New("timeout")), http.StatusBadGateway},
		{NewInternalError(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.HTTPStatus(), "kind %s", tc.err.Kind)
	}
}

func TestAsAppErrorUnwrapsChains(t *testing.T) {
	inner := NewDuplicateError("already captured")
	wrapped := fmt.Errorf("settlement: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrKindDuplicate, appErr.Kind)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestAmountMismatchMessageNamesBothAmounts(t *testing.T) {
	err := NewAmountMismatchError(25000, 25001)
	assert.Contains(t, err.Message, "25000")
	assert.Contains(t, err.Message, "25001")
}
