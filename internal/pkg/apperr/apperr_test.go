package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_TaggedError(t *testing.T) {
	err := NotFound("ride not found", "the ride with the provided ID does not exist")
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindBadRequest))
}

func TestKindOf_WrappedError(t *testing.T) {
	inner := Forbidden("not your ride")
	wrapped := fmt.Errorf("accept failed: %w", inner)

	assert.Equal(t, KindForbidden, KindOf(wrapped))

	var appErr *Error
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "not your ride", appErr.Message)
}

func TestKindOf_UntaggedError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("connection refused")))
}

func TestUnwrap_Cause(t *testing.T) {
	cause := errors.New("db down")
	err := Internal("failed to load ride", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.kind))
	}
}

func TestError_Reasons(t *testing.T) {
	err := BadRequest("pickup and destination locations are required",
		"pickup is missing from the request payload",
		"destination is missing from the request payload",
	)
	assert.Len(t, err.Reasons, 2)
	assert.Equal(t, "pickup and destination locations are required", err.Error())
}
