package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("row missing")
	err := Wrap(cause, CodeNotFound, "user not found")

	assert.ErrorIs(t, err, cause)
	assert.True(t, HasCode(err, CodeNotFound))
	assert.Equal(t, "user not found: row missing", err.Error())
}

func TestAsFindsWrappedDomainError(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(CodeConflict, "duplicate"))

	de, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, CodeConflict, de.Code)
	assert.False(t, HasCode(errors.New("plain"), CodeConflict))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeInvalidInput))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusConflict, ToHTTPStatus(CodeConflict))
	assert.Equal(t, http.StatusUnauthorized, ToHTTPStatus(CodeUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(CodeInternal))
}
