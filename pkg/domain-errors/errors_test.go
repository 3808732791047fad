package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode_FindsWrappedError(t *testing.T) {
	base := New(CodeNotFound, "client not found")
	wrapped := fmt.Errorf("loading: %w", base)

	assert.True(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(wrapped, CodeValidation))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeExternalService, "text generation failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFieldsOf(t *testing.T) {
	fields := []FieldError{{Path: "nomeCompleto", Message: "Nome completo é obrigatório."}}
	err := fmt.Errorf("create: %w", NewValidation(fields))

	require.Len(t, FieldsOf(err), 1)
	assert.Equal(t, "nomeCompleto", FieldsOf(err)[0].Path)
	assert.Nil(t, FieldsOf(New(CodeInternal, "boom")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:      http.StatusBadRequest,
		CodeBadRequest:      http.StatusBadRequest,
		CodeNotFound:        http.StatusNotFound,
		CodeExternalService: http.StatusBadGateway,
		CodeInternal:        http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, HTTPStatus(code), string(code))
	}
}
