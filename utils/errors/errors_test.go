package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/wa-crm/constant"
	cerr "github.com/muhammadheryan/wa-crm/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := cerr.SetCustomErrorDetail(constant.ErrIncompatibleOperator, "filters[1]: contains on amount")

	assert.Equal(t, "operator not supported for field", err.Error())
	assert.Equal(t, "0102", err.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, err.ErrorHTTPCode())
	assert.Equal(t, "filters[1]: contains on amount", err.Detail())
	assert.Equal(t, constant.ErrIncompatibleOperator, err.Type())
}

func TestCustomError_Is(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", cerr.SetCustomErrorDetail(constant.ErrNotFound, "saved search"))

	assert.True(t, stderrors.Is(wrapped, cerr.SetCustomError(constant.ErrNotFound)))
	assert.False(t, stderrors.Is(wrapped, cerr.SetCustomError(constant.ErrForbidden)))

	var ce cerr.CustomError
	assert.True(t, stderrors.As(wrapped, &ce))
	assert.Equal(t, http.StatusNotFound, ce.ErrorHTTPCode())
}
