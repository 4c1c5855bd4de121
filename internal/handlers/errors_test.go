package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad amount", apperrors.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("lookup: %w", apperrors.ErrUnknownCurrency), http.StatusBadRequest},
		{apperrors.ErrUnknownAccount, http.StatusBadRequest},
		{fmt.Errorf("%w: quote q1", apperrors.ErrNotFound), http.StatusNotFound},
		{apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{apperrors.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{apperrors.ErrStaleQuote, http.StatusUnprocessableEntity},
		{apperrors.ErrInvalidState, http.StatusConflict},
		{context.Canceled, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusForError(tc.err), tc.err.Error())
	}
}
