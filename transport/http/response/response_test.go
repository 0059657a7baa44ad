package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "confirmable checkout",
			err:      fmt.Errorf("failed to checkout: %w", failure.ConfirmationRequired("balance of 1200.00 is due")),
			wantCode: http.StatusPreconditionRequired,
			wantBody: `{"error":"balance of 1200.00 is due","code":428}`,
		},
		{
			name:     "tax rate lookup keeps only the failure message",
			err:      fmt.Errorf("failed to checkout: %w", fmt.Errorf("failed to get tax rate: %w", failure.NotFound("setting"))),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"setting","code":404}`,
		},
		{
			name:     "occupied room",
			err:      failure.Conflict("room M201 is occupied"),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"room M201 is occupied","code":409}`,
		},
		{
			name:     "storage error is masked",
			err:      errors.New("sqlite: database is locked"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error","code":500}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]any{"bookingNo": "1001"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"bookingNo":"1001"}}`, rec.Body.String())
}

func TestWithAttachment(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithAttachment(rec, "text/csv", "folio-B-ab12c.csv", []byte("a,b\n"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="folio-B-ab12c.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n", rec.Body.String())
}
