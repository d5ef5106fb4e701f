package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		expectLog bool
	}{
		{name: "Client error is not logged", status: http.StatusBadRequest, expectLog: false},
		{name: "Server error is logged", status: http.StatusInternalServerError, expectLog: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			req := httptest.NewRequest("GET", "/", nil)
			rec := httptest.NewRecorder()

			RespondError(rec, req, logger, tc.status, "something failed", errors.New("boom"))

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "something failed", resp["error"])
			assert.NotContains(t, resp, "fields")

			if tc.expectLog {
				assert.Contains(t, buf.String(), "boom")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	type input struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `form:"name" validate:"required"`
	}

	t.Run("Valid input", func(t *testing.T) {
		fields, err := Validate(input{Email: "jane@example.com", Name: "Jane"})
		require.NoError(t, err)
		assert.Nil(t, fields)
	})

	t.Run("Missing fields use client names", func(t *testing.T) {
		fields, err := Validate(input{})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"email": "is required",
			"name":  "is required",
		}, fields)
	})

	t.Run("Malformed email", func(t *testing.T) {
		fields, err := Validate(input{Email: "not-an-email", Name: "Jane"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"email": "must be a valid email address"}, fields)
	})

	t.Run("Non-struct value", func(t *testing.T) {
		_, err := Validate("nope")
		assert.Error(t, err)
	})
}

func TestRespondValidation(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondValidation(rec, map[string]string{"email": "is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Equal(t, "is required", resp.Fields["email"])
}
