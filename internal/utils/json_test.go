package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	err := WriteJSON(w, http.StatusOK, map[string]bool{"valid": true})

	assert.NoError(t, err, "WriteJSON should not return an error")
	assert.Equal(t, http.StatusOK, w.Code, "Status code mismatch")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"), "Content-Type header mismatch")
	assert.JSONEq(t, `{"valid":true}`, w.Body.String(), "Response body mismatch")
}

func TestWriteJSONError(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		message        string
		expectedBody   string
		expectedStatus int
	}{
		{
			name:           "bad request",
			status:         http.StatusBadRequest,
			message:        "bad request",
			expectedBody:   `{"error":"bad request"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unauthorized",
			status:         http.StatusUnauthorized,
			message:        "Invalid token",
			expectedBody:   `{"error":"Invalid token"}`,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			err := WriteJSONError(w, tt.status, tt.message)

			assert.NoError(t, err, "WriteJSONError should not return an error")
			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"), "Content-Type header mismatch")
			assert.JSONEq(t, tt.expectedBody, w.Body.String(), "Response body mismatch")
		})
	}
}
