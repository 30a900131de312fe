//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AssertSuccessResponse checks the status and, for 2xx with a target, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error envelope message contains
// expectedMsg. An empty expectedMsg only checks the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var env errorEnvelope
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "decode error envelope: %s", w.Body.String()) {
		return
	}
	assert.NotEmpty(t, env.Error.Message, "error envelope has no message")
	if expectedMsg != "" {
		assert.Contains(t, env.Error.Message, expectedMsg)
	}
}
