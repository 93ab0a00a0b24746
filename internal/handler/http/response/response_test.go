package response_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blubridge/hrms-backend-go/internal/handler/http/response"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Success(rec, map[string]interface{}{"total_count": 3, "page": 1})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "meta")
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), data["total_count"])
}

func TestCreatedEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Created(rec, "Employee created", map[string]string{"id": "emp-1"})

	assert.Equal(t, 201, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Employee created", body["message"])
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Conflict(rec, "Already checked in today")

	assert.Equal(t, 409, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	detail, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", detail["code"])
	assert.Equal(t, "Already checked in today", detail["message"])
}

func TestValidationErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	response.ValidationError(rec, map[string]string{"email": "email is required"})

	assert.Equal(t, 422, rec.Code)
	body := decodeBody(t, rec)
	detail, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", detail["code"])
	details, ok := detail["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "email is required", details["email"])
}
