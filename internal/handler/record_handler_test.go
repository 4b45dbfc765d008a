package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "familyboard/internal/errors"
	"familyboard/internal/service"
	"familyboard/internal/tabular"
)

func listRequest(t *testing.T, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestRecordHandler_Unconfigured(t *testing.T) {
	// No credentials: every listing short-circuits with 503 before any remote call.
	svc := service.NewRecordService(tabular.New("", ""), nil, "Questions_user")
	h := NewRecordHandler(svc)

	for name, fn := range map[string]echo.HandlerFunc{
		"records":   h.ListRecords,
		"users":     h.ListUsers,
		"questions": h.ListQuestions,
	} {
		t.Run(name, func(t *testing.T) {
			rec := listRequest(t, fn, "/api/records")
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

			var env apperrors.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.False(t, env.Success)
			assert.Equal(t, apperrors.TabularRemediation, env.Message)
		})
	}
}

func TestRecordHandler_EmptyTableIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"records": []}`)
	}))
	t.Cleanup(srv.Close)

	client := tabular.New("key", "base")
	client.BaseURL = srv.URL
	client.HTTPClient = srv.Client()

	h := NewRecordHandler(service.NewRecordService(client, nil, "Questions_user"))

	rec := listRequest(t, h.ListRecords, "/api/records")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "records": []}`, rec.Body.String())
}

func TestRecordHandler_ListUsersPayloadKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/base/User", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"records": [{"id": "recU1", "fields": {"first_name": "Maria"}}]}`)
	}))
	t.Cleanup(srv.Close)

	client := tabular.New("key", "base")
	client.BaseURL = srv.URL
	client.HTTPClient = srv.Client()

	h := NewRecordHandler(service.NewRecordService(client, nil, "Questions_user"))

	rec := listRequest(t, h.ListUsers, "/api/records/users")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "users")
	assert.NotContains(t, body, "records")
}

func TestRecordHandler_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"type": "AUTHENTICATION_REQUIRED"}}`)
	}))
	t.Cleanup(srv.Close)

	client := tabular.New("bad-key", "base")
	client.BaseURL = srv.URL
	client.HTTPClient = srv.Client()

	h := NewRecordHandler(service.NewRecordService(client, nil, "Questions_user"))

	rec := listRequest(t, h.ListRecords, "/api/records")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var env apperrors.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.NotNil(t, env.Details)
}
