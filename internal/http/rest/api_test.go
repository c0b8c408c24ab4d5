package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pinspot/pinspot_api/config"
	"github.com/pinspot/pinspot_api/util/tracing"
	"github.com/pinspot/pinspot_api/util/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAPI() *API {
	return &API{
		Config: &config.Config{
			JwtSecret:  "test-secret",
			JwtExpires: "1h",
		},
	}
}

// authedRequest builds a request carrying the tracing and user context the
// middleware chain would normally install.
func authedRequest(method, target string, body []byte, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), values.ContextTracingKey, tracing.Context{
		RequestID:     "test-request",
		RequestSource: "test",
	})
	ctx = context.WithValue(ctx, values.ContextUserKey, userID)
	return req.WithContext(ctx)
}

func TestRequestTracingRejectsMissingSource(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a request source")
	})

	rec := httptest.NewRecorder()
	RequestTracing(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestTracingInstallsContext(t *testing.T) {
	var got tracing.Context
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Context().Value(values.ContextTracingKey).(tracing.Context)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(values.HeaderRequestSource, "mobile")
	req.Header.Set(values.HeaderRequestID, "abc123")

	RequestTracing(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "mobile", got.RequestSource)
	assert.Equal(t, "abc123", got.RequestID)
}

func TestRequestTracingGeneratesRequestID(t *testing.T) {
	var got tracing.Context
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Context().Value(values.ContextTracingKey).(tracing.Context)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(values.HeaderRequestSource, "mobile")

	RequestTracing(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEmpty(t, got.RequestID)
}

func TestTokenRoundTrip(t *testing.T) {
	api := testAPI()

	token, expiresAt, err := api.createToken(42)
	require.NoError(t, err)
	assert.False(t, expiresAt.IsZero())

	claims, err := api.verifyToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	api := testAPI()
	token, _, err := api.createToken(42)
	require.NoError(t, err)

	other := testAPI()
	other.Config.JwtSecret = "different-secret"
	_, err = other.verifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	api := testAPI()
	api.Config.JwtExpires = "-1h"
	token, _, err := api.createToken(42)
	require.NoError(t, err)

	_, err = api.verifyToken(token)
	require.Error(t, err)
	assert.Equal(t, "token expired", err.Error())
}

func TestRequireAdminBlocksNonAdmins(t *testing.T) {
	api := testAPI()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for non-admins")
	})

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req = req.WithContext(context.WithValue(req.Context(), values.ContextAdminKey, false))

	rec := httptest.NewRecorder()
	api.RequireAdmin(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminPassesAdmins(t *testing.T) {
	api := testAPI()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req = req.WithContext(context.WithValue(req.Context(), values.ContextAdminKey, true))

	api.RequireAdmin(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, called)
}

// The both/neither target states must be rejected before any store access;
// Deps is nil here, so reaching the service would panic the test.
func TestCastVoteRejectsAmbiguousTarget(t *testing.T) {
	api := testAPI()

	cases := map[string]string{
		"both":    `{"vote_type":"upvote","picture_id":1,"comment_id":2}`,
		"neither": `{"vote_type":"upvote"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := authedRequest(http.MethodPost, "/votes", []byte(body), 7)
			rec := httptest.NewRecorder()
			Handler(api.CastVote).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp ServerResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, values.Unprocessable, resp.Status)
		})
	}
}

func TestCastVoteRejectsBadVoteType(t *testing.T) {
	api := testAPI()

	body := []byte(`{"vote_type":"sideways","picture_id":1}`)
	rec := httptest.NewRecorder()
	Handler(api.CastVote).ServeHTTP(rec, authedRequest(http.MethodPost, "/votes", body, 7))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFileReportRejectsAmbiguousTarget(t *testing.T) {
	api := testAPI()

	body := []byte(`{"reason":"spam","picture_id":1,"comment_id":2}`)
	rec := httptest.NewRecorder()
	Handler(api.FileReport).ServeHTTP(rec, authedRequest(http.MethodPost, "/reports", body, 7))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestFileReportRejectsUnknownReason(t *testing.T) {
	api := testAPI()

	body := []byte(`{"reason":"because","picture_id":1}`)
	rec := httptest.NewRecorder()
	Handler(api.FileReport).ServeHTTP(rec, authedRequest(http.MethodPost, "/reports", body, 7))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
