package kiosk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc-checkin/internal/checkin"
)

func newTestServer(t *testing.T, handler func(req checkin.Request) (int, checkin.Response)) (*httptest.Server, *[]checkin.Request) {
	t.Helper()
	var seen []checkin.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/checkin", r.URL.Path)
		// preflight avoidance contract
		require.Equal(t, "text/plain;charset=utf-8", r.Header.Get("Content-Type"))

		var req checkin.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req)

		status, res := handler(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(res)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestQuerySanitizesPhone(t *testing.T) {
	srv, seen := newTestServer(t, func(req checkin.Request) (int, checkin.Response) {
		return http.StatusOK, checkin.Response{Success: true, Data: &checkin.AttendeeView{ID: "A1"}}
	})

	client := NewClient(srv.URL)
	res, err := client.Query(context.Background(), "０９１２-345 678")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "A1", res.Data.ID)

	require.Len(t, *seen, 1)
	assert.Equal(t, checkin.ActionQuery, (*seen)[0].Action)
	assert.Equal(t, "0912345678", (*seen)[0].Phone)
}

func TestQueryEmptyPhoneNoCall(t *testing.T) {
	srv, seen := newTestServer(t, func(req checkin.Request) (int, checkin.Response) {
		return http.StatusOK, checkin.Response{Success: true}
	})

	client := NewClient(srv.URL)
	_, err := client.Query(context.Background(), " -- ")
	assert.Error(t, err)
	assert.Empty(t, *seen, "empty sanitized input must not reach the network")
}

func TestCheckIn(t *testing.T) {
	srv, seen := newTestServer(t, func(req checkin.Request) (int, checkin.Response) {
		return http.StatusOK, checkin.Response{Success: true, Timestamp: "2025-11-08T09:30:00Z"}
	})

	client := NewClient(srv.URL)
	res, err := client.CheckIn(context.Background(), "A1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "2025-11-08T09:30:00Z", res.Timestamp)

	require.Len(t, *seen, 1)
	assert.Equal(t, checkin.ActionCheckIn, (*seen)[0].Action)
	assert.Equal(t, "A1", (*seen)[0].ID)
}

func TestCheckInDuplicateIsStructured(t *testing.T) {
	srv, _ := newTestServer(t, func(req checkin.Request) (int, checkin.Response) {
		return http.StatusOK, checkin.Response{
			Success:     false,
			Code:        checkin.ErrCodeAlreadyCheckedIn,
			Message:     "您已完成報到，無需重複操作。",
			DebugStatus: checkin.StatusCheckedIn,
		}
	})

	client := NewClient(srv.URL)
	res, err := client.CheckIn(context.Background(), "A1")
	require.NoError(t, err, "a duplicate is a result, not a transport error")
	assert.False(t, res.Success)
	assert.Equal(t, checkin.ErrCodeAlreadyCheckedIn, res.Code)
	assert.Equal(t, checkin.StatusCheckedIn, res.DebugStatus)
}

func TestBadRequestStillDecodes(t *testing.T) {
	srv, _ := newTestServer(t, func(req checkin.Request) (int, checkin.Response) {
		return http.StatusBadRequest, checkin.Response{
			Success: false,
			Code:    checkin.ErrCodeInvalidArgument,
			Message: "未知動作：destroy",
		}
	})

	client := NewClient(srv.URL)
	res, err := client.CheckIn(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, checkin.ErrCodeInvalidArgument, res.Code)
}

func TestServerFault(t *testing.T) {
	srv, _ := newTestServer(t, func(req checkin.Request) (int, checkin.Response) {
		return http.StatusInternalServerError, checkin.Response{Success: false, Code: checkin.ErrCodeInternal}
	})

	client := NewClient(srv.URL)
	_, err := client.CheckIn(context.Background(), "A1")
	assert.Error(t, err)
}
