package checkin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc-checkin/internal/platform/cache"
)

func newTestRouter(store TableStore, clk *fakeClock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := NewService(store, cache.New(10*time.Minute, clk.Now), clk.Now)
	api := r.Group("/api/v1")
	RegisterRoutes(api, svc)
	RegisterStaffRoutes(api, svc)
	return r
}

// kiosks post as text/plain to avoid a CORS preflight; the handler must
// decode the body anyway
func postAction(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var res Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestDispatchQuery(t *testing.T) {
	store := &fakeStore{rows: newTable(
		[]string{"A1", "0912345678", "王小明", "Intro", "2025-11-08", "Workshop", "", ""},
	)}
	clk := &fakeClock{now: time.Date(2025, 11, 8, 9, 0, 0, 0, time.UTC)}
	r := newTestRouter(store, clk)

	t.Run("success", func(t *testing.T) {
		w := postAction(r, `{"action":"query","phone":"0912345678"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		res := decode(t, w)
		assert.True(t, res.Success)
		require.NotNil(t, res.Data)
		assert.Equal(t, "A1", res.Data.ID)
		assert.Equal(t, "2025/11/08", res.Data.CourseDate)
		assert.NotContains(t, w.Body.String(), "check_in_time")
	})

	t.Run("not found", func(t *testing.T) {
		w := postAction(r, `{"action":"query","phone":"0900000000"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		res := decode(t, w)
		assert.False(t, res.Success)
		assert.Equal(t, ErrCodeNotFound, res.Code)
		assert.NotEmpty(t, res.Message)
	})

	t.Run("missing phone", func(t *testing.T) {
		w := postAction(r, `{"action":"query"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrCodeInvalidArgument, decode(t, w).Code)
	})
}

func TestDispatchCheckIn(t *testing.T) {
	store := &fakeStore{rows: newTable(
		[]string{"A1", "0912345678", "王小明", "Intro", "2025-11-08", "Workshop", "", ""},
	)}
	clk := &fakeClock{now: time.Date(2025, 11, 8, 9, 30, 0, 0, time.UTC)}
	r := newTestRouter(store, clk)

	w := postAction(r, `{"action":"checkin","id":"A1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.True(t, res.Success)
	assert.Equal(t, "2025-11-08T09:30:00Z", res.Timestamp)

	// duplicate stays HTTP 200 with the typed discriminant
	w = postAction(r, `{"action":"checkin","id":"A1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	res = decode(t, w)
	assert.False(t, res.Success)
	assert.Equal(t, ErrCodeAlreadyCheckedIn, res.Code)
	assert.Equal(t, StatusCheckedIn, res.DebugStatus)
	assert.Contains(t, res.Message, "已完成報到")

	w = postAction(r, `{"action":"checkin","id":"B9"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ErrCodeNotFound, decode(t, w).Code)
}

func TestDispatchBadRequests(t *testing.T) {
	store := &fakeStore{rows: newTable()}
	clk := &fakeClock{now: time.Date(2025, 11, 8, 9, 0, 0, 0, time.UTC)}
	r := newTestRouter(store, clk)

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown action", body: `{"action":"destroy"}`},
		{name: "missing action", body: `{"phone":"0912345678"}`},
		{name: "empty body", body: ``},
		{name: "not json", body: `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postAction(r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			res := decode(t, w)
			assert.False(t, res.Success)
			assert.Equal(t, ErrCodeInvalidArgument, res.Code)
		})
	}
}

type failingStore struct{}

func (failingStore) Rows(ctx context.Context) ([][]string, error) {
	return nil, assert.AnError
}

func TestDispatchInternalFault(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 11, 8, 9, 0, 0, 0, time.UTC)}
	r := newTestRouter(failingStore{}, clk)

	w := postAction(r, `{"action":"query","phone":"0912345678"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	res := decode(t, w)
	assert.False(t, res.Success)
	assert.Equal(t, ErrCodeInternal, res.Code)
	// raw error text never reaches the client
	assert.NotContains(t, res.Message, assert.AnError.Error())
}

func TestListAttendeesRoute(t *testing.T) {
	store := &fakeStore{rows: newTable(
		[]string{"A1", "0912345678", "王小明", "Intro", "2025-11-08", "Workshop", "CheckedIn", "2025-11-08T01:00:00Z"},
		[]string{"A2", "0922333444", "李小華", "Intro", "2025-11-08", "Workshop", "", ""},
	)}
	clk := &fakeClock{now: time.Date(2025, 11, 8, 9, 0, 0, 0, time.UTC)}
	r := newTestRouter(store, clk)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendees", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var res StaffListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.CheckedIn)
}
