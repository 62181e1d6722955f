package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/club-stadium-api/internal/model"
	"github.com/iliyamo/club-stadium-api/internal/queue"
	"github.com/iliyamo/club-stadium-api/internal/repository/memory"
	"github.com/iliyamo/club-stadium-api/internal/service"
)

var errStorage = errors.New("dial tcp 10.0.0.5:3306: connection refused")

// brokenClubs fails every call.
type brokenClubs struct{}

func (brokenClubs) GetByID(context.Context, uint64) (*model.Club, error) { return nil, errStorage }
func (brokenClubs) GetAll(context.Context) ([]model.Club, error)         { return nil, errStorage }
func (brokenClubs) Add(context.Context, model.ClubInput) (*model.Club, error) {
	return nil, errStorage
}
func (brokenClubs) Update(context.Context, uint64, model.ClubInput) (*model.Club, error) {
	return nil, errStorage
}
func (brokenClubs) Delete(context.Context, uint64) (bool, error) { return false, errStorage }

type recordingNotifier struct {
	events chan queue.ChangeEvent
	err    error
}

func (n *recordingNotifier) Publish(_ context.Context, ev queue.ChangeEvent) error {
	n.events <- ev
	return n.err
}

func (n *recordingNotifier) next(t *testing.T) queue.ChangeEvent {
	t.Helper()
	select {
	case ev := <-n.events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
		return queue.ChangeEvent{}
	}
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStorageFailureIs500(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	h := NewClubHandler(service.NewClubService(brokenClubs{}), nil)
	e.GET("/club/all", h.List)
	e.GET("/club/:clubId", h.Get)
	e.POST("/club/create", h.Create)

	for _, rec := range []*httptest.ResponseRecorder{
		serve(e, http.MethodGet, "/club/all", ""),
		serve(e, http.MethodGet, "/club/1", ""),
		serve(e, http.MethodPost, "/club/create", `{"name":"FC Alpha","place":1,"clubId":10}`),
	} {
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	}
}

func TestErrorHandlerKeepsHTTPErrorStatus(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler

	rec := serve(e, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestWritesPublishEvents(t *testing.T) {
	n := &recordingNotifier{events: make(chan queue.ChangeEvent, 4), err: errors.New("broker down")}
	e := echo.New()
	h := NewClubHandler(service.NewClubService(memory.NewClubStore()), n)
	e.POST("/club/create", h.Create)
	e.PUT("/club/:clubId", h.Update)
	e.DELETE("/club/:clubId", h.Delete)

	rec := serve(e, http.MethodPost, "/club/create", `{"name":"FC Alpha","place":1,"clubId":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, "publish failures must not affect the response")
	ev := n.next(t)
	assert.Equal(t, queue.EntityClub, ev.Entity)
	assert.Equal(t, queue.ActionCreated, ev.Action)
	assert.Equal(t, uint64(1), ev.ID)
	assert.Equal(t, "FC Alpha", ev.Name)

	require.Equal(t, http.StatusCreated, serve(e, http.MethodPut, "/club/1", `{"name":"FC Beta","place":2,"clubId":10}`).Code)
	assert.Equal(t, queue.ActionUpdated, n.next(t).Action)

	require.Equal(t, http.StatusNoContent, serve(e, http.MethodDelete, "/club/1", "").Code)
	assert.Equal(t, queue.ActionDeleted, n.next(t).Action)

	// A 404 publishes nothing.
	require.Equal(t, http.StatusNotFound, serve(e, http.MethodDelete, "/club/1", "").Code)
	select {
	case ev := <-n.events:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStadiumWritesPublishEvents(t *testing.T) {
	n := &recordingNotifier{events: make(chan queue.ChangeEvent, 1)}
	e := echo.New()
	h := NewStadiumHandler(service.NewStadiumService(memory.NewStadiumStore()), n)
	e.POST("/stadium/create", h.Create)

	rec := serve(e, http.MethodPost, "/stadium/create", `{"clubName":"FC Alpha","stadiumsName":"Alpha Arena","stadiumsId":7,"amountOfSeats":42000}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	ev := n.next(t)
	assert.Equal(t, queue.EntityStadium, ev.Entity)
	assert.Equal(t, "Alpha Arena", ev.Name)
}

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	e := echo.New()
	e.GET("/ok", Health(pinger{}))
	e.GET("/down", Health(pinger{err: errStorage}))
	e.GET("/memory", Health(nil))

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/ok", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(e, http.MethodGet, "/down", "").Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/memory", "").Code)
}

func TestParseID(t *testing.T) {
	e := echo.New()
	for raw, want := range map[string]bool{"1": true, "42": true, "0": false, "-1": false, "x": false, "": false} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("clubId")
		c.SetParamValues(raw)
		_, ok := parseID(c, "clubId")
		assert.Equal(t, want, ok, raw)
	}
}
