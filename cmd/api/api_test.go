package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"placepoints/internal/points"
	"placepoints/internal/ratelimiter"
	"placepoints/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubStore backs the handlers with an in-memory review table and ledger.
type stubStore struct {
	reviews map[string]*store.Review
	order   []string
	logs    []store.PointLog
	nextID  int64
}

func (s *stubStore) GetByID(_ context.Context, reviewID string) (*store.Review, error) {
	review, ok := s.reviews[reviewID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return review, nil
}

func (s *stubStore) GetByPlaceAndUser(_ context.Context, placeID, userID string) (*store.Review, error) {
	for _, id := range s.order {
		if r := s.reviews[id]; r.PlaceID == placeID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubStore) FirstForPlace(_ context.Context, placeID string) (*store.Review, error) {
	for _, id := range s.order {
		if r := s.reviews[id]; r.PlaceID == placeID {
			return r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubStore) CreateReview(_ context.Context, review *store.Review, entry *store.PointLog) error {
	if _, ok := s.reviews[review.ID]; ok {
		return store.ErrConflict
	}
	s.reviews[review.ID] = review
	s.order = append(s.order, review.ID)
	s.appendLog(entry)
	return nil
}

func (s *stubStore) UpdateReviewFlags(_ context.Context, review *store.Review, entry *store.PointLog) error {
	existing, ok := s.reviews[review.ID]
	if !ok {
		return store.ErrNotFound
	}
	existing.HasContent = review.HasContent
	existing.HasPhotos = review.HasPhotos
	s.appendLog(entry)
	return nil
}

func (s *stubStore) DeleteReview(_ context.Context, reviewID string, entry *store.PointLog) error {
	if _, ok := s.reviews[reviewID]; !ok {
		return store.ErrNotFound
	}
	delete(s.reviews, reviewID)
	for i, id := range s.order {
		if id == reviewID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.appendLog(entry)
	return nil
}

func (s *stubStore) UserEntries(_ context.Context, userID string, limit int, cursor int64) ([]store.PointLog, error) {
	var entries []store.PointLog
	for i := len(s.logs) - 1; i >= 0 && len(entries) < limit; i-- {
		entry := s.logs[i]
		if entry.UserID != userID || (cursor != 0 && entry.ID >= cursor) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *stubStore) UserTotal(_ context.Context, userID string) (int64, error) {
	var total int64
	for _, entry := range s.logs {
		if entry.UserID == userID {
			total += int64(entry.PContent + entry.PPhoto + entry.PFirst)
		}
	}
	return total, nil
}

func (s *stubStore) appendLog(entry *store.PointLog) {
	s.nextID++
	entry.ID = s.nextID
	s.logs = append(s.logs, *entry)
}

func newTestApplication(t *testing.T) (*application, *stubStore) {
	t.Helper()

	stub := &stubStore{reviews: make(map[string]*store.Review)}
	storage := store.Storage{Reviews: stub, Ledger: stub}

	app := &application{
		config: config{
			env:         "test",
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		store:       storage,
		points:      points.NewService(storage),
		logger:      zap.NewNop().Sugar(),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(100, time.Second),
	}
	return app, stub
}

func postEvent(t *testing.T, mux http.Handler, payload EventPayload) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func validPayload(action string) EventPayload {
	return EventPayload{
		Type:     "REVIEW",
		Action:   action,
		ReviewID: uuid.NewString(),
		Content:  "good place",
		UserID:   uuid.NewString(),
		PlaceID:  uuid.NewString(),
	}
}

func TestSubmitEventAdd(t *testing.T) {
	app, stub := newTestApplication(t)
	mux := app.mount()

	rr := postEvent(t, mux, validPayload("ADD"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data submitEventResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, points.ActionAdd, resp.Data.Action)
	assert.Len(t, stub.logs, 1)
}

func TestSubmitEventRejectsBadIDs(t *testing.T) {
	app, stub := newTestApplication(t)
	mux := app.mount()

	payload := validPayload("ADD")
	payload.ReviewID = "not-a-uuid"

	rr := postEvent(t, mux, payload)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, stub.logs)
}

func TestSubmitEventUnknownAction(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	rr := postEvent(t, mux, validPayload("UPSERT"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmitEventModMissingReview(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	rr := postEvent(t, mux, validPayload("MOD"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSubmitEventDuplicateAdd(t *testing.T) {
	app, stub := newTestApplication(t)
	mux := app.mount()

	payload := validPayload("ADD")
	rr := postEvent(t, mux, payload)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = postEvent(t, mux, payload)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Len(t, stub.logs, 1)
}

func TestGetUserPoints(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	userID := uuid.NewString()
	for i := 0; i < 3; i++ {
		payload := validPayload("ADD")
		payload.UserID = userID
		rr := postEvent(t, mux, payload)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/users/%s/points?limit=2&sum=1", userID), nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data points.LedgerPage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Data.Logs, 2)
	require.NotNil(t, resp.Data.Total)
	// Each ADD was content-only on a fresh place: content + first.
	assert.Equal(t, int64(6), *resp.Data.Total)
}

func TestGetUserPointsMalformedCursor(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	userID := uuid.NewString()
	payload := validPayload("ADD")
	payload.UserID = userID
	rr := postEvent(t, mux, payload)
	require.Equal(t, http.StatusOK, rr.Code)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/users/%s/points?cursor=abc", userID), nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data points.LedgerPage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Data.Logs, 1, "a malformed cursor falls back to the first page")
}
