package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/roster-backend-go/internal/domain/swap"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/response"
)

// fakeSwapService returns canned results so the tests can exercise the
// status code and envelope mapping without a database.
type fakeSwapService struct {
	request    swap.RequestResponse
	candidates []swap.CandidateResponse
	offers     []swap.OfferResponse
	err        error
}

func (f *fakeSwapService) CreateRequest(_ context.Context, _ worker.Caller, req swap.CreateSwapRequestRequest) (swap.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return swap.RequestResponse{}, err
	}
	return f.request, f.err
}

func (f *fakeSwapService) ListRequests(_ context.Context, _ worker.Caller, _ *swap.RequestStatus, _ *string) ([]swap.RequestResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []swap.RequestResponse{f.request}, nil
}

func (f *fakeSwapService) GetRequest(_ context.Context, _ worker.Caller, _ string) (swap.RequestResponse, error) {
	return f.request, f.err
}

func (f *fakeSwapService) FindEligiblePartners(_ context.Context, _ worker.Caller, _ string, _ *string) ([]swap.CandidateResponse, error) {
	return f.candidates, f.err
}

func (f *fakeSwapService) CreateOffers(_ context.Context, _ worker.Caller, req swap.CreateOffersRequest) ([]swap.OfferResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return f.offers, f.err
}

func (f *fakeSwapService) RespondToOffer(_ context.Context, _ worker.Caller, req swap.RespondToOfferRequest) (swap.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return swap.RequestResponse{}, err
	}
	return f.request, f.err
}

func (f *fakeSwapService) Cancel(_ context.Context, _ worker.Caller, _ string) error {
	return f.err
}

func (f *fakeSwapService) ExpireStale(_ context.Context, _ time.Duration) (int, error) {
	return 0, f.err
}

var testAuth = jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)

// authedRequest builds a request whose context carries verified claims,
// as the jwtauth verifier middleware would.
func authedRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(method, target, &buf)

	token, _, err := testAuth.Encode(map[string]interface{}{
		"worker_id": "alice",
		"org_id":    "org-1",
		"email":     "alice@example.com",
		"role":      "staff",
		"type":      "access",
	})
	require.NoError(t, err)

	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	return envelope
}

func TestSwapHandler_CreateRequest(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler := NewSwapHandler(&fakeSwapService{
			request: swap.RequestResponse{ID: "req-1", RequesterID: "alice", Status: swap.RequestStatusOpen},
		})

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodPost, "/api/v1/swaps/requests", swap.CreateSwapRequestRequest{
			AssignmentID: "a-1",
		})
		handler.CreateRequest(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.True(t, envelope.Success)
	})

	t.Run("duplicate open request maps to conflict", func(t *testing.T) {
		handler := NewSwapHandler(&fakeSwapService{err: swap.ErrDuplicateOpenRequest})

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodPost, "/api/v1/swaps/requests", swap.CreateSwapRequestRequest{
			AssignmentID: "a-1",
		})
		handler.CreateRequest(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		envelope := decodeEnvelope(t, w)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "CONFLICT", envelope.Error.Code)
	})

	t.Run("missing assignment id maps to validation error", func(t *testing.T) {
		handler := NewSwapHandler(&fakeSwapService{})

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodPost, "/api/v1/swaps/requests", swap.CreateSwapRequestRequest{})
		handler.CreateRequest(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		envelope := decodeEnvelope(t, w)
		require.NotNil(t, envelope.Error)
		assert.Contains(t, envelope.Error.Details, "assignment_id")
	})

	t.Run("malformed body maps to bad request", func(t *testing.T) {
		handler := NewSwapHandler(&fakeSwapService{})

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodPost, "/api/v1/swaps/requests", nil)
		r.Body = http.NoBody
		handler.CreateRequest(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSwapHandler_RespondToOffer(t *testing.T) {
	respondBody := swap.RespondToOfferRequest{Decision: swap.DecisionAccepted}

	t.Run("accepted", func(t *testing.T) {
		handler := NewSwapHandler(&fakeSwapService{
			request: swap.RequestResponse{ID: "req-1", Status: swap.RequestStatusAccepted},
		})

		w := httptest.NewRecorder()
		r := withURLParam(authedRequest(t, http.MethodPost, "/api/v1/swaps/offers/offer-1/respond", respondBody), "id", "offer-1")
		handler.RespondToOffer(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.True(t, envelope.Success)
	})

	t.Run("already responded maps to conflict", func(t *testing.T) {
		handler := NewSwapHandler(&fakeSwapService{err: swap.ErrOfferAlreadyResponded})

		w := httptest.NewRecorder()
		r := withURLParam(authedRequest(t, http.MethodPost, "/api/v1/swaps/offers/offer-1/respond", respondBody), "id", "offer-1")
		handler.RespondToOffer(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("wrong target maps to forbidden", func(t *testing.T) {
		handler := NewSwapHandler(&fakeSwapService{err: swap.ErrNotOfferTarget})

		w := httptest.NewRecorder()
		r := withURLParam(authedRequest(t, http.MethodPost, "/api/v1/swaps/offers/offer-1/respond", respondBody), "id", "offer-1")
		handler.RespondToOffer(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("stale target maps to conflict", func(t *testing.T) {
		handler := NewSwapHandler(&fakeSwapService{err: swap.ErrTargetAssignmentStale})

		w := httptest.NewRecorder()
		r := withURLParam(authedRequest(t, http.MethodPost, "/api/v1/swaps/offers/offer-1/respond", respondBody), "id", "offer-1")
		handler.RespondToOffer(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestSwapHandler_GetRequest(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		handler := NewSwapHandler(&fakeSwapService{err: swap.ErrSwapRequestNotFound})

		w := httptest.NewRecorder()
		r := withURLParam(authedRequest(t, http.MethodGet, "/api/v1/swaps/requests/req-404", nil), "id", "req-404")
		handler.GetRequest(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		envelope := decodeEnvelope(t, w)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
	})

	t.Run("missing id maps to bad request", func(t *testing.T) {
		handler := NewSwapHandler(&fakeSwapService{})

		w := httptest.NewRecorder()
		r := withURLParam(authedRequest(t, http.MethodGet, "/api/v1/swaps/requests/", nil), "id", "")
		handler.GetRequest(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSwapHandler_FindEligiblePartners(t *testing.T) {
	handler := NewSwapHandler(&fakeSwapService{
		candidates: []swap.CandidateResponse{
			{WorkerID: "bob", AssignmentID: "a-2", ShiftTypeCode: "DAY", SwapType: swap.SwapTypeSameType},
		},
	})

	t.Run("returns candidates", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodGet, "/api/v1/swaps/partners?assignment_id=a-1", nil)
		handler.FindEligiblePartners(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.True(t, envelope.Success)
	})

	t.Run("requires assignment_id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodGet, "/api/v1/swaps/partners", nil)
		handler.FindEligiblePartners(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
