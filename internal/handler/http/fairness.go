package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shiftwise/roster-backend-go/internal/domain/fairness"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/response"
)

type FairnessHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
}

type fairnessHandlerImpl struct {
	fairnessService fairness.Service
}

func NewFairnessHandler(fairnessService fairness.Service) FairnessHandler {
	return &fairnessHandlerImpl{fairnessService: fairnessService}
}

// GetReport returns the per-worker fairness scores for a month. Defaults
// to the current month when no period is given.
func (h *fairnessHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now()
	year := getIntQueryParam(r, "year", now.Year())
	month := getIntQueryParam(r, "month", int(now.Month()))

	report, err := h.fairnessService.Report(r.Context(), caller.OrgID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// getStringQueryParam returns a pointer to the query value, nil when absent.
func getStringQueryParam(r *http.Request, key string) *string {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	return &val
}
