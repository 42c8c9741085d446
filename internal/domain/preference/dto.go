package preference

import (
	"strconv"
	"time"

	"github.com/shiftwise/roster-backend-go/internal/pkg/validator"
)

type PreferenceItem struct {
	Rank      int    `json:"rank"`
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
}

// SubmitPreferencesRequest replaces a worker's whole preference list for
// one period.
type SubmitPreferencesRequest struct {
	WorkerID string           `json:"worker_id"`
	Year     int              `json:"year"`
	Month    int              `json:"month"`
	Items    []PreferenceItem `json:"preferences"`
}

func (r *SubmitPreferencesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(r.Items) > 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "preferences",
			Message: "at most 3 ranked preferences are allowed",
		})
	}

	seenRanks := make(map[int]bool, len(r.Items))
	for i, item := range r.Items {
		field := "preferences[" + strconv.Itoa(i) + "]"

		if item.Rank < 1 || item.Rank > 3 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".rank",
				Message: "rank must be 1, 2 or 3",
			})
		} else if seenRanks[item.Rank] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".rank",
				Message: "duplicate rank",
			})
		} else {
			seenRanks[item.Rank] = true
		}

		start, okStart := validator.IsValidDate(item.WeekStart)
		if !okStart {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".week_start",
				Message: "week_start must be in YYYY-MM-DD format",
			})
		}
		end, okEnd := validator.IsValidDate(item.WeekEnd)
		if !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".week_end",
				Message: "week_end must be in YYYY-MM-DD format",
			})
		}
		if okStart && okEnd {
			if end.Before(start) {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".week_end",
					Message: "week_end must not be before week_start",
				})
			} else if end.Sub(start) > 6*24*time.Hour {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".week_end",
					Message: "a preference week spans at most 7 days",
				})
			} else if r.Year >= 2000 && r.Year <= 2100 && r.Month >= 1 && r.Month <= 12 {
				// The week must touch the stated period, so it may start in
				// the previous month or run into the next one, but not sit
				// in a different month entirely.
				monthStart := time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC)
				monthEnd := monthStart.AddDate(0, 1, -1)
				if end.Before(monthStart) || start.After(monthEnd) {
					errs = append(errs, validator.ValidationError{
						Field:   field + ".week_start",
						Message: "the preference week must overlap the stated month",
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PreferenceResponse struct {
	ID        string `json:"preference_id"`
	WorkerID  string `json:"worker_id"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Rank      int    `json:"rank"`
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	Status    Status `json:"status"`
}

func ToResponse(p VacationPreference) PreferenceResponse {
	return PreferenceResponse{
		ID:        p.ID,
		WorkerID:  p.WorkerID,
		Year:      p.Year,
		Month:     p.Month,
		Rank:      p.Rank,
		WeekStart: p.WeekStart.Format("2006-01-02"),
		WeekEnd:   p.WeekEnd.Format("2006-01-02"),
		Status:    p.Status,
	}
}
