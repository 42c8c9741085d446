package fairness

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shiftwise/roster-backend-go/internal/domain/assignment"
	"github.com/shiftwise/roster-backend-go/internal/domain/fairness"
	"github.com/shiftwise/roster-backend-go/internal/domain/preference"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
	"github.com/shiftwise/roster-backend-go/internal/pkg/validator"
)

const noGrantPoints = 3

type Service struct {
	workerRepo     worker.Repository
	preferenceRepo preference.Repository
	assignmentRepo assignment.Repository
}

func NewFairnessService(workerRepo worker.Repository, preferenceRepo preference.Repository, assignmentRepo assignment.Repository) *Service {
	return &Service{
		workerRepo:     workerRepo,
		preferenceRepo: preferenceRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Report computes per-worker month and year-to-date fairness points.
// Pure read path: each month is recomputed independently from the
// preference and assignment records, never cached.
func (s *Service) Report(ctx context.Context, orgID string, year, month int) (fairness.Report, error) {
	if err := validatePeriod(year, month); err != nil {
		return fairness.Report{}, err
	}

	workers, err := s.workerRepo.ListByOrg(ctx, orgID, nil)
	if err != nil {
		return fairness.Report{}, fmt.Errorf("failed to list workers: %w", err)
	}

	// One assignment load covers the whole year, padded by a week on both
	// sides so preference weeks straddling a year boundary still count.
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -6)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 6)
	assignments, err := s.assignmentRepo.List(ctx, assignment.Filter{
		OrgID:    orgID,
		DateFrom: &from,
		DateTo:   &to,
	})
	if err != nil {
		return fairness.Report{}, fmt.Errorf("failed to list assignments: %w", err)
	}

	datesByWorker := make(map[string][]time.Time)
	for _, a := range assignments {
		datesByWorker[a.WorkerID] = append(datesByWorker[a.WorkerID], a.Date)
	}

	// prefsByWorker[m] holds each worker's rank-sorted preferences for
	// month m.
	prefsByMonth := make(map[int]map[string][]preference.VacationPreference, month)
	for m := 1; m <= month; m++ {
		prefs, err := s.preferenceRepo.ListForOrg(ctx, orgID, year, m)
		if err != nil {
			return fairness.Report{}, fmt.Errorf("failed to list preferences for month %d: %w", m, err)
		}
		byWorker := make(map[string][]preference.VacationPreference)
		for _, p := range prefs {
			byWorker[p.WorkerID] = append(byWorker[p.WorkerID], p)
		}
		prefsByMonth[m] = byWorker
	}

	report := fairness.Report{Year: year, Month: month}
	for _, w := range workers {
		dates := datesByWorker[w.ID]

		monthPoints, grantedRank := monthScore(prefsByMonth[month][w.ID], dates)

		ytd := 0
		for m := 1; m <= month; m++ {
			points, _ := monthScore(prefsByMonth[m][w.ID], dates)
			ytd += points
		}

		report.Scores = append(report.Scores, fairness.WorkerScore{
			WorkerID:    w.ID,
			WorkerName:  w.FullName,
			MonthPoints: monthPoints,
			GrantedRank: grantedRank,
			YTDPoints:   ytd,
		})
	}

	return report, nil
}

// monthScore scans the worker's preferences in rank order and scores the
// first free week: rank 1 gives 0 points, rank 2 gives 1, rank 3 gives 2.
// No granted preference, including an empty list, scores 3.
func monthScore(prefs []preference.VacationPreference, assignmentDates []time.Time) (points, grantedRank int) {
	sorted := make([]preference.VacationPreference, len(prefs))
	copy(sorted, prefs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })

	for _, p := range sorted {
		if weekIsFree(assignmentDates, p.WeekStart, p.WeekEnd) {
			return p.Rank - 1, p.Rank
		}
	}
	return noGrantPoints, 0
}

// weekIsFree reports whether no assignment date falls inside
// [start, end]. Both boundaries count as occupied days.
func weekIsFree(assignmentDates []time.Time, start, end time.Time) bool {
	for _, d := range assignmentDates {
		if !d.Before(start) && !d.After(end) {
			return false
		}
	}
	return true
}

func validatePeriod(year, month int) error {
	var errs validator.ValidationErrors
	if year < 2000 || year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
