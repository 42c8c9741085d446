package fairness

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/roster-backend-go/internal/domain/assignment"
	"github.com/shiftwise/roster-backend-go/internal/domain/preference"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
	"github.com/shiftwise/roster-backend-go/internal/pkg/validator"
)

const orgID = "org-1"

type mockWorkerRepo struct {
	workers []worker.Worker
}

func (m *mockWorkerRepo) GetByID(_ context.Context, _ string) (worker.Worker, error) {
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (m *mockWorkerRepo) ListByOrg(_ context.Context, _ string, _ *worker.Role) ([]worker.Worker, error) {
	return m.workers, nil
}

type mockPreferenceRepo struct {
	prefs []preference.VacationPreference
}

func (m *mockPreferenceRepo) ReplaceForPeriod(_ context.Context, _, _ string, _, _ int, _ []preference.VacationPreference) ([]preference.VacationPreference, error) {
	return nil, nil
}

func (m *mockPreferenceRepo) ListForWorker(_ context.Context, _ string, _, _ int) ([]preference.VacationPreference, error) {
	return nil, nil
}

func (m *mockPreferenceRepo) ListForOrg(_ context.Context, orgID string, year, month int) ([]preference.VacationPreference, error) {
	var out []preference.VacationPreference
	for _, p := range m.prefs {
		if p.OrgID == orgID && p.Year == year && p.Month == month {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockAssignmentRepo struct {
	assignments []assignment.Assignment
}

func (m *mockAssignmentRepo) Create(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	return a, nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, _ string) (assignment.Assignment, error) {
	return assignment.Assignment{}, assignment.ErrAssignmentNotFound
}

func (m *mockAssignmentRepo) List(_ context.Context, filter assignment.Filter) ([]assignment.Assignment, error) {
	var out []assignment.Assignment
	for _, a := range m.assignments {
		if a.OrgID != filter.OrgID {
			continue
		}
		if filter.DateFrom != nil && a.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && a.Date.After(*filter.DateTo) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAssignmentRepo) ListByDate(_ context.Context, _ string, _ time.Time) ([]assignment.Assignment, error) {
	return nil, nil
}

func (m *mockAssignmentRepo) ReassignWorker(_ context.Context, _, _ string) error {
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pref(workerID string, year, month, rank int, weekStart time.Time) preference.VacationPreference {
	return preference.VacationPreference{
		OrgID:     orgID,
		WorkerID:  workerID,
		Year:      year,
		Month:     month,
		Rank:      rank,
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
		Status:    preference.StatusSubmitted,
	}
}

func newService(workers []worker.Worker, prefs []preference.VacationPreference, assignments []assignment.Assignment) *Service {
	return NewFairnessService(
		&mockWorkerRepo{workers: workers},
		&mockPreferenceRepo{prefs: prefs},
		&mockAssignmentRepo{assignments: assignments},
	)
}

func TestMonthScore(t *testing.T) {
	week1 := date(2026, time.June, 1)
	week2 := date(2026, time.June, 8)
	week3 := date(2026, time.June, 15)

	prefs := []preference.VacationPreference{
		pref("w", 2026, 6, 1, week1),
		pref("w", 2026, 6, 2, week2),
		pref("w", 2026, 6, 3, week3),
	}

	tests := []struct {
		name       string
		dates      []time.Time
		wantPoints int
		wantRank   int
	}{
		{
			name:       "first choice free scores zero",
			dates:      nil,
			wantPoints: 0,
			wantRank:   1,
		},
		{
			name:       "blocked first choice falls to second",
			dates:      []time.Time{date(2026, time.June, 3)},
			wantPoints: 1,
			wantRank:   2,
		},
		{
			name:       "first two blocked falls to third",
			dates:      []time.Time{date(2026, time.June, 3), date(2026, time.June, 10)},
			wantPoints: 2,
			wantRank:   3,
		},
		{
			name:       "all three blocked scores the no-grant maximum",
			dates:      []time.Time{date(2026, time.June, 3), date(2026, time.June, 10), date(2026, time.June, 17)},
			wantPoints: 3,
			wantRank:   0,
		},
		{
			name:       "week start boundary counts as occupied",
			dates:      []time.Time{week1},
			wantPoints: 1,
			wantRank:   2,
		},
		{
			name:       "week end boundary counts as occupied",
			dates:      []time.Time{week1.AddDate(0, 0, 6)},
			wantPoints: 1,
			wantRank:   2,
		},
		{
			name:       "day after the week does not block it",
			dates:      []time.Time{week1.AddDate(0, 0, 7)},
			wantPoints: 0,
			wantRank:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, rank := monthScore(prefs, tt.dates)
			assert.Equal(t, tt.wantPoints, points)
			assert.Equal(t, tt.wantRank, rank)
		})
	}

	t.Run("no preferences scores the maximum", func(t *testing.T) {
		points, rank := monthScore(nil, nil)
		assert.Equal(t, 3, points)
		assert.Equal(t, 0, rank)
	})

	t.Run("week crossing into the next year counts next-year assignments", func(t *testing.T) {
		straddling := []preference.VacationPreference{
			pref("w", 2026, 12, 1, date(2026, time.December, 28)),
		}
		points, rank := monthScore(straddling, []time.Time{date(2027, time.January, 2)})
		assert.Equal(t, 3, points)
		assert.Equal(t, 0, rank)
	})

	t.Run("rank order wins over submission order", func(t *testing.T) {
		shuffled := []preference.VacationPreference{
			pref("w", 2026, 6, 3, week3),
			pref("w", 2026, 6, 1, week1),
			pref("w", 2026, 6, 2, week2),
		}
		points, rank := monthScore(shuffled, nil)
		assert.Equal(t, 0, points)
		assert.Equal(t, 1, rank)
	})
}

func TestReport(t *testing.T) {
	workers := []worker.Worker{
		{ID: "alice", OrgID: orgID, FullName: "Alice"},
		{ID: "bob", OrgID: orgID, FullName: "Bob"},
	}

	t.Run("scores each worker for the requested month", func(t *testing.T) {
		prefs := []preference.VacationPreference{
			pref("alice", 2026, 6, 1, date(2026, time.June, 1)),
			pref("bob", 2026, 6, 1, date(2026, time.June, 1)),
			pref("bob", 2026, 6, 2, date(2026, time.June, 8)),
		}
		// Bob works during his first-choice week.
		assignments := []assignment.Assignment{
			{ID: "a1", OrgID: orgID, WorkerID: "bob", Date: date(2026, time.June, 2), ShiftTypeCode: "DAY"},
		}

		svc := newService(workers, prefs, assignments)
		report, err := svc.Report(context.Background(), orgID, 2026, 6)
		require.NoError(t, err)

		require.Len(t, report.Scores, 2)
		byID := map[string]int{}
		rankByID := map[string]int{}
		for _, s := range report.Scores {
			byID[s.WorkerID] = s.MonthPoints
			rankByID[s.WorkerID] = s.GrantedRank
		}
		assert.Equal(t, 0, byID["alice"])
		assert.Equal(t, 1, rankByID["alice"])
		assert.Equal(t, 1, byID["bob"])
		assert.Equal(t, 2, rankByID["bob"])
	})

	t.Run("worker with no submission scores the maximum", func(t *testing.T) {
		svc := newService(workers, nil, nil)
		report, err := svc.Report(context.Background(), orgID, 2026, 6)
		require.NoError(t, err)

		for _, s := range report.Scores {
			assert.Equal(t, 3, s.MonthPoints)
			assert.Equal(t, 0, s.GrantedRank)
		}
	})

	t.Run("assignment load window covers weeks running past year end", func(t *testing.T) {
		prefs := []preference.VacationPreference{
			pref("alice", 2026, 12, 1, date(2026, time.December, 28)),
		}
		// Alice works on January 2nd, inside her December preference week.
		assignments := []assignment.Assignment{
			{ID: "a1", OrgID: orgID, WorkerID: "alice", Date: date(2027, time.January, 2), ShiftTypeCode: "DAY"},
		}

		svc := newService(workers, prefs, assignments)
		report, err := svc.Report(context.Background(), orgID, 2026, 12)
		require.NoError(t, err)

		for _, s := range report.Scores {
			if s.WorkerID == "alice" {
				assert.Equal(t, 3, s.MonthPoints)
				assert.Equal(t, 0, s.GrantedRank)
			}
		}
	})

	t.Run("year to date sums independent month recomputes", func(t *testing.T) {
		prefs := []preference.VacationPreference{
			// January granted at rank 1 (0 points), February blocked
			// entirely (3 points), March granted at rank 2 (1 point).
			pref("alice", 2026, 1, 1, date(2026, time.January, 5)),
			pref("alice", 2026, 2, 1, date(2026, time.February, 2)),
			pref("alice", 2026, 3, 1, date(2026, time.March, 2)),
			pref("alice", 2026, 3, 2, date(2026, time.March, 9)),
		}
		assignments := []assignment.Assignment{
			{ID: "a1", OrgID: orgID, WorkerID: "alice", Date: date(2026, time.February, 4)},
			{ID: "a2", OrgID: orgID, WorkerID: "alice", Date: date(2026, time.March, 3)},
		}

		svc := newService(workers, prefs, assignments)
		report, err := svc.Report(context.Background(), orgID, 2026, 3)
		require.NoError(t, err)

		var alice *int
		for _, s := range report.Scores {
			if s.WorkerID == "alice" {
				v := s.YTDPoints
				alice = &v
				assert.Equal(t, 1, s.MonthPoints)
			}
		}
		require.NotNil(t, alice)
		// 0 + 3 + 1
		assert.Equal(t, 4, *alice)
	})

	t.Run("ytd for january equals the month score", func(t *testing.T) {
		prefs := []preference.VacationPreference{
			pref("alice", 2026, 1, 1, date(2026, time.January, 5)),
		}
		svc := newService(workers, prefs, nil)
		report, err := svc.Report(context.Background(), orgID, 2026, 1)
		require.NoError(t, err)

		for _, s := range report.Scores {
			assert.Equal(t, s.MonthPoints, s.YTDPoints)
		}
	})

	t.Run("rejects an out of range period", func(t *testing.T) {
		svc := newService(workers, nil, nil)

		_, err := svc.Report(context.Background(), orgID, 2026, 13)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)

		_, err = svc.Report(context.Background(), orgID, 1999, 6)
		require.ErrorAs(t, err, &verrs)
	})
}
