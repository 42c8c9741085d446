package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/roster-backend-go/internal/domain/preference"
	"github.com/shiftwise/roster-backend-go/internal/pkg/database"
)

type preferenceRepositoryImpl struct {
	db *database.DB
}

func NewPreferenceRepository(db *database.DB) preference.Repository {
	return &preferenceRepositoryImpl{db: db}
}

func (r *preferenceRepositoryImpl) ReplaceForPeriod(ctx context.Context, orgID, workerID string, year, month int, prefs []preference.VacationPreference) ([]preference.VacationPreference, error) {
	q := GetQuerier(ctx, r.db)

	deleteQuery := `
		DELETE FROM vacation_preferences
		WHERE worker_id = $1 AND year = $2 AND month = $3
	`
	if _, err := q.Exec(ctx, deleteQuery, workerID, year, month); err != nil {
		return nil, err
	}

	insertQuery := `
		INSERT INTO vacation_preferences (
			id, org_id, worker_id, year, month, rank,
			week_start, week_end, status, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, NOW()
		) RETURNING id, created_at
	`

	created := make([]preference.VacationPreference, 0, len(prefs))
	for _, p := range prefs {
		p.OrgID = orgID
		p.WorkerID = workerID
		p.Year = year
		p.Month = month
		err := q.QueryRow(ctx, insertQuery,
			orgID, workerID, year, month, p.Rank,
			p.WeekStart, p.WeekEnd, p.Status,
		).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		created = append(created, p)
	}
	return created, nil
}

const preferenceColumns = `
	vp.id, vp.org_id, vp.worker_id, vp.year, vp.month, vp.rank,
	vp.week_start, vp.week_end, vp.status, vp.created_at
`

func scanPreferences(rows pgx.Rows) ([]preference.VacationPreference, error) {
	var prefs []preference.VacationPreference
	for rows.Next() {
		var p preference.VacationPreference
		err := rows.Scan(
			&p.ID, &p.OrgID, &p.WorkerID, &p.Year, &p.Month, &p.Rank,
			&p.WeekStart, &p.WeekEnd, &p.Status, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

func (r *preferenceRepositoryImpl) ListForWorker(ctx context.Context, workerID string, year, month int) ([]preference.VacationPreference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + preferenceColumns + `
		FROM vacation_preferences vp
		WHERE vp.worker_id = $1 AND vp.year = $2 AND vp.month = $3
		ORDER BY vp.rank ASC
	`

	rows, err := q.Query(ctx, query, workerID, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPreferences(rows)
}

func (r *preferenceRepositoryImpl) ListForOrg(ctx context.Context, orgID string, year, month int) ([]preference.VacationPreference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + preferenceColumns + `
		FROM vacation_preferences vp
		WHERE vp.org_id = $1 AND vp.year = $2 AND vp.month = $3
		ORDER BY vp.worker_id ASC, vp.rank ASC
	`

	rows, err := q.Query(ctx, query, orgID, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPreferences(rows)
}
