package fairness

// WorkerScore is one row of the fairness report. Lower points mean the
// worker's ranked time-off requests were honored better.
type WorkerScore struct {
	WorkerID   string `json:"worker_id"`
	WorkerName string `json:"worker_name"`

	// MonthPoints for the requested month: 0/1/2 when the granted
	// preference was rank 1/2/3, 3 when nothing was granted.
	MonthPoints int `json:"month_points"`

	// GrantedRank is the rank of the granted preference, 0 when none.
	GrantedRank int `json:"granted_rank"`

	// YTDPoints is the sum of MonthPoints over months 1..month of the
	// requested year.
	YTDPoints int `json:"ytd_points"`
}

type Report struct {
	Year   int           `json:"year"`
	Month  int           `json:"month"`
	Scores []WorkerScore `json:"scores"`
}
