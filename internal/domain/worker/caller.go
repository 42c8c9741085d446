package worker

// Caller is the authenticated identity extracted from the request token.
type Caller struct {
	WorkerID string
	OrgID    string
	Email    string
	Role     Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
