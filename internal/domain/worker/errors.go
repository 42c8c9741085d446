package worker

import "errors"

var (
	ErrWorkerNotFound = errors.New("Worker not found")
	ErrWorkerInactive = errors.New("Worker is inactive")
	ErrInvalidToken   = errors.New("Invalid or missing access token")

	ErrForbidden     = errors.New("Caller lacks permission for this action")
	ErrAdminRequired = errors.New("Administrator privilege required")
)
