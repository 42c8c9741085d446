package notification

import "time"

type Kind string

const (
	KindOfferReceived  Kind = "swap_offer_received"
	KindOfferAccepted  Kind = "swap_offer_accepted"
	KindOfferDeclined  Kind = "swap_offer_declined"
	KindRequestExpired Kind = "swap_request_expired"
)

// Notification entity. In-app swap activity notices, delivered over SSE
// and listable over HTTP.
type Notification struct {
	ID       string
	OrgID    string
	WorkerID string

	Kind    Kind
	Message string
	// RefID points at the swap request or offer the notice is about.
	RefID string

	IsRead    bool
	CreatedAt time.Time
}
