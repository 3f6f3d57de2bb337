package models

import "time"

// Appeal statuses as shown in the admin queue.
const (
	AppealStatusNew      = "new"
	AppealStatusInReview = "in_review"
	AppealStatusAccepted = "accepted"
	AppealStatusRejected = "rejected"
)

type Appeal struct {
	ID            int64     `json:"id"`
	ParticipantID string    `json:"participantId"`
	EventID       string    `json:"eventId"`
	Category      string    `json:"category"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// ValidAppealStatus reports whether s is one of the known appeal statuses.
func ValidAppealStatus(s string) bool {
	switch s {
	case AppealStatusNew, AppealStatusInReview, AppealStatusAccepted, AppealStatusRejected:
		return true
	default:
		return false
	}
}
