package models

import "time"

type LoginEvent struct {
	Type        string    `json:"type"`
	ClientID    string    `json:"client_id"`
	EmailDomain string    `json:"email_domain"`
	OccurredAt  time.Time `json:"occurred_at"`
	Reason      string    `json:"reason,omitempty"`
}
