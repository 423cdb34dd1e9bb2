package models

// PendingIdentity marks a client that requested a one-time token and still
// has to verify it.
type PendingIdentity struct {
	Email string `json:"email" bson:"email"`
}

func (p *PendingIdentity) IsPresent() bool {
	return p != nil && p.Email != ""
}
