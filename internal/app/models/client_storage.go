package models

import "time"

// ClientStorageEntry is one key of a client's storage as kept in MongoDB.
// Value holds the JSON encoding of the stored value.
type ClientStorageEntry struct {
	ClientID  string    `bson:"client_id"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}
