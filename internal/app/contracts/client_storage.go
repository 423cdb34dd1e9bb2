package contracts

import "context"

// ClientStorage is the key-value storage of a single browser client. It
// survives across activations of the login flow.
type ClientStorage interface {
	// Get decodes the value stored under key into dest. found is false when
	// nothing is stored under key.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)
	Set(ctx context.Context, key string, value interface{}) error
}

type ClientStorageProvider interface {
	ForClient(clientID string) ClientStorage
}
