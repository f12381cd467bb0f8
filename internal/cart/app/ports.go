package app

import "context"

// Storage is the durable local store behind the cart. Load reports whether
// a value was present at all so an empty store and an empty cart are
// distinguishable.
type Storage interface {
	Load(ctx context.Context) (data []byte, found bool, err error)
	Save(ctx context.Context, data []byte) error
}
