package settings

import "context"

// Repository is the admin configuration key-value store (plan prices and
// similar operator-tunable values).
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
