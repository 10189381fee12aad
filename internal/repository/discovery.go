package repository

import "context"

// Discovery defines the interface for the global set of revealed secret traits
type Discovery interface {
	HasDiscovered(ctx context.Context, key string) (bool, error)
	MarkDiscovered(ctx context.Context, key string) error
	ListDiscovered(ctx context.Context) ([]string, error)
}
