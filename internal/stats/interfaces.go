package stats

import "context"

// Repository persists and loads stats datasets.
type Repository interface {
	// Load reads a dataset; the format follows the file extension.
	Load(ctx context.Context, path string) (*Dataset, error)

	// Save writes a dataset; the format follows the file extension.
	Save(ctx context.Context, ds *Dataset, path string) error
}
