package worklogtype

import "context"

type WorklogTypeRepository interface {
	// GetByID retrieves one worklog type
	GetByID(ctx context.Context, id string) (WorklogType, error)

	// ListActive retrieves all active worklog types ordered by name
	ListActive(ctx context.Context) ([]WorklogType, error)
}
