package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/krontech/worklog-backend-go/internal/domain/worklogtype"
	"github.com/krontech/worklog-backend-go/internal/pkg/database"
)

type worklogTypeRepositoryImpl struct {
	db *database.DB
}

func NewWorklogTypeRepository(db *database.DB) worklogtype.WorklogTypeRepository {
	return &worklogTypeRepositoryImpl{db: db}
}

// GetByID implements worklogtype.WorklogTypeRepository.
func (r *worklogTypeRepositoryImpl) GetByID(ctx context.Context, id string) (worklogtype.WorklogType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, is_active, created_at
		FROM worklog_types
		WHERE id = $1
	`

	var wt worklogtype.WorklogType
	err := q.QueryRow(ctx, query, id).Scan(&wt.ID, &wt.Name, &wt.Code, &wt.IsActive, &wt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worklogtype.WorklogType{}, worklogtype.ErrWorklogTypeNotFound
		}
		return worklogtype.WorklogType{}, fmt.Errorf("failed to get worklog type by id: %w", err)
	}
	return wt, nil
}

// ListActive implements worklogtype.WorklogTypeRepository.
func (r *worklogTypeRepositoryImpl) ListActive(ctx context.Context) ([]worklogtype.WorklogType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, is_active, created_at
		FROM worklog_types
		WHERE is_active = TRUE
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list worklog types: %w", err)
	}
	defer rows.Close()

	var types []worklogtype.WorklogType
	for rows.Next() {
		var wt worklogtype.WorklogType
		if err := rows.Scan(&wt.ID, &wt.Name, &wt.Code, &wt.IsActive, &wt.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, wt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}
