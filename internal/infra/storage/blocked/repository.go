package blocked

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MCB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с интервалами блокировки
// Блокировки объявляются администратором и закрывают запись в слоты
// независимо от занятости (действуют даже при нуле бронирований)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый интервал блокировки
func (r *Repository) Create(ctx context.Context, interval *domain.BlockedInterval) (*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_intervals").
		Columns("blocked_date", "start_time", "end_time", "reason").
		Values(interval.Date, interval.StartTime, interval.EndTime, interval.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&interval.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	interval.CreatedAt = createdAt.Time
	return interval, nil
}

// ListByDate получает все интервалы блокировки на дату
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "blocked_date", "start_time", "end_time", "reason", "created_at").
		From("blocked_intervals").
		Where(squirrel.Eq{"blocked_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]*domain.BlockedInterval, 0)
	for rows.Next() {
		var interval domain.BlockedInterval
		var createdAt sql.NullTime

		err := rows.Scan(
			&interval.ID,
			&interval.Date,
			&interval.StartTime,
			&interval.EndTime,
			&interval.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan interval: %v", ErrScanRow, err)
		}

		interval.CreatedAt = createdAt.Time
		intervals = append(intervals, &interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// Delete удаляет интервал блокировки
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_intervals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrIntervalNotFound
	}

	return nil
}
