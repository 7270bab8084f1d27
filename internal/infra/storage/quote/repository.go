package quote

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MCB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий сохраненных расчетов стоимости
// Расчет сохраняется при выдаче клиенту, чтобы при создании бронирования
// взять цену из него, а не пересчитывать по возможно изменившимся тарифам
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расчетов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет расчет стоимости
func (r *Repository) Create(ctx context.Context, q *domain.Quote) (*domain.Quote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	breakdown, err := json.Marshal(q.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("quotes").
		Columns("id", "total", "breakdown").
		Values(q.ID, q.Total, breakdown).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	q.CreatedAt = createdAt.Time
	return q, nil
}

// GetByID получает расчет стоимости по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "total", "breakdown", "created_at").
		From("quotes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var q domain.Quote
	var breakdown []byte
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&q.ID, &q.Total, &breakdown, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan quote: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(breakdown, &q.Breakdown); err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrDecode, err)
	}

	q.CreatedAt = createdAt.Time
	return &q, nil
}
