package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MCB-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/MCB-BookingService/pkg/types"
)

var bookingColumns = []string{
	"id",
	"quote_id",
	"client_name",
	"client_email",
	"client_phone",
	"scheduled_date",
	"scheduled_time",
	"duration_hours",
	"status",
	"payment_status",
	"payment_type",
	"payment_order_id",
	"total_price",
	"original_price",
	"photo_urls",
	"confirmed_at",
	"completed_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// При создании с проверкой занятости слота вызов обязан происходить внутри
// сериализуемой транзакции вместе с ListForSlot - иначе возможна гонка за последнее место.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"quote_id",
			"client_name",
			"client_email",
			"client_phone",
			"scheduled_date",
			"scheduled_time",
			"duration_hours",
			"status",
			"payment_status",
			"payment_type",
			"payment_order_id",
			"total_price",
			"original_price",
			"photo_urls",
		).
		Values(
			booking.QuoteID,
			booking.ClientName,
			booking.ClientEmail,
			booking.ClientPhone,
			booking.ScheduledDate,
			booking.ScheduledTime,
			booking.DurationHours,
			booking.Status,
			booking.PaymentStatus,
			booking.PaymentType,
			booking.PaymentOrderID,
			booking.TotalPrice,
			booking.OriginalPrice,
			pq.Array(booking.PhotoURLs),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByPaymentOrderID получает бронирование по ID заказа платёжного шлюза
// Ключ идемпотентности обработки платёжных колбэков
func (r *Repository) GetByPaymentOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"payment_order_id": orderID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentOrderID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByPaymentOrderID")
}

// ListForSlot получает бронирования на конкретный слот (дата + время)
// При onlyActive=true возвращает только занимающие место (pending, confirmed).
// Внутри транзакции добавляет FOR UPDATE - блокировка строк слота на время
// проверки занятости в usecase создания бронирования.
func (r *Repository) ListForSlot(ctx context.Context, date time.Time, slotTime types.TimeString, onlyActive bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"scheduled_date": date,
			"scheduled_time": slotTime,
		})

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByDate получает все бронирования на дату, отсортированные по времени слота
// Опционально фильтрует по статусам
func (r *Repository) ListByDate(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"scheduled_date": date}).
		OrderBy("scheduled_time ASC, id ASC")

	if len(statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(statuses)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ApplyTransition атомарно переводит бронирование в новый статус
// Одним UPDATE выставляет статус, соответствующую отметку времени (confirmed_at /
// completed_at / cancelled_at = NOW()) и обнуляет остальные две - инвариант
// "ровно одна отметка соответствует статусу" сохраняется на уровне запроса.
// Опционально обновляет payment_status и total_price.
func (r *Repository) ApplyTransition(ctx context.Context, id int64, status domain.BookingStatus, paymentStatus *domain.PaymentStatus, totalPrice *int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Set("confirmed_at", timestampValue(status, domain.StatusConfirmed)).
		Set("completed_at", timestampValue(status, domain.StatusCompleted)).
		Set("cancelled_at", timestampValue(status, domain.StatusCancelled)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", "))

	if paymentStatus != nil {
		updateBuilder = updateBuilder.Set("payment_status", *paymentStatus)
	}
	if totalPrice != nil {
		updateBuilder = updateBuilder.Set("total_price", *totalPrice)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ApplyTransition - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "ApplyTransition")
}

// UpdatePaymentStatus обновляет только платёжный статус без смены статуса брони
// Используется для неизвестных кодов шлюза (оставляем pending)
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", paymentStatus).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// SetPaymentOrderID привязывает ID заказа платёжного шлюза к бронированию
func (r *Repository) SetPaymentOrderID(ctx context.Context, id int64, orderID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_order_id", orderID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaymentOrderID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPaymentOrderID - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetPaymentOrderID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdatePhotoURLs заменяет список фотографий бронирования
// После завершения переезда сюда записывается список НЕудалённых URL
// (пустой список при полном успехе очистки)
func (r *Repository) UpdatePhotoURLs(ctx context.Context, id int64, urls []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if urls == nil {
		urls = []string{}
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("photo_urls", pq.Array(urls)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePhotoURLs - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePhotoURLs - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePhotoURLs - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteIfStatus удаляет бронирование, только если оно всё ещё в указанном статусе
// Условное удаление для отложенной очистки: проверка статуса и удаление - один
// атомарный запрос, повторная проверка происходит в момент срабатывания задачи
func (r *Repository) DeleteIfStatus(ctx context.Context, id int64, status domain.BookingStatus) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id, "status": status}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: DeleteIfStatus - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: DeleteIfStatus - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteIfStatus - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// timestampValue возвращает NOW() для отметки времени нового статуса и NULL для остальных
func timestampValue(status, forStatus domain.BookingStatus) interface{} {
	if status == forStatus {
		return squirrel.Expr("NOW()")
	}
	return nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в бронирование
func (r *Repository) scanBooking(row rowScanner, op string) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime
	var photoURLs pq.StringArray

	err := row.Scan(
		&booking.ID,
		&booking.QuoteID,
		&booking.ClientName,
		&booking.ClientEmail,
		&booking.ClientPhone,
		&booking.ScheduledDate,
		&booking.ScheduledTime,
		&booking.DurationHours,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentType,
		&booking.PaymentOrderID,
		&booking.TotalPrice,
		&booking.OriginalPrice,
		&photoURLs,
		&booking.ConfirmedAt,
		&booking.CompletedAt,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	booking.PhotoURLs = photoURLs
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows, "scanBookings")
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
