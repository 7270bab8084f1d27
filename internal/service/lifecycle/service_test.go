package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	bookingStorage "github.com/m04kA/MCB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/MCB-BookingService/internal/integrations/objstorage"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle/models"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByDate(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, date, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ApplyTransition(ctx context.Context, id int64, status domain.BookingStatus, paymentStatus *domain.PaymentStatus, totalPrice *int64) (*domain.Booking, error) {
	args := m.Called(ctx, id, status, paymentStatus, totalPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdatePhotoURLs(ctx context.Context, id int64, urls []string) error {
	args := m.Called(ctx, id, urls)
	return args.Error(0)
}

type MockStorageClient struct {
	mock.Mock
}

func (m *MockStorageClient) Delete(ctx context.Context, objectURL string) error {
	args := m.Called(ctx, objectURL)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		QuoteID:       "q-1",
		ScheduledDate: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "09:00",
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		PaymentType:   domain.PaymentTypeFull,
		TotalPrice:    100000,
		OriginalPrice: 100000,
	}
}

func TestService_Confirm_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	storage := new(MockStorageClient)

	booking := pendingBooking(1)
	paymentStatus := domain.PaymentStatusApproved

	confirmed := *booking
	confirmed.Status = domain.StatusConfirmed
	confirmed.PaymentStatus = paymentStatus

	repo.On("GetByID", mock.Anything, int64(1)).Return(booking, nil)
	repo.On("ApplyTransition", mock.Anything, int64(1), domain.StatusConfirmed, &paymentStatus, (*int64)(nil)).
		Return(&confirmed, nil)

	svc := NewService(repo, storage, nopLogger{})

	resp, err := svc.Confirm(context.Background(), 1, &paymentStatus)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentStatusApproved), resp.PaymentStatus)
	repo.AssertExpectations(t)
}

func TestService_Confirm_FullPaymentResyncsPrice(t *testing.T) {
	repo := new(MockBookingRepository)
	storage := new(MockStorageClient)

	// Полная оплата, но итоговая цена разошлась с исходной
	booking := pendingBooking(2)
	booking.TotalPrice = 50000

	confirmed := *booking
	confirmed.Status = domain.StatusConfirmed
	confirmed.TotalPrice = 100000

	repo.On("GetByID", mock.Anything, int64(2)).Return(booking, nil)
	repo.On("ApplyTransition", mock.Anything, int64(2), domain.StatusConfirmed, (*domain.PaymentStatus)(nil), mock.MatchedBy(func(price *int64) bool {
		return price != nil && *price == 100000
	})).Return(&confirmed, nil)

	svc := NewService(repo, storage, nopLogger{})

	resp, err := svc.Confirm(context.Background(), 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), resp.TotalPrice)
	repo.AssertExpectations(t)
}

func TestService_Confirm_TerminalStatusRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	storage := new(MockStorageClient)

	booking := pendingBooking(3)
	booking.Status = domain.StatusCancelled

	repo.On("GetByID", mock.Anything, int64(3)).Return(booking, nil)

	svc := NewService(repo, storage, nopLogger{})

	_, err := svc.Confirm(context.Background(), 3, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	repo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Complete_PartialPhotoCleanup(t *testing.T) {
	repo := new(MockBookingRepository)
	storage := new(MockStorageClient)

	booking := pendingBooking(4)
	booking.Status = domain.StatusConfirmed
	booking.PhotoURLs = []string{
		"https://cdn.example.com/photos/a.jpg",
		"https://cdn.example.com/photos/b.jpg",
		"https://cdn.example.com/photos/c.jpg",
	}

	completed := *booking
	completed.Status = domain.StatusCompleted

	repo.On("GetByID", mock.Anything, int64(4)).Return(booking, nil)
	repo.On("ApplyTransition", mock.Anything, int64(4), domain.StatusCompleted, (*domain.PaymentStatus)(nil), (*int64)(nil)).
		Return(&completed, nil)
	storage.On("Delete", mock.Anything, "https://cdn.example.com/photos/a.jpg").Return(nil)
	// Отсутствующий объект считается удалённым
	storage.On("Delete", mock.Anything, "https://cdn.example.com/photos/b.jpg").Return(objstorage.ErrObjectNotFound)
	// Сбой хранилища: URL остаётся для повторной очистки
	storage.On("Delete", mock.Anything, "https://cdn.example.com/photos/c.jpg").Return(errors.New("storage unavailable"))
	repo.On("UpdatePhotoURLs", mock.Anything, int64(4), []string{"https://cdn.example.com/photos/c.jpg"}).Return(nil)

	svc := NewService(repo, storage, nopLogger{})

	resp, err := svc.Complete(context.Background(), 4)
	require.NoError(t, err)

	// Частичный сбой очистки не откатывает переход
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, []string{"https://cdn.example.com/photos/c.jpg"}, resp.PhotoURLs)
	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestService_Complete_FromPending(t *testing.T) {
	repo := new(MockBookingRepository)
	storage := new(MockStorageClient)

	// Оплата наличными: переезд завершается без стадии confirmed
	booking := pendingBooking(5)
	booking.PhotoURLs = []string{"https://cdn.example.com/photos/a.jpg"}

	completed := *booking
	completed.Status = domain.StatusCompleted

	repo.On("GetByID", mock.Anything, int64(5)).Return(booking, nil)
	repo.On("ApplyTransition", mock.Anything, int64(5), domain.StatusCompleted, (*domain.PaymentStatus)(nil), (*int64)(nil)).
		Return(&completed, nil)
	storage.On("Delete", mock.Anything, "https://cdn.example.com/photos/a.jpg").Return(nil)
	repo.On("UpdatePhotoURLs", mock.Anything, int64(5), []string{}).Return(nil)

	svc := NewService(repo, storage, nopLogger{})

	resp, err := svc.Complete(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Empty(t, resp.PhotoURLs)
	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestService_Complete_FromCancelledRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	storage := new(MockStorageClient)

	booking := pendingBooking(7)
	booking.Status = domain.StatusCancelled

	repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)

	svc := NewService(repo, storage, nopLogger{})

	_, err := svc.Complete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	storage := new(MockStorageClient)

	booking := pendingBooking(6)
	booking.PhotoURLs = []string{"https://cdn.example.com/photos/a.jpg"}

	cancelled := *booking
	cancelled.Status = domain.StatusCancelled

	paymentStatus := domain.PaymentStatusRejected

	repo.On("GetByID", mock.Anything, int64(6)).Return(booking, nil)
	repo.On("ApplyTransition", mock.Anything, int64(6), domain.StatusCancelled, &paymentStatus, (*int64)(nil)).
		Return(&cancelled, nil)

	svc := NewService(repo, storage, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 6, &paymentStatus)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	// Фотографии при отмене не трогаем
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)

	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, bookingStorage.ErrBookingNotFound)

	svc := NewService(repo, new(MockStorageClient), nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_ListByDate_InvalidStatus(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockStorageClient), nopLogger{})

	status := "enviado"
	_, err := svc.ListByDate(context.Background(), &models.ListByDateRequest{
		Date:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListByDate_FiltersByStatus(t *testing.T) {
	repo := new(MockBookingRepository)

	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	status := "confirmed"

	repo.On("ListByDate", mock.Anything, date, []domain.BookingStatus{domain.StatusConfirmed}).
		Return([]*domain.Booking{pendingBooking(1)}, nil)

	svc := NewService(repo, new(MockStorageClient), nopLogger{})

	resp, err := svc.ListByDate(context.Background(), &models.ListByDateRequest{Date: date, Status: &status})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	repo.AssertExpectations(t)
}
