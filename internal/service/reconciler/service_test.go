package reconciler

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	bookingStorage "github.com/m04kA/MCB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/MCB-BookingService/internal/integrations/paygate"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle/models"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByPaymentOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteIfStatus(ctx context.Context, id int64, status domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

type MockLifecycleService struct {
	mock.Mock
}

func (m *MockLifecycleService) Confirm(ctx context.Context, id int64, paymentStatus *domain.PaymentStatus) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, paymentStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

func (m *MockLifecycleService) Cancel(ctx context.Context, id int64, paymentStatus *domain.PaymentStatus) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, paymentStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) VerifySignature(params url.Values) error {
	args := m.Called(params)
	return args.Error(0)
}

func (m *MockPaymentClient) GetStatus(ctx context.Context, orderID string) (*paygate.OrderStatus, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paygate.OrderStatus), args.Error(1)
}

// fakeScheduler запоминает запланированные задачи для синхронного запуска в тестах
type fakeScheduler struct {
	scheduled map[string]func()
	cancelled []string
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{scheduled: make(map[string]func())}
}

func (s *fakeScheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.scheduled[key] = fn
}

func (s *fakeScheduler) Cancel(key string) bool {
	s.cancelled = append(s.cancelled, key)
	_, ok := s.scheduled[key]
	delete(s.scheduled, key)
	return ok
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type testEnv struct {
	repo      *MockBookingRepository
	lifecycle *MockLifecycleService
	payments  *MockPaymentClient
	scheduler *fakeScheduler
	svc       *Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:      new(MockBookingRepository),
		lifecycle: new(MockLifecycleService),
		payments:  new(MockPaymentClient),
		scheduler: newFakeScheduler(),
	}
	env.svc = NewService(env.repo, env.lifecycle, env.payments, env.scheduler, 30*time.Minute, nopLogger{})
	return env
}

func callbackParams(orderID, status string) url.Values {
	params := url.Values{}
	params.Set("order_id", orderID)
	if status != "" {
		params.Set("status", status)
	}
	params.Set("s", "deadbeef")
	return params
}

func TestService_HandleCallback_InvalidSignature(t *testing.T) {
	env := newTestEnv()

	env.payments.On("VerifySignature", mock.Anything).Return(paygate.ErrInvalidSignature)

	err := env.svc.HandleCallback(context.Background(), callbackParams("ord-1", "approved"))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// До проверки подписи состояние не трогаем
	env.repo.AssertNotCalled(t, "GetByPaymentOrderID", mock.Anything, mock.Anything)
}

func TestService_HandleCallback_ApprovedConfirms(t *testing.T) {
	env := newTestEnv()

	booking := &domain.Booking{ID: 1, Status: domain.StatusPending}

	env.payments.On("VerifySignature", mock.Anything).Return(nil)
	env.repo.On("GetByPaymentOrderID", mock.Anything, "ord-1").Return(booking, nil)
	env.lifecycle.On("Confirm", mock.Anything, int64(1), mock.MatchedBy(func(status *domain.PaymentStatus) bool {
		return status != nil && *status == domain.PaymentStatusApproved
	})).Return(&models.BookingResponse{ID: 1, Status: string(domain.StatusConfirmed)}, nil)

	err := env.svc.HandleCallback(context.Background(), callbackParams("ord-1", "approved"))
	require.NoError(t, err)

	env.lifecycle.AssertExpectations(t)
	// Подтверждённая оплата снимает отложенное удаление
	assert.Contains(t, env.scheduler.cancelled, "booking:1")
}

func TestService_HandleCallback_ApprovedDuplicateIsNoop(t *testing.T) {
	env := newTestEnv()

	booking := &domain.Booking{ID: 2, Status: domain.StatusConfirmed}

	env.payments.On("VerifySignature", mock.Anything).Return(nil)
	env.repo.On("GetByPaymentOrderID", mock.Anything, "ord-2").Return(booking, nil)

	// Повторная доставка уведомления подтверждается успехом без переходов
	err := env.svc.HandleCallback(context.Background(), callbackParams("ord-2", "approved"))
	require.NoError(t, err)

	env.lifecycle.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_HandleCallback_ApprovedForCancelledKeepsDeletionScheduled(t *testing.T) {
	env := newTestEnv()

	// Бронирование уже отменено, удаление запланировано
	booking := &domain.Booking{ID: 8, Status: domain.StatusCancelled}
	env.scheduler.Schedule("booking:8", time.Minute, func() {})

	env.payments.On("VerifySignature", mock.Anything).Return(nil)
	env.repo.On("GetByPaymentOrderID", mock.Anything, "ord-8").Return(booking, nil)
	env.lifecycle.On("Confirm", mock.Anything, int64(8), mock.Anything).
		Return(nil, lifecycle.ErrInvalidTransition)

	err := env.svc.HandleCallback(context.Background(), callbackParams("ord-8", "approved"))
	require.NoError(t, err)

	// Подтверждение не состоялось: отмененная запись остается в графике удаления
	assert.Empty(t, env.scheduler.cancelled)
	assert.Contains(t, env.scheduler.scheduled, "booking:8")
}

func TestService_HandleCallback_RejectedCancelsAndSchedulesDeletion(t *testing.T) {
	env := newTestEnv()

	booking := &domain.Booking{ID: 3, Status: domain.StatusPending}

	env.payments.On("VerifySignature", mock.Anything).Return(nil)
	env.repo.On("GetByPaymentOrderID", mock.Anything, "ord-3").Return(booking, nil)
	env.lifecycle.On("Cancel", mock.Anything, int64(3), mock.MatchedBy(func(status *domain.PaymentStatus) bool {
		return status != nil && *status == domain.PaymentStatusRejected
	})).Return(&models.BookingResponse{ID: 3, Status: string(domain.StatusCancelled)}, nil)
	env.repo.On("DeleteIfStatus", mock.Anything, int64(3), domain.StatusCancelled).Return(true, nil)

	err := env.svc.HandleCallback(context.Background(), callbackParams("ord-3", "rejected"))
	require.NoError(t, err)

	// Удаление отложено и проверяет статус в момент срабатывания
	fn, ok := env.scheduler.scheduled["booking:3"]
	require.True(t, ok)
	fn()

	env.repo.AssertExpectations(t)
}

func TestService_HandleCallback_DeletionSkippedWhenReinstated(t *testing.T) {
	env := newTestEnv()

	booking := &domain.Booking{ID: 4, Status: domain.StatusPending}

	env.payments.On("VerifySignature", mock.Anything).Return(nil)
	env.repo.On("GetByPaymentOrderID", mock.Anything, "ord-4").Return(booking, nil)
	env.lifecycle.On("Cancel", mock.Anything, int64(4), mock.Anything).
		Return(&models.BookingResponse{ID: 4, Status: string(domain.StatusCancelled)}, nil)
	// К моменту срабатывания бронирование восстановлено администратором
	env.repo.On("DeleteIfStatus", mock.Anything, int64(4), domain.StatusCancelled).Return(false, nil)

	err := env.svc.HandleCallback(context.Background(), callbackParams("ord-4", "cancelled"))
	require.NoError(t, err)

	fn, ok := env.scheduler.scheduled["booking:4"]
	require.True(t, ok)
	fn()

	env.repo.AssertExpectations(t)
}

func TestService_HandleCallback_UnknownCodeKeepsPaymentPending(t *testing.T) {
	env := newTestEnv()

	booking := &domain.Booking{ID: 5, Status: domain.StatusPending}

	env.payments.On("VerifySignature", mock.Anything).Return(nil)
	env.repo.On("GetByPaymentOrderID", mock.Anything, "ord-5").Return(booking, nil)
	env.repo.On("UpdatePaymentStatus", mock.Anything, int64(5), domain.PaymentStatusPending).Return(nil)

	err := env.svc.HandleCallback(context.Background(), callbackParams("ord-5", "en_revision"))
	require.NoError(t, err)

	env.lifecycle.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
	env.lifecycle.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
	env.repo.AssertExpectations(t)
}

func TestService_HandleCallback_MissingStatusFetchesFromGateway(t *testing.T) {
	env := newTestEnv()

	booking := &domain.Booking{ID: 6, Status: domain.StatusPending}

	env.payments.On("VerifySignature", mock.Anything).Return(nil)
	env.repo.On("GetByPaymentOrderID", mock.Anything, "ord-6").Return(booking, nil)
	env.payments.On("GetStatus", mock.Anything, "ord-6").
		Return(&paygate.OrderStatus{OrderID: "ord-6", Status: paygate.StatusApproved}, nil)
	env.lifecycle.On("Confirm", mock.Anything, int64(6), mock.Anything).
		Return(&models.BookingResponse{ID: 6, Status: string(domain.StatusConfirmed)}, nil)

	err := env.svc.HandleCallback(context.Background(), callbackParams("ord-6", ""))
	require.NoError(t, err)

	env.payments.AssertExpectations(t)
	env.lifecycle.AssertExpectations(t)
}

func TestService_HandleCallback_UnknownOrderAcked(t *testing.T) {
	env := newTestEnv()

	env.payments.On("VerifySignature", mock.Anything).Return(nil)
	env.repo.On("GetByPaymentOrderID", mock.Anything, "ord-7").Return(nil, bookingStorage.ErrBookingNotFound)

	// Неизвестный заказ подтверждается успехом, шлюз не должен ретраить
	err := env.svc.HandleCallback(context.Background(), callbackParams("ord-7", "approved"))
	assert.NoError(t, err)
}

func TestService_HandleCallback_MissingOrderIDAcked(t *testing.T) {
	env := newTestEnv()

	env.payments.On("VerifySignature", mock.Anything).Return(nil)

	params := url.Values{}
	params.Set("s", "deadbeef")

	err := env.svc.HandleCallback(context.Background(), params)
	assert.NoError(t, err)

	env.repo.AssertNotCalled(t, "GetByPaymentOrderID", mock.Anything, mock.Anything)
}
