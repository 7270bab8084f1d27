package reconciler

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/MCB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle"
	"github.com/m04kA/MCB-BookingService/pkg/ptr"
)

// Имена параметров уведомления платежного шлюза
const (
	paramOrderID = "order_id"
	paramStatus  = "status"
)

// Service реконсилятор платежных уведомлений
// Маппит статус-коды шлюза на переходы машины состояний, идемпотентно
// по внешнему идентификатору заказа: повторная доставка уведомления
// не меняет состояние и подтверждается успехом.
// Внутренние ошибки не пробрасываются вызывающему (требование протокола
// шлюза), но логируются для наблюдаемости
type Service struct {
	bookingRepo   BookingRepository
	lifecycleSvc  LifecycleService
	paymentClient PaymentClient
	scheduler     DeferredScheduler
	deletionGrace time.Duration
	logger        Logger
}

// NewService создает новый экземпляр реконсилятора
func NewService(
	bookingRepo BookingRepository,
	lifecycleSvc LifecycleService,
	paymentClient PaymentClient,
	scheduler DeferredScheduler,
	deletionGrace time.Duration,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		lifecycleSvc:  lifecycleSvc,
		paymentClient: paymentClient,
		scheduler:     scheduler,
		deletionGrace: deletionGrace,
		logger:        logger,
	}
}

// HandleCallback обрабатывает уведомление платежного шлюза
// Возвращает ErrUnauthorized при невалидной подписи; все остальные
// исходы, включая внутренние сбои, подтверждаются вызывающему успехом
func (s *Service) HandleCallback(ctx context.Context, params url.Values) error {
	// 1. Проверка подписи до любых изменений состояния
	if err := s.paymentClient.VerifySignature(params); err != nil {
		s.logger.Warn("HandleCallback: signature verification failed: %v", err)
		return ErrUnauthorized
	}

	orderID := params.Get(paramOrderID)
	if orderID == "" {
		s.logger.Warn("HandleCallback: missing order_id parameter")
		return nil
	}

	// 2. Находим бронирование по внешнему идентификатору заказа
	booking, err := s.bookingRepo.GetByPaymentOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("HandleCallback: no booking for order_id=%s", orderID)
			return nil
		}
		s.logger.Error("HandleCallback: repository error for order_id=%s: %v", orderID, err)
		return nil
	}

	// 3. Статус из уведомления; при его отсутствии запрашиваем шлюз
	code := params.Get(paramStatus)
	if code == "" {
		code = s.fetchStatus(ctx, orderID)
		if code == "" {
			return nil
		}
	}

	s.logger.Info("HandleCallback: order_id=%s, booking id=%d, code=%s", orderID, booking.ID, code)
	s.reconcile(ctx, booking, code)
	return nil
}

// fetchStatus запрашивает статус заказа у шлюза
func (s *Service) fetchStatus(ctx context.Context, orderID string) string {
	status, err := s.paymentClient.GetStatus(ctx, orderID)
	if err != nil {
		s.logger.Error("HandleCallback: failed to fetch status for order_id=%s: %v", orderID, err)
		return ""
	}
	return status.Status
}

// reconcile применяет переход по статус-коду шлюза
func (s *Service) reconcile(ctx context.Context, booking *domain.Booking, code string) {
	switch code {
	case domain.GatewayCodeApproved:
		s.confirm(ctx, booking)
	case domain.GatewayCodeRejected:
		s.cancel(ctx, booking, domain.PaymentStatusRejected)
	case domain.GatewayCodeCancelled:
		s.cancel(ctx, booking, domain.PaymentStatusCancelled)
	default:
		// Неизвестный код: оплата остается в ожидании, бронирование не трогаем
		s.logger.Warn("HandleCallback: unknown gateway code=%q for booking id=%d", code, booking.ID)
		if err := s.bookingRepo.UpdatePaymentStatus(ctx, booking.ID, domain.PaymentStatusPending); err != nil {
			s.logger.Error("HandleCallback: failed to update payment status for booking id=%d: %v", booking.ID, err)
		}
	}
}

// confirm подтверждает бронирование по успешной оплате
// Отложенное удаление снимается только после фактического подтверждения:
// если бронирование осталось в cancelled, запись должна быть удалена по графику
func (s *Service) confirm(ctx context.Context, booking *domain.Booking) {
	// Повторная доставка уведомления: состояние уже целевое, no-op
	if booking.Status == domain.StatusConfirmed || booking.Status == domain.StatusCompleted {
		s.logger.Info("HandleCallback: booking id=%d already in status=%s, skipping", booking.ID, booking.Status)
		return
	}

	if _, err := s.lifecycleSvc.Confirm(ctx, booking.ID, ptr.Ptr(domain.PaymentStatusApproved)); err != nil {
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			s.logger.Warn("HandleCallback: cannot confirm booking id=%d: %v", booking.ID, err)
			return
		}
		s.logger.Error("HandleCallback: failed to confirm booking id=%d: %v", booking.ID, err)
		return
	}

	if s.scheduler.Cancel(deletionKey(booking.ID)) {
		s.logger.Info("HandleCallback: cancelled scheduled deletion for booking id=%d", booking.ID)
	}
}

// cancel отменяет бронирование по отклоненной или отмененной оплате
// и планирует отложенное удаление записи
func (s *Service) cancel(ctx context.Context, booking *domain.Booking, paymentStatus domain.PaymentStatus) {
	if booking.Status == domain.StatusCancelled {
		s.logger.Info("HandleCallback: booking id=%d already cancelled, skipping", booking.ID)
		return
	}

	if _, err := s.lifecycleSvc.Cancel(ctx, booking.ID, &paymentStatus); err != nil {
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			s.logger.Warn("HandleCallback: cannot cancel booking id=%d: %v", booking.ID, err)
			return
		}
		s.logger.Error("HandleCallback: failed to cancel booking id=%d: %v", booking.ID, err)
		return
	}

	s.scheduleDeletion(booking.ID)
}

// scheduleDeletion планирует удаление отмененного бронирования
// К моменту срабатывания статус мог измениться (ручное восстановление
// администратором), поэтому удаление условное: только если запись
// все еще в cancelled
func (s *Service) scheduleDeletion(bookingID int64) {
	s.scheduler.Schedule(deletionKey(bookingID), s.deletionGrace, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		deleted, err := s.bookingRepo.DeleteIfStatus(ctx, bookingID, domain.StatusCancelled)
		if err != nil {
			s.logger.Error("DeferredDeletion: failed to delete booking id=%d: %v", bookingID, err)
			return
		}

		if deleted {
			s.logger.Info("DeferredDeletion: deleted cancelled booking id=%d", bookingID)
		} else {
			s.logger.Info("DeferredDeletion: booking id=%d no longer cancelled, skipping", bookingID)
		}
	})

	s.logger.Info("HandleCallback: scheduled deletion of booking id=%d in %s", bookingID, s.deletionGrace)
}

// deletionKey ключ задачи отложенного удаления
func deletionKey(bookingID int64) string {
	return fmt.Sprintf("booking:%d", bookingID)
}
