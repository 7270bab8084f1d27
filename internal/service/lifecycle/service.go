package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/MCB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/MCB-BookingService/internal/integrations/objstorage"
	"github.com/m04kA/MCB-BookingService/internal/service/lifecycle/models"
	"github.com/m04kA/MCB-BookingService/pkg/ptr"
)

// Service машина состояний бронирования
// Переходы: pending -> confirmed/completed/cancelled,
// confirmed -> completed/cancelled. Терминальные статусы не покидаются никогда
type Service struct {
	bookingRepo   BookingRepository
	storageClient StorageClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса жизненного цикла
func NewService(bookingRepo BookingRepository, storageClient StorageClient, logger Logger) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		storageClient: storageClient,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// ListByDate получает бронирования на дату, опционально фильтруя по статусу
func (s *Service) ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListByDate: date=%s, status=%v", req.Date.Format(domain.DateFormat), req.Status)

	var statuses []domain.BookingStatus
	if req.Status != nil {
		if !domain.ValidBookingStatus(*req.Status) {
			s.logger.Warn("ListByDate: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		statuses = []domain.BookingStatus{domain.BookingStatus(*req.Status)}
	}

	bookings, err := s.bookingRepo.ListByDate(ctx, req.Date, statuses)
	if err != nil {
		s.logger.Error("ListByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Confirm переводит бронирование в confirmed
// Происходит при успешной оплате или по решению администратора.
// При полной оплате итоговая цена ресинхронизируется с исходной:
// остатка частичной оплаты не существует
func (s *Service) Confirm(ctx context.Context, id int64, paymentStatus *domain.PaymentStatus) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: booking id=%d", id)

	booking, err := s.getBooking(ctx, "Confirm", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(domain.StatusConfirmed) {
		s.logger.Warn("Confirm: booking id=%d in status=%s cannot be confirmed", id, booking.Status)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.StatusConfirmed)
	}

	var totalPrice *int64
	if booking.PaymentType == domain.PaymentTypeFull && booking.TotalPrice != booking.OriginalPrice {
		totalPrice = ptr.Ptr(booking.OriginalPrice)
		s.logger.Info("Confirm: booking id=%d full payment, resyncing total price to %d", id, booking.OriginalPrice)
	}

	updated, err := s.bookingRepo.ApplyTransition(ctx, id, domain.StatusConfirmed, paymentStatus, totalPrice)
	if err != nil {
		s.logger.Error("Confirm: failed to apply transition for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: booking id=%d confirmed", id)
	return models.FromDomainBooking(updated), nil
}

// Complete переводит бронирование в completed и запускает очистку фотографий
// Удаление фотографий best-effort: частичный сбой хранилища логируется,
// но не откатывает переход. Из photoUrls убираются только подтвержденно
// удаленные объекты, остальные остаются для повторной очистки
func (s *Service) Complete(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Complete: booking id=%d", id)

	booking, err := s.getBooking(ctx, "Complete", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(domain.StatusCompleted) {
		s.logger.Warn("Complete: booking id=%d in status=%s cannot be completed", id, booking.Status)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.StatusCompleted)
	}

	updated, err := s.bookingRepo.ApplyTransition(ctx, id, domain.StatusCompleted, nil, nil)
	if err != nil {
		s.logger.Error("Complete: failed to apply transition for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if len(booking.PhotoURLs) > 0 {
		remaining := s.deletePhotos(ctx, id, booking.PhotoURLs)
		if err := s.bookingRepo.UpdatePhotoURLs(ctx, id, remaining); err != nil {
			s.logger.Error("Complete: failed to update photo urls for booking id=%d: %v", id, err)
		} else {
			updated.PhotoURLs = remaining
		}
	}

	s.logger.Info("Complete: booking id=%d completed", id)
	return models.FromDomainBooking(updated), nil
}

// Cancel переводит бронирование в cancelled
// Фотографии при отмене не удаляются
func (s *Service) Cancel(ctx context.Context, id int64, paymentStatus *domain.PaymentStatus) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: booking id=%d", id)

	booking, err := s.getBooking(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(domain.StatusCancelled) {
		s.logger.Warn("Cancel: booking id=%d in status=%s cannot be cancelled", id, booking.Status)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.StatusCancelled)
	}

	updated, err := s.bookingRepo.ApplyTransition(ctx, id, domain.StatusCancelled, paymentStatus, nil)
	if err != nil {
		s.logger.Error("Cancel: failed to apply transition for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return models.FromDomainBooking(updated), nil
}

// getBooking получает бронирование, маппя ошибку репозитория на ошибку сервиса
func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// deletePhotos удаляет фотографии из хранилища и возвращает неудаленные URL
// Отсутствующий в хранилище объект считается удаленным
func (s *Service) deletePhotos(ctx context.Context, bookingID int64, urls []string) []string {
	remaining := make([]string, 0)

	for _, url := range urls {
		err := s.storageClient.Delete(ctx, url)
		if err != nil && !errors.Is(err, objstorage.ErrObjectNotFound) {
			s.logger.Error("Complete: failed to delete photo %s for booking id=%d: %v", url, bookingID, err)
			remaining = append(remaining, url)
			continue
		}
		s.logger.Info("Complete: deleted photo %s for booking id=%d", url, bookingID)
	}

	return remaining
}
