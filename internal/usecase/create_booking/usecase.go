package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	quoteRepo "github.com/m04kA/MCB-BookingService/internal/infra/storage/quote"
	"github.com/m04kA/MCB-BookingService/internal/integrations/paygate"
)

// PaymentURLs адреса возврата и уведомлений для платежного шлюза
type PaymentURLs struct {
	ReturnURL   string
	CallbackURL string
}

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	quoteRepo     QuoteRepository
	blockedRepo   BlockedRepository
	configs       ConfigProvider
	paymentClient PaymentClient
	paymentURLs   PaymentURLs
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	quoteRepo QuoteRepository,
	blockedRepo BlockedRepository,
	configs ConfigProvider,
	paymentClient PaymentClient,
	paymentURLs PaymentURLs,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		quoteRepo:     quoteRepo,
		blockedRepo:   blockedRepo,
		configs:       configs,
		paymentClient: paymentClient,
		paymentURLs:   paymentURLs,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка емкости и вставка выполняются в одной сериализуемой транзакции:
// два конкурентных запроса на последнюю свободную машину не пройдут оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: quote=%s, date=%s, time=%s, paymentType=%s",
		req.QuoteID, req.ScheduledDate.Format(domain.DateFormat), req.ScheduledTime, req.PaymentType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Валидация даты
	if err := validateDate(req.ScheduledDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем сохраненный расчет стоимости
	quote, err := uc.quoteRepo.GetByID(ctx, req.QuoteID)
	if err != nil {
		if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
			uc.logger.Warn("CreateBooking: quote id=%s not found", req.QuoteID)
			return nil, ErrQuoteNotFound
		}
		uc.logger.Error("CreateBooking: failed to get quote id=%s: %v", req.QuoteID, err)
		return nil, fmt.Errorf("%w: failed to get quote: %v", ErrInternal, err)
	}

	// 4. Проверяем, что время соответствует слоту расписания
	schedule, err := uc.configs.Schedule(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	if _, ok := schedule.FindSlot(req.ScheduledTime); !ok {
		uc.logger.Warn("CreateBooking: time %s does not match any slot", req.ScheduledTime)
		return nil, ErrInvalidTimeSlot
	}

	fleet, err := uc.configs.Fleet(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get fleet config: %v", err)
		return nil, fmt.Errorf("%w: failed to get fleet config: %v", ErrInternal, err)
	}

	// Итоговая цена зависит от типа оплаты: при частичной берется половина
	totalPrice := quote.Total
	if req.PaymentType == string(domain.PaymentTypePartial) {
		totalPrice = (quote.Total*int64(domain.PartialPaymentPercent) + 50) / 100
	}

	var result *domain.Booking

	// 5. Проверка емкости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокировки действуют независимо от занятости
		blocked, err := uc.blockedRepo.ListByDate(txCtx, req.ScheduledDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocked intervals: %v", err)
			return fmt.Errorf("%w: failed to get blocked intervals: %v", ErrInternal, err)
		}

		if domain.AnyCovers(blocked, req.ScheduledTime) {
			uc.logger.Warn("CreateBooking: slot %s %s is blocked",
				req.ScheduledDate.Format(domain.DateFormat), req.ScheduledTime)
			return ErrSlotUnavailable
		}

		// 5.2. Активные бронирования слота с блокировкой строк (FOR UPDATE)
		active, err := uc.bookingRepo.ListForSlot(txCtx, req.ScheduledDate, req.ScheduledTime, true)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slot bookings: %v", err)
			return fmt.Errorf("%w: failed to get slot bookings: %v", ErrInternal, err)
		}

		// Если numVehicles = 2, допустимо 0 или 1 занятых машин
		if len(active) >= fleet.NumVehicles {
			uc.logger.Warn("CreateBooking: slot not available, %d/%d units taken",
				len(active), fleet.NumVehicles)
			return ErrSlotUnavailable
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d units taken", len(active), fleet.NumVehicles)

		// 5.3. Новое бронирование всегда создается в статусе pending
		booking := &domain.Booking{
			QuoteID:       req.QuoteID,
			ClientName:    req.ClientName,
			ClientEmail:   req.ClientEmail,
			ClientPhone:   req.ClientPhone,
			ScheduledDate: req.ScheduledDate,
			ScheduledTime: req.ScheduledTime,
			DurationHours: domain.DefaultDurationHours,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentStatusPending,
			PaymentType:   domain.PaymentType(req.PaymentType),
			TotalPrice:    totalPrice,
			OriginalPrice: quote.Total,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 6. Создаем платежный заказ вне транзакции
	// Недоступность шлюза не отменяет бронирование: оно остается pending,
	// клиент получает ответ без ссылки на оплату
	paymentURL := uc.createPaymentOrder(ctx, result)

	return &Response{
		ID:            result.ID,
		QuoteID:       result.QuoteID,
		ClientName:    result.ClientName,
		ClientEmail:   result.ClientEmail,
		ClientPhone:   result.ClientPhone,
		ScheduledDate: result.ScheduledDate,
		ScheduledTime: result.ScheduledTime,
		DurationHours: result.DurationHours,
		Status:        string(result.Status),
		PaymentStatus: string(result.PaymentStatus),
		PaymentType:   string(result.PaymentType),
		TotalPrice:    result.TotalPrice,
		OriginalPrice: result.OriginalPrice,
		PaymentURL:    paymentURL,
		CreatedAt:     result.CreatedAt,
	}, nil
}

// createPaymentOrder создает заказ в платежном шлюзе и привязывает его к бронированию
// Возвращает ссылку на оплату или пустую строку при ошибке
func (uc *UseCase) createPaymentOrder(ctx context.Context, booking *domain.Booking) string {
	orderID := uuid.NewString()

	order, err := uc.paymentClient.CreateOrder(ctx, paygate.CreateOrderRequest{
		OrderID:     orderID,
		Amount:      booking.TotalPrice,
		Email:       booking.ClientEmail,
		ReturnURL:   uc.paymentURLs.ReturnURL,
		CallbackURL: uc.paymentURLs.CallbackURL,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create payment order for booking id=%d: %v", booking.ID, err)
		return ""
	}

	if err := uc.bookingRepo.SetPaymentOrderID(ctx, booking.ID, orderID); err != nil {
		uc.logger.Error("CreateBooking: failed to attach payment order id=%s to booking id=%d: %v",
			orderID, booking.ID, err)
		return ""
	}

	return order.URL
}
