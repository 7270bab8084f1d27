package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.QuoteID == "" {
		return fmt.Errorf("%w: quoteId is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must not exceed %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if err := validateEmail(req.ClientEmail); err != nil {
		return err
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.ScheduledDate.IsZero() {
		return fmt.Errorf("%w: scheduledDate is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.ScheduledTime.IsZero() {
		return fmt.Errorf("%w: scheduledTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.ScheduledTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid scheduledTime format: %v", ErrInvalidInput, err)
	}

	if req.PaymentType != string(domain.PaymentTypeFull) && req.PaymentType != string(domain.PaymentTypePartial) {
		return fmt.Errorf("%w: paymentType must be %q or %q",
			ErrInvalidInput, domain.PaymentTypeFull, domain.PaymentTypePartial)
	}

	return nil
}

// validateEmail проверяет минимальную корректность адреса почты
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: clientEmail is required", ErrInvalidInput)
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("%w: invalid clientEmail format", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
