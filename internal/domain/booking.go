package domain

import (
	"time"

	"github.com/m04kA/MCB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state reported by the gateway
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentType тип оплаты: полная оплата или аванс
type PaymentType string

const (
	PaymentTypeFull    PaymentType = "completo"
	PaymentTypePartial PaymentType = "parcial"
)

// Booking represents a moving-service booking in the system
type Booking struct {
	ID             int64
	QuoteID        string
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	ScheduledDate  time.Time
	ScheduledTime  types.TimeString
	DurationHours  int
	Status         BookingStatus
	PaymentStatus  PaymentStatus
	PaymentType    PaymentType
	PaymentOrderID *string // ID заказа во внешнем платёжном шлюзе
	TotalPrice     int64   // сумма к оплате
	OriginalPrice  int64   // полная стоимость по квоте
	PhotoURLs      []string

	ConfirmedAt *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// transitions допустимые переходы статусов
// pending -> confirmed | completed | cancelled; confirmed -> completed | cancelled;
// completed и cancelled - терминальные.
// Завершение напрямую из pending допустимо: оплата наличными по факту переезда
// минует стадию подтверждения
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransitionTo returns true if the booking may move to the target status
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range transitions[b.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsActive returns true if the booking occupies a capacity unit on its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if the booking reached a terminal status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.CanTransitionTo(StatusCancelled)
}

// ActiveStatuses статусы, занимающие место в слоте
// Используется при подсчёте занятости слотов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// ValidBookingStatus returns true for known статусов бронирования
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
