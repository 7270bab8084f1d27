package models

import (
	"time"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

// Request модели

// ListByDateRequest запрос бронирований на дату (админ)
type ListByDateRequest struct {
	Date   time.Time
	Status *string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64    `json:"id"`
	QuoteID       string   `json:"quoteId"`
	ClientName    string   `json:"clientName"`
	ClientEmail   string   `json:"clientEmail"`
	ClientPhone   string   `json:"clientPhone"`
	ScheduledDate string   `json:"scheduledDate"` // "2025-06-01"
	ScheduledTime string   `json:"scheduledTime"` // "09:00"
	DurationHours int      `json:"durationHours"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	PaymentType   string   `json:"paymentType"`
	TotalPrice    int64    `json:"totalPrice"`
	OriginalPrice int64    `json:"originalPrice"`
	PhotoURLs     []string `json:"photoUrls"`

	ConfirmedAt *string `json:"confirmedAt,omitempty"` // ISO 8601 format
	CompletedAt *string `json:"completedAt,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		QuoteID:       b.QuoteID,
		ClientName:    b.ClientName,
		ClientEmail:   b.ClientEmail,
		ClientPhone:   b.ClientPhone,
		ScheduledDate: b.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime: b.ScheduledTime.String(),
		DurationHours: b.DurationHours,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		PaymentType:   string(b.PaymentType),
		TotalPrice:    b.TotalPrice,
		OriginalPrice: b.OriginalPrice,
		PhotoURLs:     b.PhotoURLs,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if resp.PhotoURLs == nil {
		resp.PhotoURLs = []string{}
	}

	resp.ConfirmedAt = formatTime(b.ConfirmedAt)
	resp.CompletedAt = formatTime(b.CompletedAt)
	resp.CancelledAt = formatTime(b.CancelledAt)

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// formatTime конвертирует время в строку ISO 8601
func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
