package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCB-BookingService/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListByDate(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, date, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockBlockedRepository struct {
	mock.Mock
}

func (m *MockBlockedRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedInterval, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BlockedInterval), args.Error(1)
}

type MockConfigProvider struct {
	mock.Mock
}

func (m *MockConfigProvider) Fleet(ctx context.Context) (*domain.FleetConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FleetConfig), args.Error(1)
}

func (m *MockConfigProvider) Schedule(ctx context.Context) (*domain.ScheduleConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleConfig), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testSchedule() *domain.ScheduleConfig {
	// Слоты намеренно не отсортированы: ответ должен сортировать по времени
	return &domain.ScheduleConfig{
		Slots: []domain.TimeSlot{
			{Time: "15:00", Label: "Tarde"},
			{Time: "09:00", Label: "Mañana", Recommended: true},
			{Time: "12:00", Label: "Mediodía"},
		},
	}
}

func TestUseCase_Execute_CapacityCounting(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	blockedRepo := new(MockBlockedRepository)
	configs := new(MockConfigProvider)

	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	configs.On("Schedule", mock.Anything).Return(testSchedule(), nil)
	configs.On("Fleet", mock.Anything).Return(&domain.FleetConfig{NumVehicles: 2}, nil)
	bookingRepo.On("ListByDate", mock.Anything, date, domain.ActiveStatuses).Return([]*domain.Booking{
		{ID: 1, ScheduledTime: "09:00", Status: domain.StatusPending},
		{ID: 2, ScheduledTime: "09:00", Status: domain.StatusConfirmed},
		{ID: 3, ScheduledTime: "12:00", Status: domain.StatusPending},
	}, nil)
	blockedRepo.On("ListByDate", mock.Anything, date).Return([]*domain.BlockedInterval{}, nil)

	uc := NewUseCase(bookingRepo, blockedRepo, configs, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	// Слот 09:00 занят полностью и не попадает в ответ
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "12:00", resp.Slots[0].Time.String())
	assert.Equal(t, 1, resp.Slots[0].AvailableUnits)
	assert.Equal(t, "15:00", resp.Slots[1].Time.String())
	assert.Equal(t, 2, resp.Slots[1].AvailableUnits)
}

func TestUseCase_Execute_BlockedIntervalHidesSlot(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	blockedRepo := new(MockBlockedRepository)
	configs := new(MockConfigProvider)

	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	configs.On("Schedule", mock.Anything).Return(testSchedule(), nil)
	configs.On("Fleet", mock.Anything).Return(&domain.FleetConfig{NumVehicles: 2}, nil)
	bookingRepo.On("ListByDate", mock.Anything, date, mock.Anything).Return([]*domain.Booking{}, nil)
	blockedRepo.On("ListByDate", mock.Anything, date).Return([]*domain.BlockedInterval{
		// Полуоткрытый интервал [09:00, 12:00): слот 12:00 остаётся доступным
		{ID: 1, StartTime: "09:00", EndTime: "12:00"},
	}, nil)

	uc := NewUseCase(bookingRepo, blockedRepo, configs, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "12:00", resp.Slots[0].Time.String())
	assert.Equal(t, "15:00", resp.Slots[1].Time.String())
}

func TestUseCase_Execute_SortedByTime(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	blockedRepo := new(MockBlockedRepository)
	configs := new(MockConfigProvider)

	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	configs.On("Schedule", mock.Anything).Return(testSchedule(), nil)
	configs.On("Fleet", mock.Anything).Return(&domain.FleetConfig{NumVehicles: 1}, nil)
	bookingRepo.On("ListByDate", mock.Anything, date, mock.Anything).Return([]*domain.Booking{}, nil)
	blockedRepo.On("ListByDate", mock.Anything, date).Return([]*domain.BlockedInterval{}, nil)

	uc := NewUseCase(bookingRepo, blockedRepo, configs, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "09:00", resp.Slots[0].Time.String())
	assert.Equal(t, "12:00", resp.Slots[1].Time.String())
	assert.Equal(t, "15:00", resp.Slots[2].Time.String())
	assert.True(t, resp.Slots[0].Recommended)
}

func TestUseCase_Execute_ZeroDate(t *testing.T) {
	uc := NewUseCase(new(MockBookingRepository), new(MockBlockedRepository), new(MockConfigProvider), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildAvailability_TerminalStatusesDoNotCount(t *testing.T) {
	schedule := testSchedule()
	fleet := &domain.FleetConfig{NumVehicles: 2}

	bookings := []*domain.Booking{
		{ID: 1, ScheduledTime: "09:00", Status: domain.StatusCancelled},
		{ID: 2, ScheduledTime: "09:00", Status: domain.StatusCompleted},
		{ID: 3, ScheduledTime: "09:00", Status: domain.StatusPending},
	}

	availability := buildAvailability(schedule, fleet, bookings, nil)

	require.Len(t, availability, 3)
	assert.Equal(t, 1, availability[0].ActiveBookings)
	assert.Equal(t, 1, availability[0].AvailableUnits)
	assert.True(t, availability[0].IsAvailable())
}
