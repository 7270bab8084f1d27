package quote_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCB-BookingService/internal/domain"
	"github.com/m04kA/MCB-BookingService/internal/integrations/geodist"
	"github.com/m04kA/MCB-BookingService/pkg/ptr"
)

type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error) {
	args := m.Called(ctx, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

type MockConfigProvider struct {
	mock.Mock
}

func (m *MockConfigProvider) Pricing(ctx context.Context) (*domain.PricingConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingConfig), args.Error(1)
}

type MockGeoClient struct {
	mock.Mock
}

func (m *MockGeoClient) GetDistanceWithGracefulDegradation(ctx context.Context, origin, destination string) (float64, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(float64), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestUseCase_Execute_ExplicitDistance(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	configs := new(MockConfigProvider)
	geoClient := new(MockGeoClient)

	configs.On("Pricing", mock.Anything).Return(testPricingConfig(), nil)
	quoteRepo.On("Create", mock.Anything, mock.Anything).Return(&domain.Quote{
		ID:        "q-1",
		Total:     54000,
		CreatedAt: time.Now(),
	}, nil).Run(func(args mock.Arguments) {
		quote := args.Get(1).(*domain.Quote)
		assert.Equal(t, int64(54000), quote.Total)
		assert.NotEmpty(t, quote.ID)
	})

	uc := NewUseCase(quoteRepo, configs, geoClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VolumeM3:   5,
		DistanceKm: ptr.Ptr(60),
		Date:       mustDate(t, "2025-06-07"),
	})
	require.NoError(t, err)

	assert.Equal(t, "q-1", resp.QuoteID)
	assert.Equal(t, int64(54000), resp.Total)

	// Явно заданное расстояние: геосервис не вызывается
	geoClient.AssertNotCalled(t, "GetDistanceWithGracefulDegradation", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_GeoDegraded(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	configs := new(MockConfigProvider)
	geoClient := new(MockGeoClient)

	geoClient.On("GetDistanceWithGracefulDegradation", mock.Anything, "Av. Origen 1", "Av. Destino 2").
		Return(20.0, geodist.ErrServiceDegraded)
	configs.On("Pricing", mock.Anything).Return(testPricingConfig(), nil)
	quoteRepo.On("Create", mock.Anything, mock.Anything).Return(&domain.Quote{ID: "q-2", Total: 30000}, nil)

	uc := NewUseCase(quoteRepo, configs, geoClient, nopLogger{})

	// Геосервис недоступен: расчет продолжается с дистанцией по умолчанию
	resp, err := uc.Execute(context.Background(), &Request{
		OriginAddress:      "Av. Origen 1",
		DestinationAddress: "Av. Destino 2",
		Date:               mustDate(t, "2025-06-09"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30000), resp.Total)
}

func TestUseCase_Execute_AddressNotFound(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	configs := new(MockConfigProvider)
	geoClient := new(MockGeoClient)

	geoClient.On("GetDistanceWithGracefulDegradation", mock.Anything, mock.Anything, mock.Anything).
		Return(0.0, geodist.ErrAddressNotFound)

	uc := NewUseCase(quoteRepo, configs, geoClient, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OriginAddress:      "no existe 123",
		DestinationAddress: "tampoco 456",
		Date:               mustDate(t, "2025-06-09"),
	})
	assert.ErrorIs(t, err, ErrAddressNotFound)

	quoteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(new(MockQuoteRepository), new(MockConfigProvider), new(MockGeoClient), nopLogger{})

	testCases := []struct {
		name string
		req  *Request
	}{
		{name: "negative volume", req: &Request{VolumeM3: -1, DistanceKm: ptr.Ptr(10), Date: time.Now()}},
		{name: "negative distance", req: &Request{DistanceKm: ptr.Ptr(-5), Date: time.Now()}},
		{name: "negative floors", req: &Request{FloorsNoElevator: -2, DistanceKm: ptr.Ptr(10), Date: time.Now()}},
		{name: "zero date", req: &Request{DistanceKm: ptr.Ptr(10)}},
		{name: "no distance and no addresses", req: &Request{Date: time.Now()}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
