package mocks

import (
	"context"
	"fmt"

	"github.com/you/attendsvc/domain"
)

// MockGeocodingService implements domain.GeocodingService interface for testing
type MockGeocodingService struct {
	ReverseGeocodeFunc func(ctx context.Context, lat, lng float64) (string, error)
}

// NewMockGeocodingService creates a new MockGeocodingService with default behaviors
func NewMockGeocodingService() *MockGeocodingService {
	return &MockGeocodingService{}
}

// ReverseGeocode resolves coordinates to an address
func (m *MockGeocodingService) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	if m.ReverseGeocodeFunc != nil {
		return m.ReverseGeocodeFunc(ctx, lat, lng)
	}
	// Default behavior: synthetic address derived from the coordinates
	return fmt.Sprintf("Mock Street %.2f, Mock City %.2f", lat, lng), nil
}

// Compile-time interface compliance verification
var _ domain.GeocodingService = (*MockGeocodingService)(nil)
