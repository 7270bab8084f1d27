package quote_price

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VolumeM3 < 0 {
		return fmt.Errorf("%w: volumeM3 must not be negative", ErrInvalidInput)
	}

	if req.DistanceKm != nil && *req.DistanceKm < 0 {
		return fmt.Errorf("%w: distanceKm must not be negative", ErrInvalidInput)
	}

	if req.FloorsNoElevator < 0 {
		return fmt.Errorf("%w: floorsNoElevator must not be negative", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Расстояние либо задано явно, либо считается по адресам
	if req.DistanceKm == nil && (req.OriginAddress == "" || req.DestinationAddress == "") {
		return fmt.Errorf("%w: either distanceKm or both addresses are required", ErrInvalidInput)
	}

	return nil
}
