package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if domain.NightsBetween(req.From, req.To) <= 0 {
		return fmt.Errorf("%w: to must be after from", ErrInvalidInput)
	}

	return nil
}
