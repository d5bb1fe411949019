package book_seats

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/service/pricing"
)

// validateSelection валидирует пользователя, рейс и выбранные места
func validateSelection(userID, tripID string, seatIDs []string) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if tripID == "" {
		return fmt.Errorf("%w: trip id is required", ErrInvalidInput)
	}

	if len(seatIDs) == 0 {
		return fmt.Errorf("%w: at least one seat is required", ErrInvalidInput)
	}

	if len(seatIDs) > domain.MaxSeatsPerTrip {
		return fmt.Errorf("%w: cannot book more than %d seats", ErrInvalidInput, domain.MaxSeatsPerTrip)
	}

	for _, id := range seatIDs {
		if id == "" {
			return fmt.Errorf("%w: empty seat id", ErrInvalidInput)
		}
	}

	return nil
}

// validateDeparture проверяет, что рейс ещё не отправился
func validateDeparture(departureAt, now time.Time) error {
	if !departureAt.After(now) {
		return ErrTripDeparted
	}
	return nil
}

// mapPricingError переводит ошибки выбора мест в ошибки usecase
func mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrUnknownSeat):
		return fmt.Errorf("%w: %v", ErrUnknownSeat, err)
	case errors.Is(err, pricing.ErrSeatSold):
		return fmt.Errorf("%w: %v", ErrSeatSold, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}
