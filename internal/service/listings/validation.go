package listings

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/service/listings/models"
)

func validateHotel(req *models.CreateHotelRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	return nil
}

func validateRoom(req *models.CreateRoomRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}

func validateRoute(from, to string) error {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if from == to {
		return fmt.Errorf("%w: from and to must differ", ErrInvalidInput)
	}
	return nil
}

func validateLayout(decks, rows, columns int) error {
	if decks < 1 || decks > domain.MaxBusDecks {
		return fmt.Errorf("%w: decks must be between 1 and %d", ErrInvalidInput, domain.MaxBusDecks)
	}
	if rows < 1 || rows > domain.MaxSeatRows {
		return fmt.Errorf("%w: rows must be between 1 and %d", ErrInvalidInput, domain.MaxSeatRows)
	}
	if columns < 1 || columns > domain.MaxSeatColumns {
		return fmt.Errorf("%w: columns must be between 1 and %d", ErrInvalidInput, domain.MaxSeatColumns)
	}
	return nil
}

func validateBus(req *models.CreateBusRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := validateRoute(req.From, req.To); err != nil {
		return err
	}
	if req.DepartureAt.IsZero() {
		return fmt.Errorf("%w: departureAt is required", ErrInvalidInput)
	}
	if req.Fare < 0 {
		return fmt.Errorf("%w: fare cannot be negative", ErrInvalidInput)
	}
	return validateLayout(req.Decks, req.Rows, req.Columns)
}

func validateFlight(req *models.CreateFlightRequest) error {
	if strings.TrimSpace(req.FlightNumber) == "" {
		return fmt.Errorf("%w: flightNumber is required", ErrInvalidInput)
	}
	if err := validateRoute(req.From, req.To); err != nil {
		return err
	}
	if req.DepartureAt.IsZero() {
		return fmt.Errorf("%w: departureAt is required", ErrInvalidInput)
	}
	return validateLayout(1, req.Rows, req.Columns)
}

func parseListingStatus(raw *string) (*domain.ListingStatus, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	status, ok := domain.ParseListingStatus(*raw)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %s", ErrInvalidInput, *raw)
	}
	return &status, nil
}
