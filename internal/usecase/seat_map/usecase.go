package seat_map

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	transportRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/transport"
	"github.com/m04kA/SMC-TravelBooking/internal/service/pricing"
	"github.com/m04kA/SMC-TravelBooking/pkg/ptr"
)

// UseCase use case карт мест и расчёта стоимости
type UseCase struct {
	transportRepo TransportRepository
	priceTable    domain.FlightPriceTable
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(transportRepo TransportRepository, priceTable domain.FlightPriceTable, logger Logger) *UseCase {
	return &UseCase{
		transportRepo: transportRepo,
		priceTable:    priceTable,
		logger:        logger,
	}
}

// BusSeats возвращает хранимую карту мест автобуса
func (uc *UseCase) BusSeats(ctx context.Context, busID string) (*SeatMap, error) {
	bus, err := uc.getBus(ctx, busID)
	if err != nil {
		return nil, err
	}

	return &SeatMap{
		TripID:      bus.ID,
		Kind:        string(domain.KindBus),
		Name:        bus.Name,
		From:        bus.From,
		To:          bus.To,
		DepartureAt: bus.DepartureAt,
		Decks:       bus.Decks,
		Rows:        bus.Rows,
		Columns:     bus.Columns,
		Available:   countAvailable(bus.Seats),
		Seats:       bus.Seats,
	}, nil
}

// FlightSeats строит карту мест рейса с ценами выбранного тарифа
func (uc *UseCase) FlightSeats(ctx context.Context, flightID string, tier domain.FareTier) (*SeatMap, error) {
	parsed, ok := domain.ParseFareTier(string(tier))
	if !ok {
		uc.logger.Warn("FlightSeats: unknown fare tier=%s", tier)
		return nil, fmt.Errorf("%w: unknown fare tier %s", ErrInvalidInput, tier)
	}

	flight, err := uc.getFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	seats := pricing.FlightSeatMap(flight, parsed, uc.priceTable)
	return &SeatMap{
		TripID:      flight.ID,
		Kind:        string(domain.KindFlight),
		Name:        flight.FlightNumber,
		From:        flight.From,
		To:          flight.To,
		DepartureAt: flight.DepartureAt,
		FareTier:    ptr.Ptr(string(parsed)),
		Decks:       1,
		Rows:        flight.Rows,
		Columns:     flight.Columns,
		Available:   countAvailable(seats),
		Seats:       seats,
	}, nil
}

// QuoteBus считает стоимость выбранных мест автобуса
func (uc *UseCase) QuoteBus(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	bus, err := uc.getBus(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	return quote(bus.ID, bus.Seats, req.SeatIDs), nil
}

// QuoteFlight считает стоимость выбранных мест рейса по тарифу
func (uc *UseCase) QuoteFlight(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	tier, ok := domain.ParseFareTier(string(req.Tier))
	if !ok {
		uc.logger.Warn("QuoteFlight: unknown fare tier=%s", req.Tier)
		return nil, fmt.Errorf("%w: unknown fare tier %s", ErrInvalidInput, req.Tier)
	}

	flight, err := uc.getFlight(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	return quote(flight.ID, pricing.FlightSeatMap(flight, tier, uc.priceTable), req.SeatIDs), nil
}

func (uc *UseCase) getBus(ctx context.Context, busID string) (*domain.Bus, error) {
	if busID == "" {
		return nil, fmt.Errorf("%w: bus id is required", ErrInvalidInput)
	}

	bus, err := uc.transportRepo.GetBus(ctx, busID)
	if err != nil {
		if errors.Is(err, transportRepo.ErrBusNotFound) {
			uc.logger.Warn("SeatMap: bus id=%s not found", busID)
			return nil, ErrBusNotFound
		}
		uc.logger.Error("SeatMap: failed to get bus id=%s: %v", busID, err)
		return nil, fmt.Errorf("%w: failed to get bus: %w", ErrInternal, err)
	}
	return bus, nil
}

func (uc *UseCase) getFlight(ctx context.Context, flightID string) (*domain.Flight, error) {
	if flightID == "" {
		return nil, fmt.Errorf("%w: flight id is required", ErrInvalidInput)
	}

	flight, err := uc.transportRepo.GetFlight(ctx, flightID)
	if err != nil {
		if errors.Is(err, transportRepo.ErrFlightNotFound) {
			uc.logger.Warn("SeatMap: flight id=%s not found", flightID)
			return nil, ErrFlightNotFound
		}
		uc.logger.Error("SeatMap: failed to get flight id=%s: %v", flightID, err)
		return nil, fmt.Errorf("%w: failed to get flight: %w", ErrInternal, err)
	}
	return flight, nil
}

func quote(tripID string, seats []domain.Seat, seatIDs []string) *Quote {
	sold := make([]string, 0)
	for _, s := range seats {
		if !s.IsSold() {
			continue
		}
		for _, id := range seatIDs {
			if id == s.ID {
				sold = append(sold, id)
				break
			}
		}
	}

	if seatIDs == nil {
		seatIDs = []string{}
	}

	return &Quote{
		TripID:       tripID,
		SeatIDs:      seatIDs,
		TotalPrice:   pricing.PriceForSelection(seats, seatIDs),
		UnknownSeats: pricing.UnknownSeats(seats, seatIDs),
		SoldSeats:    sold,
	}
}

func countAvailable(seats []domain.Seat) int {
	n := 0
	for i := range seats {
		if !seats[i].IsSold() {
			n++
		}
	}
	return n
}
