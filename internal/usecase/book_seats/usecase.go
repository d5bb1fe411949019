package book_seats

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/events"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	transportRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/transport"
	userRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-TravelBooking/internal/service/pricing"
	"github.com/m04kA/SMC-TravelBooking/pkg/ptr"
)

// UseCase use case бронирования мест в автобусах и на авиарейсах
type UseCase struct {
	bookingRepo   BookingRepository
	transportRepo TransportRepository
	userRepo      UserRepository
	txManager     TransactionManager
	publisher     EventPublisher
	metrics       Metrics
	priceTable    domain.FlightPriceTable
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	transportRepo TransportRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	priceTable domain.FlightPriceTable,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		transportRepo: transportRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		publisher:     publisher,
		metrics:       metrics,
		priceTable:    priceTable,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// ExecuteBus бронирует места в автобусе: места помечаются проданными,
// создаётся одно бронирование со ссылкой на рейс и места
func (uc *UseCase) ExecuteBus(ctx context.Context, req *BusRequest) (*Response, error) {
	uc.logger.Info("BookBusSeats: user=%s, bus=%s, seats=%v", req.UserID, req.BusID, req.SeatIDs)

	if err := validateSelection(req.UserID, req.BusID, req.SeatIDs); err != nil {
		uc.logger.Warn("BookBusSeats: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bus, err := uc.transportRepo.GetBus(txCtx, req.BusID)
		if err != nil {
			if errors.Is(err, transportRepo.ErrBusNotFound) {
				uc.logger.Warn("BookBusSeats: bus id=%s not found", req.BusID)
				return ErrBusNotFound
			}
			uc.logger.Error("BookBusSeats: failed to get bus id=%s: %v", req.BusID, err)
			return fmt.Errorf("%w: failed to get bus: %w", ErrInternal, err)
		}

		if err := validateDeparture(bus.DepartureAt, now); err != nil {
			uc.logger.Warn("BookBusSeats: bus id=%s departed at %s", bus.ID, bus.DepartureAt)
			return err
		}

		total, err := pricing.PriceForSelectionStrict(bus.Seats, req.SeatIDs)
		if err != nil {
			uc.logger.Warn("BookBusSeats: invalid selection for bus id=%s: %v", bus.ID, err)
			return mapPricingError(err)
		}

		user, err := uc.getUser(txCtx, req.UserID)
		if err != nil {
			return err
		}

		// Помечаем места проданными
		selected := toSet(req.SeatIDs)
		for i := range bus.Seats {
			if _, ok := selected[bus.Seats[i].ID]; ok {
				bus.Seats[i].Status = domain.SeatSold
			}
		}
		if err := uc.transportRepo.UpdateBusSeats(txCtx, bus.ID, bus.Seats); err != nil {
			uc.logger.Error("BookBusSeats: failed to update seats of bus id=%s: %v", bus.ID, err)
			return fmt.Errorf("%w: failed to update seats: %w", ErrInternal, err)
		}

		booking := &domain.Booking{
			ID:            bookingRepo.NewID(),
			UserID:        user.ID,
			Kind:          domain.KindBus,
			TripID:        bus.ID,
			SeatIDs:       req.SeatIDs,
			Deck:          pricing.DeckOf(bus.Seats, req.SeatIDs),
			FromDate:      bus.DepartureAt,
			ToDate:        bus.DepartureAt,
			TotalPrice:    total,
			Status:        domain.StatusConfirmed,
			HotelName:     bus.Name,
			HotelLocation: route(bus.From, bus.To),
			UserName:      user.Name,
			CreatedAt:     now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("BookBusSeats: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
		result = created
		return nil
	})

	if err != nil {
		uc.countConflict(err, domain.KindBus)
		return nil, err
	}

	uc.logger.Info("BookBusSeats: successfully created booking id=%s, total=%.2f", result.ID, result.TotalPrice)
	uc.afterCreate(ctx, result)

	return toResponse(result), nil
}

// ExecuteFlight бронирует места на авиарейс по выбранному тарифу
func (uc *UseCase) ExecuteFlight(ctx context.Context, req *FlightRequest) (*Response, error) {
	uc.logger.Info("BookFlightSeats: user=%s, flight=%s, seats=%v, tier=%s",
		req.UserID, req.FlightID, req.SeatIDs, req.Tier)

	if err := validateSelection(req.UserID, req.FlightID, req.SeatIDs); err != nil {
		uc.logger.Warn("BookFlightSeats: validation failed: %v", err)
		return nil, err
	}

	tier, ok := domain.ParseFareTier(string(req.Tier))
	if !ok {
		uc.logger.Warn("BookFlightSeats: unknown fare tier=%s", req.Tier)
		return nil, fmt.Errorf("%w: unknown fare tier %s", ErrInvalidInput, req.Tier)
	}

	now := uc.timeProvider.Now()
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		flight, err := uc.transportRepo.GetFlight(txCtx, req.FlightID)
		if err != nil {
			if errors.Is(err, transportRepo.ErrFlightNotFound) {
				uc.logger.Warn("BookFlightSeats: flight id=%s not found", req.FlightID)
				return ErrFlightNotFound
			}
			uc.logger.Error("BookFlightSeats: failed to get flight id=%s: %v", req.FlightID, err)
			return fmt.Errorf("%w: failed to get flight: %w", ErrInternal, err)
		}

		if err := validateDeparture(flight.DepartureAt, now); err != nil {
			uc.logger.Warn("BookFlightSeats: flight id=%s departed at %s", flight.ID, flight.DepartureAt)
			return err
		}

		seats := pricing.FlightSeatMap(flight, tier, uc.priceTable)
		total, err := pricing.PriceForSelectionStrict(seats, req.SeatIDs)
		if err != nil {
			uc.logger.Warn("BookFlightSeats: invalid selection for flight id=%s: %v", flight.ID, err)
			return mapPricingError(err)
		}

		user, err := uc.getUser(txCtx, req.UserID)
		if err != nil {
			return err
		}

		sold := append(append([]string{}, flight.SoldSeats...), req.SeatIDs...)
		if err := uc.transportRepo.UpdateSoldSeats(txCtx, flight.ID, sold); err != nil {
			uc.logger.Error("BookFlightSeats: failed to update sold seats of flight id=%s: %v", flight.ID, err)
			return fmt.Errorf("%w: failed to update sold seats: %w", ErrInternal, err)
		}

		booking := &domain.Booking{
			ID:            bookingRepo.NewID(),
			UserID:        user.ID,
			Kind:          domain.KindFlight,
			TripID:        flight.ID,
			SeatIDs:       req.SeatIDs,
			Deck:          ptr.Ptr(1),
			FareTier:      &tier,
			FromDate:      flight.DepartureAt,
			ToDate:        flight.DepartureAt,
			TotalPrice:    total,
			Status:        domain.StatusConfirmed,
			HotelName:     flight.FlightNumber,
			HotelLocation: route(flight.From, flight.To),
			UserName:      user.Name,
			CreatedAt:     now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("BookFlightSeats: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
		result = created
		return nil
	})

	if err != nil {
		uc.countConflict(err, domain.KindFlight)
		return nil, err
	}

	uc.logger.Info("BookFlightSeats: successfully created booking id=%s, total=%.2f", result.ID, result.TotalPrice)
	uc.afterCreate(ctx, result)

	return toResponse(result), nil
}

func (uc *UseCase) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BookSeats: user id=%s not found", userID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("BookSeats: failed to get user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get user: %w", ErrInternal, err)
	}
	return user, nil
}

func (uc *UseCase) countConflict(err error, kind domain.BookingKind) {
	if errors.Is(err, ErrSeatSold) && uc.metrics != nil {
		uc.metrics.BookingConflict(string(kind))
	}
}

func (uc *UseCase) afterCreate(ctx context.Context, booking *domain.Booking) {
	if uc.metrics != nil {
		uc.metrics.BookingCreated(string(booking.Kind))
	}
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, events.TopicBookingCreated, events.NewBookingCreated(booking)); err != nil {
		uc.logger.Warn("BookSeats: failed to publish %s for booking id=%s: %v",
			events.TopicBookingCreated, booking.ID, err)
	}
}

func route(from, to string) string {
	return from + " - " + to
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func toResponse(b *domain.Booking) *Response {
	resp := &Response{
		ID:          b.ID,
		UserID:      b.UserID,
		Kind:        string(b.Kind),
		TripID:      b.TripID,
		SeatIDs:     b.SeatIDs,
		Deck:        b.Deck,
		DepartureAt: b.FromDate,
		TotalPrice:  b.TotalPrice,
		Status:      string(b.Status),
		TripName:    b.HotelName,
		Route:       b.HotelLocation,
		UserName:    b.UserName,
		CreatedAt:   b.CreatedAt,
	}
	if b.FareTier != nil {
		resp.FareTier = ptr.Ptr(string(*b.FareTier))
	}
	return resp
}
