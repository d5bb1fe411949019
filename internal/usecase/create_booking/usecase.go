package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/events"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	listingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/listing"
	userRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/user"
)

// UseCase use case для создания бронирования номера
type UseCase struct {
	bookingRepo  BookingRepository
	listingRepo  ListingRepository
	userRepo     UserRepository
	availability AvailabilityChecker
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	userRepo UserRepository,
	availability AvailabilityChecker,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		listingRepo:  listingRepo,
		userRepo:     userRepo,
		availability: availability,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Проверка пересечений, захват ключей ночей и запись бронирования выполняются
// в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, hotel=%s, room=%s, from=%s, to=%s",
		req.UserID, req.HotelID, req.RoomID,
		req.FromDate.Format(domain.DateFormat), req.ToDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	if err := validateDate(req.FromDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	fromDate := domain.DayFloor(req.FromDate)
	toDate := domain.DayFloor(req.ToDate)
	nights := domain.NightsBetween(fromDate, toDate)

	// ID генерируем заранее: ключи ночей ссылаются на бронирование
	bookingID := bookingRepo.NewID()

	var result *domain.Booking

	// 3. Выполняем операции с хранилищем в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем пересечение с подтверждёнными бронированиями
		overlap, err := uc.availability.CheckOverlap(txCtx, req.RoomID, fromDate, toDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check availability: %v", err)
			return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
		}
		if overlap {
			uc.logger.Warn("CreateBooking: room=%s is already booked for %s..%s",
				req.RoomID, fromDate.Format(domain.DateFormat), toDate.Format(domain.DateFormat))
			return ErrOverlap
		}

		// 3.2. Загружаем номер, отель и пользователя
		room, hotel, user, err := uc.loadReferences(txCtx, req)
		if err != nil {
			return err
		}

		if err := validateListing(room, hotel); err != nil {
			uc.logger.Warn("CreateBooking: listing validation failed: %v", err)
			return err
		}

		// 3.3. Занимаем ключи ночей
		if err := uc.claimNights(txCtx, req.RoomID, fromDate, toDate, bookingID); err != nil {
			return err
		}

		// 3.4. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			ID:         bookingID,
			UserID:     req.UserID,
			Kind:       domain.KindHotel,
			RoomID:     room.ID,
			HotelID:    hotel.ID,
			FromDate:   fromDate,
			ToDate:     toDate,
			TotalPrice: room.Price * float64(nights),
			Status:     domain.StatusConfirmed,
			// Денормализация данных отеля и номера
			HotelName:     hotel.Name,
			HotelLocation: hotel.Location,
			HotelOwnerID:  hotel.OwnerID,
			RoomTitle:     room.Title,
			CoverImage:    coverImage(room, hotel),
			// Денормализация данных пользователя
			UserName:  user.Name,
			CreatedAt: now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrOverlap) && uc.metrics != nil {
			uc.metrics.BookingConflict(string(domain.KindHotel))
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, nights=%d, total=%.2f",
		result.ID, nights, result.TotalPrice)

	if uc.metrics != nil {
		uc.metrics.BookingCreated(string(result.Kind))
	}
	uc.publish(ctx, result)

	return toResponse(result, nights), nil
}

// loadReferences загружает номер, отель и пользователя для денормализации
func (uc *UseCase) loadReferences(ctx context.Context, req *Request) (*domain.Room, *domain.Hotel, *domain.User, error) {
	room, err := uc.listingRepo.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, nil, nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	hotel, err := uc.listingRepo.GetHotel(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrHotelNotFound) {
			uc.logger.Warn("CreateBooking: hotel id=%s not found", req.HotelID)
			return nil, nil, nil, ErrHotelNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hotel id=%s: %v", req.HotelID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get hotel: %w", ErrInternal, err)
	}

	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%s not found", req.UserID)
			return nil, nil, nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%s: %v", req.UserID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get user: %w", ErrInternal, err)
	}

	return room, hotel, user, nil
}

// claimNights занимает ключ каждой ночи диапазона
// Ключ, оставшийся от отменённого или несохранённого бронирования, перехватывается.
func (uc *UseCase) claimNights(ctx context.Context, roomID string, from, to time.Time, bookingID string) error {
	for _, night := range domain.NightsOf(from, to) {
		err := uc.bookingRepo.ClaimNight(ctx, roomID, night, bookingID)
		if err == nil {
			continue
		}
		if !errors.Is(err, bookingRepo.ErrNightTaken) {
			uc.logger.Error("CreateBooking: failed to claim night %s: %v", night.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to claim night: %w", ErrInternal, err)
		}

		held, err := uc.bookingRepo.GetNight(ctx, roomID, night)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get night %s: %v", night.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to get night: %w", ErrInternal, err)
		}

		holder, err := uc.bookingRepo.GetByID(ctx, held.BookingID)
		switch {
		case err == nil && holder.IsConfirmed():
			uc.logger.Warn("CreateBooking: night %s of room=%s is held by booking id=%s",
				night.Format(domain.DateFormat), roomID, holder.ID)
			return ErrOverlap
		case err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound):
			uc.logger.Error("CreateBooking: failed to get night holder id=%s: %v", held.BookingID, err)
			return fmt.Errorf("%w: failed to get night holder: %w", ErrInternal, err)
		}

		if err := uc.bookingRepo.TakeOverNight(ctx, roomID, night, bookingID); err != nil {
			uc.logger.Error("CreateBooking: failed to take over night %s: %v", night.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to take over night: %w", ErrInternal, err)
		}
	}
	return nil
}

func (uc *UseCase) publish(ctx context.Context, booking *domain.Booking) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, events.TopicBookingCreated, events.NewBookingCreated(booking)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish %s for booking id=%s: %v",
			events.TopicBookingCreated, booking.ID, err)
	}
}

func coverImage(room *domain.Room, hotel *domain.Hotel) string {
	if img := room.CoverImage(); img != "" {
		return img
	}
	return hotel.CoverImage()
}

func toResponse(b *domain.Booking, nights int) *Response {
	return &Response{
		ID:            b.ID,
		UserID:        b.UserID,
		RoomID:        b.RoomID,
		HotelID:       b.HotelID,
		FromDate:      b.FromDate,
		ToDate:        b.ToDate,
		Nights:        nights,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		HotelName:     b.HotelName,
		HotelLocation: b.HotelLocation,
		RoomTitle:     b.RoomTitle,
		CoverImage:    b.CoverImage,
		UserName:      b.UserName,
		HotelOwnerID:  b.HotelOwnerID,
		CreatedAt:     b.CreatedAt,
	}
}
