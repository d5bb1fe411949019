package seed

import (
	"context"
	"fmt"
)

// UseCase начальное заполнение пустого хранилища демо-данными
type UseCase struct {
	listingRepo   ListingRepository
	transportRepo TransportRepository
	userRepo      UserRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	listingRepo ListingRepository,
	transportRepo TransportRepository,
	userRepo UserRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		listingRepo:   listingRepo,
		transportRepo: transportRepo,
		userRepo:      userRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// SeedIfEmpty заполняет хранилище, если в нём нет ни одного отеля
// Документы пишутся с фиксированными ID, поэтому повторный запуск ничего не дублирует.
// Возвращает true, если данные были записаны.
func (uc *UseCase) SeedIfEmpty(ctx context.Context) (bool, error) {
	count, err := uc.listingRepo.CountHotels(ctx)
	if err != nil {
		uc.logger.Error("SeedIfEmpty: failed to count hotels: %v", err)
		return false, fmt.Errorf("%w: failed to count hotels: %w", ErrInternal, err)
	}
	if count > 0 {
		uc.logger.Info("SeedIfEmpty: store already has %d hotels, skipping", count)
		return false, nil
	}

	now := uc.timeProvider.Now().UTC()

	for _, u := range users() {
		if err := uc.userRepo.Save(ctx, u); err != nil {
			uc.logger.Error("SeedIfEmpty: failed to save user id=%s: %v", u.ID, err)
			return false, fmt.Errorf("%w: failed to save user: %w", ErrInternal, err)
		}
	}

	rooms := 0
	for _, h := range hotels() {
		if _, err := uc.listingRepo.CreateHotel(ctx, h.hotel); err != nil {
			uc.logger.Error("SeedIfEmpty: failed to create hotel id=%s: %v", h.hotel.ID, err)
			return false, fmt.Errorf("%w: failed to create hotel: %w", ErrInternal, err)
		}
		for _, r := range h.rooms {
			r.HotelID = h.hotel.ID
			if _, err := uc.listingRepo.CreateRoom(ctx, r); err != nil {
				uc.logger.Error("SeedIfEmpty: failed to create room id=%s: %v", r.ID, err)
				return false, fmt.Errorf("%w: failed to create room: %w", ErrInternal, err)
			}
			rooms++
		}
	}

	for _, b := range buses(now) {
		if _, err := uc.transportRepo.CreateBus(ctx, b); err != nil {
			uc.logger.Error("SeedIfEmpty: failed to create bus id=%s: %v", b.ID, err)
			return false, fmt.Errorf("%w: failed to create bus: %w", ErrInternal, err)
		}
	}

	for _, f := range flights(now) {
		if _, err := uc.transportRepo.CreateFlight(ctx, f); err != nil {
			uc.logger.Error("SeedIfEmpty: failed to create flight id=%s: %v", f.ID, err)
			return false, fmt.Errorf("%w: failed to create flight: %w", ErrInternal, err)
		}
	}

	uc.logger.Info("SeedIfEmpty: seeded %d users, %d hotels, %d rooms, %d buses, %d flights",
		len(users()), len(hotels()), rooms, len(buses(now)), len(flights(now)))
	return true, nil
}
