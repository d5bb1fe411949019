package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	listingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/listing"
	"github.com/m04kA/SMC-TravelBooking/pkg/ptr"
)

// UseCase use case проверки доступности номера на даты
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// CheckOverlap сообщает, пересекается ли диапазон [from, to) с подтверждёнными бронированиями номера
// Даты сравниваются с точностью до дня, касание границей пересечением не считается.
// Не имеет побочных эффектов; внутри транзакции читает через её контекст.
func (uc *UseCase) CheckOverlap(ctx context.Context, roomID string, from, to time.Time) (bool, error) {
	bookings, err := uc.bookingRepo.GetByRoom(ctx, roomID, ptr.Ptr(domain.StatusConfirmed))
	if err != nil {
		return false, fmt.Errorf("%w: failed to get room bookings: %w", ErrInternal, err)
	}

	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		if domain.RangesOverlap(from, to, b.FromDate, b.ToDate) {
			uc.logger.Info("CheckOverlap: room=%s range %s..%s overlaps booking id=%s",
				roomID, from.Format(domain.DateFormat), to.Format(domain.DateFormat), b.ID)
			return true, nil
		}
	}
	return false, nil
}

// Execute проверяет доступность существующего номера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%s, from=%s, to=%s",
		req.RoomID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.roomRepo.GetRoom(ctx, req.RoomID); err != nil {
		if errors.Is(err, listingRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	overlap, err := uc.CheckOverlap(ctx, req.RoomID, req.From, req.To)
	if err != nil {
		uc.logger.Error("CheckAvailability: %v", err)
		return nil, err
	}

	return &Response{
		RoomID:    req.RoomID,
		From:      domain.DayFloor(req.From),
		To:        domain.DayFloor(req.To),
		Available: !overlap,
	}, nil
}
