package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.RoomID == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.HotelID == "" {
		return fmt.Errorf("%w: hotelId is required", ErrInvalidInput)
	}

	if req.FromDate.IsZero() {
		return fmt.Errorf("%w: fromDate is required", ErrInvalidInput)
	}

	if req.ToDate.IsZero() {
		return fmt.Errorf("%w: toDate is required", ErrInvalidInput)
	}

	// Хотя бы одна ночь
	nights := domain.NightsBetween(req.FromDate, req.ToDate)
	if nights <= 0 {
		return fmt.Errorf("%w: toDate must be after fromDate", ErrInvalidInput)
	}

	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}

// validateDate проверяет, что дата заезда не в прошлом
func validateDate(fromDate, now time.Time) error {
	if domain.DayFloor(fromDate).Before(domain.DayFloor(now)) {
		return fmt.Errorf("%w: fromDate is in the past", ErrInvalidDate)
	}
	return nil
}

// validateListing проверяет принадлежность номера отелю и статус модерации
func validateListing(room *domain.Room, hotel *domain.Hotel) error {
	if room.HotelID != hotel.ID {
		return fmt.Errorf("%w: room %s does not belong to hotel %s", ErrRoomNotFound, room.ID, hotel.ID)
	}

	if hotel.Status != domain.ListingApproved {
		return fmt.Errorf("%w: hotel status is %s", ErrListingNotApproved, hotel.Status)
	}

	if room.Status != domain.ListingApproved {
		return fmt.Errorf("%w: room status is %s", ErrListingNotApproved, room.Status)
	}

	return nil
}
