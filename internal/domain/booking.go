package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingKind вертикаль бронирования
type BookingKind string

const (
	KindHotel  BookingKind = "hotel"
	KindBus    BookingKind = "bus"
	KindFlight BookingKind = "flight"
)

// Booking represents a hotel stay or a seat reservation
type Booking struct {
	ID     string
	UserID string
	Kind   BookingKind

	// Отель
	RoomID  string
	HotelID string

	// Автобус / рейс
	TripID   string
	SeatIDs  []string
	Deck     *int
	FareTier *FareTier

	FromDate   time.Time
	ToDate     time.Time
	TotalPrice float64
	Status     BookingStatus

	// Denormalized data for history
	HotelName     string
	HotelLocation string
	RoomTitle     string
	CoverImage    string
	UserName      string
	HotelOwnerID  string

	CreatedAt   time.Time
	CancelledAt *time.Time
}

// IsConfirmed returns true if the booking blocks its inventory
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// HasCheckInPassed сообщает, что день заезда (отправления) уже в прошлом относительно now
func (b *Booking) HasCheckInPassed(now time.Time) bool {
	return DayFloor(b.FromDate).Before(DayFloor(now))
}

// Nights количество ночей проживания
func (b *Booking) Nights() int {
	return NightsBetween(b.FromDate, b.ToDate)
}

// ParseBookingStatus проверяет строковый статус
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// RoomNight ключ резервирования номера на одну ночь
// Существует не более одного ключа на пару (номер, ночь).
type RoomNight struct {
	ID        string
	RoomID    string
	Night     time.Time
	BookingID string
}

// RoomNightID идентификатор ключа: roomId + "_" + YYYY-MM-DD
func RoomNightID(roomID string, night time.Time) string {
	return roomID + "_" + DayFloor(night).Format(DateFormat)
}
