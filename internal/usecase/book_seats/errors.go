package book_seats

import "errors"

var (
	// ErrBusNotFound возвращается, когда автобусный рейс не найден
	ErrBusNotFound = errors.New("book_seats: bus not found")

	// ErrFlightNotFound возвращается, когда авиарейс не найден
	ErrFlightNotFound = errors.New("book_seats: flight not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("book_seats: user not found")

	// ErrUnknownSeat возвращается, когда выбранного места нет на рейсе
	ErrUnknownSeat = errors.New("book_seats: unknown seat")

	// ErrSeatSold возвращается, когда выбранное место уже продано
	ErrSeatSold = errors.New("book_seats: seat is already sold")

	// ErrTripDeparted возвращается, когда рейс уже отправился
	ErrTripDeparted = errors.New("book_seats: trip has already departed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_seats: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_seats: internal error")
)
