package seat_map

import "errors"

var (
	// ErrBusNotFound возвращается, когда автобусный рейс не найден
	ErrBusNotFound = errors.New("seat_map: bus not found")

	// ErrFlightNotFound возвращается, когда авиарейс не найден
	ErrFlightNotFound = errors.New("seat_map: flight not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("seat_map: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("seat_map: internal error")
)
