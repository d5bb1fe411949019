package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден или не принадлежит отелю
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("create_booking: hotel not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrListingNotApproved возвращается, когда отель или номер не прошли модерацию
	ErrListingNotApproved = errors.New("create_booking: listing is not approved")

	// ErrOverlap возвращается, когда даты пересекаются с подтверждённым бронированием
	ErrOverlap = errors.New("create_booking: dates overlap an existing booking")

	// ErrInvalidDate возвращается, когда дата заезда в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
