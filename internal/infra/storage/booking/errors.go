package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrNightNotFound возвращается, когда ключ ночи не найден
	ErrNightNotFound = errors.New("booking.repository: room night not found")

	// ErrNightTaken возвращается, когда ключ ночи уже существует
	ErrNightTaken = errors.New("booking.repository: room night already claimed")

	// ErrEncode возвращается при ошибке подготовки документа
	ErrEncode = errors.New("booking.repository: failed to encode document")

	// ErrDecode возвращается при ошибке чтения документа
	ErrDecode = errors.New("booking.repository: failed to decode document")

	// ErrStore возвращается при ошибке документного хранилища
	ErrStore = errors.New("booking.repository: store error")
)
