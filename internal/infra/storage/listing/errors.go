package listing

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("listing.repository: hotel not found")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("listing.repository: room not found")

	// ErrEncode возвращается при ошибке подготовки документа
	ErrEncode = errors.New("listing.repository: failed to encode document")

	// ErrDecode возвращается при ошибке чтения документа
	ErrDecode = errors.New("listing.repository: failed to decode document")

	// ErrStore возвращается при ошибке документного хранилища
	ErrStore = errors.New("listing.repository: store error")
)
