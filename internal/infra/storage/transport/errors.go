package transport

import "errors"

var (
	// ErrBusNotFound возвращается, когда автобусный рейс не найден
	ErrBusNotFound = errors.New("transport.repository: bus not found")

	// ErrFlightNotFound возвращается, когда авиарейс не найден
	ErrFlightNotFound = errors.New("transport.repository: flight not found")

	// ErrEncode возвращается при ошибке подготовки документа
	ErrEncode = errors.New("transport.repository: failed to encode document")

	// ErrDecode возвращается при ошибке чтения документа
	ErrDecode = errors.New("transport.repository: failed to decode document")

	// ErrStore возвращается при ошибке документного хранилища
	ErrStore = errors.New("transport.repository: store error")
)
