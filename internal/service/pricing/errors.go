package pricing

import "errors"

var (
	// ErrUnknownSeat возвращается, когда выбранного места нет в карте мест
	ErrUnknownSeat = errors.New("pricing: unknown seat")

	// ErrSeatSold возвращается, когда выбранное место уже продано
	ErrSeatSold = errors.New("pricing: seat is already sold")

	// ErrDuplicateSeat возвращается, когда место выбрано дважды
	ErrDuplicateSeat = errors.New("pricing: seat selected twice")

	// ErrEmptySelection возвращается, когда не выбрано ни одного места
	ErrEmptySelection = errors.New("pricing: no seats selected")
)
