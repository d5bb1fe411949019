// Package pricing вычисляет цены мест автобусов и рейсов
// Все функции чистые и не обращаются к хранилищу.
package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// PriceForSelection сумма цен выбранных мест
// Неизвестные id не учитываются, пустой выбор стоит 0.
func PriceForSelection(seats []domain.Seat, selectedIDs []string) float64 {
	byID := indexSeats(seats)

	total := 0.0
	for _, id := range selectedIDs {
		if seat, ok := byID[id]; ok {
			total += seat.Price
		}
	}
	return total
}

// PriceForSelectionStrict сумма цен выбранных мест с проверкой выбора
// Используется при бронировании: неизвестное, проданное или повторное место
// является ошибкой.
func PriceForSelectionStrict(seats []domain.Seat, selectedIDs []string) (float64, error) {
	if len(selectedIDs) == 0 {
		return 0, ErrEmptySelection
	}

	byID := indexSeats(seats)
	seen := make(map[string]struct{}, len(selectedIDs))

	total := 0.0
	for _, id := range selectedIDs {
		if _, dup := seen[id]; dup {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateSeat, id)
		}
		seen[id] = struct{}{}

		seat, ok := byID[id]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownSeat, id)
		}
		if seat.IsSold() {
			return 0, fmt.Errorf("%w: %s", ErrSeatSold, id)
		}
		total += seat.Price
	}
	return total, nil
}

// UnknownSeats возвращает выбранные id, которых нет в карте мест
func UnknownSeats(seats []domain.Seat, selectedIDs []string) []string {
	byID := indexSeats(seats)

	unknown := make([]string, 0)
	for _, id := range selectedIDs {
		if _, ok := byID[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	return unknown
}

// FlightSeatPrice цена места рейса по ряду, колонке и тарифу
// Ряды нумеруются с 1, колонки с 0.
func FlightSeatPrice(row, column, columns int, tier domain.FareTier, table domain.FlightPriceTable) float64 {
	switch tier {
	case domain.FareBusiness:
		return 0
	case domain.FarePlus:
		if row >= table.PlusFreeFromRow {
			return 0
		}
	}

	if row < table.PremiumRowThreshold {
		return table.PremiumPrice
	}

	switch domain.ColumnPosition(column, columns) {
	case domain.PositionWindow:
		return table.WindowPrice
	case domain.PositionAisle:
		return table.AislePrice
	default:
		return table.MiddlePrice
	}
}

// FlightSeatMap строит карту мест рейса для тарифа
func FlightSeatMap(flight *domain.Flight, tier domain.FareTier, table domain.FlightPriceTable) []domain.Seat {
	seats := make([]domain.Seat, 0, flight.Rows*flight.Columns)
	for row := 1; row <= flight.Rows; row++ {
		for col := 0; col < flight.Columns; col++ {
			id := domain.FlightSeatID(row, col)

			status := domain.SeatAvailable
			if flight.IsSeatSold(id) {
				status = domain.SeatSold
			}

			seats = append(seats, domain.Seat{
				ID:     id,
				Price:  FlightSeatPrice(row, col, flight.Columns, tier, table),
				Status: status,
				Deck:   1,
				Row:    row,
				Column: col,
			})
		}
	}
	return seats
}

// BuildBusSeats генерирует места нового автобуса с единой ценой fare
// Палубы и ряды нумеруются с 1, колонки с 0.
func BuildBusSeats(fare float64, decks, rows, columns int) []domain.Seat {
	if decks <= 0 || rows <= 0 || columns <= 0 {
		return []domain.Seat{}
	}

	seats := make([]domain.Seat, 0, decks*rows*columns)
	for deck := 1; deck <= decks; deck++ {
		for row := 1; row <= rows; row++ {
			for col := 0; col < columns; col++ {
				seats = append(seats, domain.Seat{
					ID:     domain.BusSeatID(deck, row, col),
					Price:  fare,
					Status: domain.SeatAvailable,
					Deck:   deck,
					Row:    row,
					Column: col,
				})
			}
		}
	}
	return seats
}

// DeckOf возвращает палубу выбранных мест, если все они на одной палубе
func DeckOf(seats []domain.Seat, selectedIDs []string) *int {
	byID := indexSeats(seats)

	deck := 0
	for _, id := range selectedIDs {
		seat, ok := byID[id]
		if !ok {
			return nil
		}
		if deck != 0 && seat.Deck != deck {
			return nil
		}
		deck = seat.Deck
	}
	if deck == 0 {
		return nil
	}
	return &deck
}

func indexSeats(seats []domain.Seat) map[string]domain.Seat {
	byID := make(map[string]domain.Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}
	return byID
}
