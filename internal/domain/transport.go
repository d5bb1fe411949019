package domain

import (
	"fmt"
	"time"
)

// SeatStatus хранимый статус места ("selected" существует только в UI)
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatSold      SeatStatus = "sold"
)

// FareTier тариф перелёта
type FareTier string

const (
	FareBasic    FareTier = "basic"
	FarePlus     FareTier = "plus"
	FareBusiness FareTier = "business"
)

// ParseFareTier проверяет тариф, пустая строка означает basic
func ParseFareTier(s string) (FareTier, bool) {
	switch FareTier(s) {
	case "":
		return FareBasic, true
	case FareBasic, FarePlus, FareBusiness:
		return FareTier(s), true
	default:
		return "", false
	}
}

// SeatPosition положение места в ряду
type SeatPosition string

const (
	PositionWindow SeatPosition = "window"
	PositionAisle  SeatPosition = "aisle"
	PositionMiddle SeatPosition = "middle"
)

// Seat место в автобусе или самолёте
type Seat struct {
	ID     string
	Price  float64
	Status SeatStatus
	Deck   int
	Row    int
	Column int
}

// IsSold returns true if the seat is already sold
func (s *Seat) IsSold() bool {
	return s.Status == SeatSold
}

// Bus рейс автобуса с хранимой картой мест
type Bus struct {
	ID          string
	Name        string
	From        string
	To          string
	DepartureAt time.Time
	Fare        float64
	Decks       int
	Rows        int
	Columns     int
	Seats       []Seat
}

// Flight авиарейс, цены мест вычисляются по ряду и колонке
type Flight struct {
	ID           string
	FlightNumber string
	From         string
	To           string
	DepartureAt  time.Time
	Rows         int
	Columns      int
	SoldSeats    []string
}

// IsSeatSold проверяет, продано ли место рейса
func (f *Flight) IsSeatSold(seatID string) bool {
	for _, id := range f.SoldSeats {
		if id == seatID {
			return true
		}
	}
	return false
}

// FlightPriceTable ценовая сетка мест рейса
type FlightPriceTable struct {
	PremiumRowThreshold int
	PremiumPrice        float64
	WindowPrice         float64
	AislePrice          float64
	MiddlePrice         float64
	PlusFreeFromRow     int
}

// DefaultFlightPriceTable сетка по умолчанию
func DefaultFlightPriceTable() FlightPriceTable {
	return FlightPriceTable{
		PremiumRowThreshold: DefaultPremiumRowThreshold,
		PremiumPrice:        DefaultPremiumPrice,
		WindowPrice:         DefaultWindowPrice,
		AislePrice:          DefaultAislePrice,
		MiddlePrice:         DefaultMiddlePrice,
		PlusFreeFromRow:     DefaultPlusFreeFromRow,
	}
}

// ColumnLetter буква колонки: 0 -> A, 1 -> B, ...
func ColumnLetter(column int) string {
	return string(rune('A' + column))
}

// FlightSeatID идентификатор места рейса, например "12C"
// Ряды нумеруются с 1, колонки с 0.
func FlightSeatID(row, column int) string {
	return fmt.Sprintf("%d%s", row, ColumnLetter(column))
}

// BusSeatID идентификатор места автобуса, например "1-3B" (палуба-ряд-колонка)
func BusSeatID(deck, row, column int) string {
	return fmt.Sprintf("%d-%d%s", deck, row, ColumnLetter(column))
}

// ColumnPosition положение колонки в ряду из columns мест
// Крайние колонки у окна, две центральные у прохода, остальные посередине.
func ColumnPosition(column, columns int) SeatPosition {
	if column == 0 || column == columns-1 {
		return PositionWindow
	}
	if columns >= 4 && (column == columns/2-1 || column == columns/2) {
		return PositionAisle
	}
	return PositionMiddle
}
