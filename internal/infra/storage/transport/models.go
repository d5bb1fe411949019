package transport

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

type seatRecord struct {
	ID     string  `json:"id"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
	Deck   int     `json:"deck"`
	Row    int     `json:"row"`
	Column int     `json:"column"`
}

// busRecord документ коллекции buses
type busRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	DepartureAt time.Time    `json:"departureAt"`
	Fare        float64      `json:"fare"`
	Decks       int          `json:"decks"`
	Rows        int          `json:"rows"`
	Columns     int          `json:"columns"`
	Seats       []seatRecord `json:"seats"`
}

// flightRecord документ коллекции flights
type flightRecord struct {
	ID           string    `json:"id"`
	FlightNumber string    `json:"flightNumber"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	DepartureAt  time.Time `json:"departureAt"`
	Rows         int       `json:"rows"`
	Columns      int       `json:"columns"`
	SoldSeats    []string  `json:"soldSeats"`
}

func fromDomainSeats(seats []domain.Seat) []seatRecord {
	out := make([]seatRecord, 0, len(seats))
	for _, s := range seats {
		out = append(out, seatRecord{
			ID:     s.ID,
			Price:  s.Price,
			Status: string(s.Status),
			Deck:   s.Deck,
			Row:    s.Row,
			Column: s.Column,
		})
	}
	return out
}

func toDomainSeats(seats []seatRecord) []domain.Seat {
	out := make([]domain.Seat, 0, len(seats))
	for _, s := range seats {
		out = append(out, domain.Seat{
			ID:     s.ID,
			Price:  s.Price,
			Status: domain.SeatStatus(s.Status),
			Deck:   s.Deck,
			Row:    s.Row,
			Column: s.Column,
		})
	}
	return out
}

func fromDomainBus(b *domain.Bus) *busRecord {
	return &busRecord{
		ID:          b.ID,
		Name:        b.Name,
		From:        b.From,
		To:          b.To,
		DepartureAt: b.DepartureAt,
		Fare:        b.Fare,
		Decks:       b.Decks,
		Rows:        b.Rows,
		Columns:     b.Columns,
		Seats:       fromDomainSeats(b.Seats),
	}
}

func (r *busRecord) toDomain() *domain.Bus {
	return &domain.Bus{
		ID:          r.ID,
		Name:        r.Name,
		From:        r.From,
		To:          r.To,
		DepartureAt: r.DepartureAt,
		Fare:        r.Fare,
		Decks:       r.Decks,
		Rows:        r.Rows,
		Columns:     r.Columns,
		Seats:       toDomainSeats(r.Seats),
	}
}

func fromDomainFlight(f *domain.Flight) *flightRecord {
	return &flightRecord{
		ID:           f.ID,
		FlightNumber: f.FlightNumber,
		From:         f.From,
		To:           f.To,
		DepartureAt:  f.DepartureAt,
		Rows:         f.Rows,
		Columns:      f.Columns,
		SoldSeats:    f.SoldSeats,
	}
}

func (r *flightRecord) toDomain() *domain.Flight {
	sold := r.SoldSeats
	if sold == nil {
		sold = []string{}
	}
	return &domain.Flight{
		ID:           r.ID,
		FlightNumber: r.FlightNumber,
		From:         r.From,
		To:           r.To,
		DepartureAt:  r.DepartureAt,
		Rows:         r.Rows,
		Columns:      r.Columns,
		SoldSeats:    sold,
	}
}
