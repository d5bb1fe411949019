package models

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// Request модели

// CreateHotelRequest запрос на создание отеля
type CreateHotelRequest struct {
	UserID   string   `json:"-"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Images   []string `json:"images"`
}

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	UserID   string   `json:"-"`
	HotelID  string   `json:"-"`
	Title    string   `json:"title"`
	Price    float64  `json:"price"`
	Capacity int      `json:"capacity"`
	Images   []string `json:"images"`
}

// SetStatusRequest запрос на смену статуса модерации
type SetStatusRequest struct {
	UserID string `json:"-"`
	ID     string `json:"-"`
	Status string `json:"status"`
}

// ListHotelsRequest фильтры списка отелей
type ListHotelsRequest struct {
	Status  *string
	OwnerID *string
}

// CreateBusRequest запрос на создание автобусного рейса
type CreateBusRequest struct {
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	DepartureAt time.Time `json:"departureAt"`
	Fare        float64   `json:"fare"`
	Decks       int       `json:"decks"`
	Rows        int       `json:"rows"`
	Columns     int       `json:"columns"`
}

// CreateFlightRequest запрос на создание авиарейса
type CreateFlightRequest struct {
	UserID       string    `json:"-"`
	FlightNumber string    `json:"flightNumber"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	DepartureAt  time.Time `json:"departureAt"`
	Rows         int       `json:"rows"`
	Columns      int       `json:"columns"`
}

// Response модели

// HotelResponse данные отеля
type HotelResponse struct {
	ID       string   `json:"id"`
	OwnerID  string   `json:"ownerId"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Images   []string `json:"images"`
	Status   string   `json:"status"`
}

// RoomResponse данные номера
type RoomResponse struct {
	ID       string   `json:"id"`
	HotelID  string   `json:"hotelId"`
	Title    string   `json:"title"`
	Price    float64  `json:"price"`
	Capacity int      `json:"capacity"`
	Images   []string `json:"images"`
	Status   string   `json:"status"`
}

// TripResponse краткие данные автобусного рейса или авиарейса
type TripResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	DepartureAt time.Time `json:"departureAt"`
	Fare        *float64  `json:"fare,omitempty"`
	Decks       int       `json:"decks"`
	Rows        int       `json:"rows"`
	Columns     int       `json:"columns"`
	SeatsTotal  int       `json:"seatsTotal"`
	SeatsSold   int       `json:"seatsSold"`
}

// Методы конвертации

// FromDomainHotel конвертирует domain модель в DTO
func FromDomainHotel(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:       h.ID,
		OwnerID:  h.OwnerID,
		Name:     h.Name,
		Location: h.Location,
		Images:   nonNil(h.Images),
		Status:   string(h.Status),
	}
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:       r.ID,
		HotelID:  r.HotelID,
		Title:    r.Title,
		Price:    r.Price,
		Capacity: r.Capacity,
		Images:   nonNil(r.Images),
		Status:   string(r.Status),
	}
}

// FromDomainBus конвертирует автобусный рейс в DTO
func FromDomainBus(b *domain.Bus) TripResponse {
	sold := 0
	for i := range b.Seats {
		if b.Seats[i].IsSold() {
			sold++
		}
	}

	fare := b.Fare
	return TripResponse{
		ID:          b.ID,
		Kind:        string(domain.KindBus),
		Name:        b.Name,
		From:        b.From,
		To:          b.To,
		DepartureAt: b.DepartureAt,
		Fare:        &fare,
		Decks:       b.Decks,
		Rows:        b.Rows,
		Columns:     b.Columns,
		SeatsTotal:  len(b.Seats),
		SeatsSold:   sold,
	}
}

// FromDomainFlight конвертирует авиарейс в DTO
func FromDomainFlight(f *domain.Flight) TripResponse {
	return TripResponse{
		ID:          f.ID,
		Kind:        string(domain.KindFlight),
		Name:        f.FlightNumber,
		From:        f.From,
		To:          f.To,
		DepartureAt: f.DepartureAt,
		Decks:       1,
		Rows:        f.Rows,
		Columns:     f.Columns,
		SeatsTotal:  f.Rows * f.Columns,
		SeatsSold:   len(f.SoldSeats),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
