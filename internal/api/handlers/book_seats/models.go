package book_seats

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	bookSeats "github.com/m04kA/SMC-TravelBooking/internal/usecase/book_seats"
)

// BookSeatsRequest HTTP модель запроса бронирования мест
type BookSeatsRequest struct {
	SeatIDs []string `json:"seatIds"`
	Tier    string   `json:"tier,omitempty"`
}

// SeatBookingResponse HTTP модель созданного бронирования мест
type SeatBookingResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Kind        string   `json:"kind"`
	TripID      string   `json:"tripId"`
	SeatIDs     []string `json:"seatIds"`
	Deck        *int     `json:"deck,omitempty"`
	FareTier    *string  `json:"fareTier,omitempty"`
	DepartureAt string   `json:"departureAt"`
	TotalPrice  float64  `json:"totalPrice"`
	Status      string   `json:"status"`
	TripName    string   `json:"tripName"`
	Route       string   `json:"route"`
	UserName    string   `json:"userName"`
	CreatedAt   string   `json:"createdAt"`
}

// ToBusRequest конвертирует HTTP запрос в запрос use case для автобуса
func (r *BookSeatsRequest) ToBusRequest(userID, busID string) *bookSeats.BusRequest {
	return &bookSeats.BusRequest{
		UserID:  userID,
		BusID:   busID,
		SeatIDs: r.SeatIDs,
	}
}

// ToFlightRequest конвертирует HTTP запрос в запрос use case для авиарейса
func (r *BookSeatsRequest) ToFlightRequest(userID, flightID string) *bookSeats.FlightRequest {
	return &bookSeats.FlightRequest{
		UserID:   userID,
		FlightID: flightID,
		SeatIDs:  r.SeatIDs,
		Tier:     domain.FareTier(r.Tier),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSeats.Response) *SeatBookingResponse {
	return &SeatBookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		Kind:        resp.Kind,
		TripID:      resp.TripID,
		SeatIDs:     resp.SeatIDs,
		Deck:        resp.Deck,
		FareTier:    resp.FareTier,
		DepartureAt: resp.DepartureAt.UTC().Format(time.RFC3339),
		TotalPrice:  resp.TotalPrice,
		Status:      resp.Status,
		TripName:    resp.TripName,
		Route:       resp.Route,
		UserName:    resp.UserName,
		CreatedAt:   resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
