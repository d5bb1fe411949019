package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-TravelBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID   string `json:"roomId"`
	HotelID  string `json:"hotelId"`
	FromDate string `json:"fromDate"` // "2025-01-10"
	ToDate   string `json:"toDate"`   // "2025-01-12"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	Kind          string  `json:"kind"`
	RoomID        string  `json:"roomId"`
	HotelID       string  `json:"hotelId"`
	FromDate      string  `json:"fromDate"`
	ToDate        string  `json:"toDate"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	HotelName     string  `json:"hotelName"`
	HotelLocation string  `json:"hotelLocation"`
	RoomTitle     string  `json:"roomTitle"`
	CoverImage    string  `json:"coverImage,omitempty"`
	UserName      string  `json:"userName"`
	HotelOwnerID  string  `json:"hotelOwnerId"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	from, err := domain.ParseDate(r.FromDate)
	if err != nil {
		return nil, err
	}

	to, err := domain.ParseDate(r.ToDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:   userID,
		RoomID:   r.RoomID,
		HotelID:  r.HotelID,
		FromDate: from,
		ToDate:   to,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		Kind:          string(domain.KindHotel),
		RoomID:        resp.RoomID,
		HotelID:       resp.HotelID,
		FromDate:      resp.FromDate.Format(domain.DateFormat),
		ToDate:        resp.ToDate.Format(domain.DateFormat),
		Nights:        resp.Nights,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
		HotelName:     resp.HotelName,
		HotelLocation: resp.HotelLocation,
		RoomTitle:     resp.RoomTitle,
		CoverImage:    resp.CoverImage,
		UserName:      resp.UserName,
		HotelOwnerID:  resp.HotelOwnerID,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
