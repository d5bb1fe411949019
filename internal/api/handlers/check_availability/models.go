package check_availability

import (
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	checkAvailability "github.com/m04kA/SMC-TravelBooking/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID    string `json:"roomId"`
	From      string `json:"from"`
	To        string `json:"to"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:    resp.RoomID,
		From:      resp.From.Format(domain.DateFormat),
		To:        resp.To.Format(domain.DateFormat),
		Available: resp.Available,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(roomID, fromStr, toStr string) (*checkAvailability.Request, error) {
	from, err := domain.ParseDate(fromStr)
	if err != nil {
		return nil, err
	}

	to, err := domain.ParseDate(toStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		RoomID: roomID,
		From:   from,
		To:     to,
	}, nil
}
