package listing

import "github.com/m04kA/SMC-TravelBooking/internal/domain"

// hotelRecord документ коллекции hotels
type hotelRecord struct {
	ID       string   `json:"id"`
	OwnerID  string   `json:"ownerId"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Images   []string `json:"images"`
	Status   string   `json:"status"`
}

func fromDomainHotel(h *domain.Hotel) *hotelRecord {
	return &hotelRecord{
		ID:       h.ID,
		OwnerID:  h.OwnerID,
		Name:     h.Name,
		Location: h.Location,
		Images:   h.Images,
		Status:   string(h.Status),
	}
}

func (r *hotelRecord) toDomain() *domain.Hotel {
	return &domain.Hotel{
		ID:       r.ID,
		OwnerID:  r.OwnerID,
		Name:     r.Name,
		Location: r.Location,
		Images:   r.Images,
		Status:   domain.ListingStatus(r.Status),
	}
}

// roomRecord документ коллекции rooms
type roomRecord struct {
	ID       string   `json:"id"`
	HotelID  string   `json:"hotelId"`
	Title    string   `json:"title"`
	Price    float64  `json:"price"`
	Capacity int      `json:"capacity"`
	Images   []string `json:"images"`
	Status   string   `json:"status"`
}

func fromDomainRoom(r *domain.Room) *roomRecord {
	return &roomRecord{
		ID:       r.ID,
		HotelID:  r.HotelID,
		Title:    r.Title,
		Price:    r.Price,
		Capacity: r.Capacity,
		Images:   r.Images,
		Status:   string(r.Status),
	}
}

func (r *roomRecord) toDomain() *domain.Room {
	return &domain.Room{
		ID:       r.ID,
		HotelID:  r.HotelID,
		Title:    r.Title,
		Price:    r.Price,
		Capacity: r.Capacity,
		Images:   r.Images,
		Status:   domain.ListingStatus(r.Status),
	}
}
