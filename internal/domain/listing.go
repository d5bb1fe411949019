package domain

// ListingStatus статус модерации отеля или номера
type ListingStatus string

const (
	ListingPending  ListingStatus = "pending"
	ListingApproved ListingStatus = "approved"
	ListingRejected ListingStatus = "rejected"
)

// ParseListingStatus проверяет строковый статус модерации
func ParseListingStatus(s string) (ListingStatus, bool) {
	switch ListingStatus(s) {
	case ListingPending, ListingApproved, ListingRejected:
		return ListingStatus(s), true
	default:
		return "", false
	}
}

// Hotel отель, которым управляет владелец
type Hotel struct {
	ID       string
	OwnerID  string
	Name     string
	Location string
	Images   []string
	Status   ListingStatus
}

// CoverImage первая картинка отеля, если есть
func (h *Hotel) CoverImage() string {
	if len(h.Images) == 0 {
		return ""
	}
	return h.Images[0]
}

// Room номер отеля, Price указана за ночь
type Room struct {
	ID       string
	HotelID  string
	Title    string
	Price    float64
	Capacity int
	Images   []string
	Status   ListingStatus
}

// CoverImage первая картинка номера, если есть
func (r *Room) CoverImage() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}

// UserRole роль пользователя
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleOwner UserRole = "owner"
	RoleAdmin UserRole = "admin"
)

// User пользователь системы
type User struct {
	ID    string
	Name  string
	Email string
	Role  UserRole
}

// IsAdmin returns true for administrators
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanManageListings returns true for hotel owners and administrators
func (u *User) CanManageListings() bool {
	return u != nil && (u.Role == RoleOwner || u.Role == RoleAdmin)
}
