package create_booking

import "time"

// Request модель запроса на создание бронирования номера
type Request struct {
	UserID   string    // ID пользователя
	RoomID   string    // ID номера
	HotelID  string    // ID отеля
	FromDate time.Time // Дата заезда
	ToDate   time.Time // Дата выезда
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string    // ID созданного бронирования
	UserID     string    // ID пользователя
	RoomID     string    // ID номера
	HotelID    string    // ID отеля
	FromDate   time.Time // Дата заезда (без времени)
	ToDate     time.Time // Дата выезда (без времени)
	Nights     int       // Количество ночей
	TotalPrice float64   // Стоимость за весь период
	Status     string    // Статус бронирования

	// Денормализованные данные
	HotelName     string
	HotelLocation string
	RoomTitle     string
	CoverImage    string
	UserName      string
	HotelOwnerID  string

	CreatedAt time.Time // Время создания
}
