package check_availability

import "time"

// Request модель запроса проверки доступности номера
type Request struct {
	RoomID string    // ID номера
	From   time.Time // Дата заезда
	To     time.Time // Дата выезда
}

// Response модель ответа
type Response struct {
	RoomID    string
	From      time.Time
	To        time.Time
	Available bool
}
