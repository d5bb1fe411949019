package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrEncode возвращается при ошибке подготовки документа
	ErrEncode = errors.New("user.repository: failed to encode document")

	// ErrDecode возвращается при ошибке чтения документа
	ErrDecode = errors.New("user.repository: failed to decode document")

	// ErrStore возвращается при ошибке документного хранилища
	ErrStore = errors.New("user.repository: store error")
)
