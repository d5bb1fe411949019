package postgres

import "errors"

var (
	// ErrMigrate возвращается при ошибке применения схемы
	ErrMigrate = errors.New("docstore.postgres: migration failed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("docstore.postgres: failed to build query")

	// ErrListenerDisabled возвращается Subscribe, если не задан DSN для LISTEN
	ErrListenerDisabled = errors.New("docstore.postgres: listener dsn is not configured")
)
