package seed

import "errors"

// ErrInternal возвращается при ошибках записи начальных данных
var ErrInternal = errors.New("seed: internal error")
