package domain

import "errors"

var (
	// ErrStoreUnavailable - хранилище недоступно (сеть, 5xx, нет подключения).
	ErrStoreUnavailable = errors.New("database not available")
	// ErrStoreRejected - хранилище отклонило запрос (ограничение, неверный фильтр).
	ErrStoreRejected    = errors.New("store rejected the request")
	ErrPropertyNotFound = errors.New("property not found")
	ErrEmptyUpdate      = errors.New("update contains no fields")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid jwt token")
)
