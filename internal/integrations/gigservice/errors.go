package gigservice

import "errors"

var (
	// ErrGigNotFound возвращается, когда гиг не найден
	ErrGigNotFound = errors.New("gig not found")

	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("company not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gigservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("gigservice client: invalid response")
)
