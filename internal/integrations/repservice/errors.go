package repservice

import "errors"

var (
	// ErrRepNotFound возвращается, когда представитель не найден
	ErrRepNotFound = errors.New("rep not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("repservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("repservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что RepService недоступен и отчёты строятся без профилей агентов
	ErrServiceDegraded = errors.New("repservice unavailable: graceful degradation applied")
)
