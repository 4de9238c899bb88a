package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrNoCapacity возвращается, когда условное обновление занятости не прошло:
	// слот заполнен или отменён
	ErrNoCapacity = errors.New("slot.repository: slot has no free capacity")

	// ErrNotReserved возвращается при попытке освободить слот без активных броней
	ErrNotReserved = errors.New("slot.repository: slot has no active reservations")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
