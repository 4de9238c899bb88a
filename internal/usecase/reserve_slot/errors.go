package reserve_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("reserve_slot: slot not found")

	// ErrSlotCancelled возвращается при попытке забронировать отменённый слот
	ErrSlotCancelled = errors.New("reserve_slot: slot is cancelled")

	// ErrSlotFull возвращается, когда все места слота заняты
	ErrSlotFull = errors.New("reserve_slot: slot is fully booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_slot: internal error")
)
