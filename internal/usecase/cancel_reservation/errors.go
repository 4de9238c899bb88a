package cancel_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrAlreadyCancelled возвращается при повторной отмене брони
	ErrAlreadyCancelled = errors.New("cancel_reservation: reservation already cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
