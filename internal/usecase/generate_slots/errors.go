package generate_slots

import "errors"

var (
	// ErrGigRequired возвращается, когда не указан гиг
	ErrGigRequired = errors.New("generate_slots: gig required")

	// ErrInvalidDateRange возвращается, когда конец диапазона раньше начала
	ErrInvalidDateRange = errors.New("generate_slots: end date must be after start date")

	// ErrInvalidHourRange возвращается, когда конец рабочего окна не позже начала
	ErrInvalidHourRange = errors.New("generate_slots: end hour must be after start hour")

	// ErrInvalidDuration возвращается при недопустимой длительности слота
	ErrInvalidDuration = errors.New("generate_slots: invalid slot duration")

	// ErrInvalidCapacity возвращается при недопустимой вместимости слота
	ErrInvalidCapacity = errors.New("generate_slots: invalid capacity")

	// ErrInvalidInput возвращается при прочих некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrGigNotFound возвращается, когда гиг не найден
	ErrGigNotFound = errors.New("generate_slots: gig not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
