package defaults

import "errors"

var (
	// ErrDefaultsNotFound возвращается, когда у компании нет сохранённых настроек генерации
	ErrDefaultsNotFound = errors.New("defaults.repository: company defaults not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("defaults.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("defaults.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("defaults.repository: failed to scan row")
)
