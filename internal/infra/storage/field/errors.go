package field

import "errors"

var (
	// ErrFieldNotFound возвращается, когда площадка не найдена
	ErrFieldNotFound = errors.New("field.repository: field not found")

	// ErrDuplicateScheduleRule возвращается, когда у площадки уже есть правило
	// на тот же день недели и время начала
	ErrDuplicateScheduleRule = errors.New("field.repository: duplicate schedule rule")

	// ErrQueryTimeout возвращается, когда запрос не уложился в отведенное время
	ErrQueryTimeout = errors.New("field.repository: query timeout")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("field.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("field.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("field.repository: failed to scan row")
)
