package field

import "github.com/m04kA/SMC-ArenaBooking/pkg/dbmetrics"

// DBExecutor исполнитель запросов (*dbmetrics.DB или транзакция)
type DBExecutor = dbmetrics.DBExecutor
