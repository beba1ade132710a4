package price

import "github.com/m04kA/villa-booking-service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
