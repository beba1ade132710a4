package domain

// Форматы дат
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// AllZonesLabel значение фильтра зоны "все зоны" (так его присылает форма поиска)
const AllZonesLabel = "전체"

// Доплата за гостя сверх стандартной вместимости (за весь срок проживания)
const (
	FeePerInfant  int64 = 10000
	FeePerChild   int64 = 10000
	FeePerStudent int64 = 20000
	FeePerAdult   int64 = 30000

	// FreeInfants первые младенцы всегда бесплатны, даже сверх стандартной вместимости
	FreeInfants = 2
)

// Бизнес-ограничения
const (
	MaxCustomerRequestLength = 1000
	MaxUploadSizeBytes       = 5 << 20 // 5MB
)

// Номер бронирования
const (
	ReservationNumberPrefix   = "S"
	ReservationNumberAttempts = 20
)

// InactiveStatuses статусы, не занимающие номер
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}
