package month_overview

import "time"

// Request модель запроса календарной сетки на месяц
// GigID и CompanyID опциональны и сужают выборку слотов; Month - любой день
// нужного месяца, Selected подсвечивает одну дату в сетке
type Request struct {
	GigID     *int64
	CompanyID *int64
	Month     time.Time
	Selected  *time.Time
}

// Response календарная сетка месяца, строки - недели с понедельника
type Response struct {
	Month time.Time   // Первое число месяца
	Weeks [][]DayCell // Полные недели, включая хвосты соседних месяцев
}

// DayCell одна ячейка календарной сетки
type DayCell struct {
	Date          time.Time // Календарная дата ячейки
	InMonth       bool      // Принадлежит ли дата запрошенному месяцу
	ReservedSlots int       // Слоты с хотя бы одной активной бронью
	OpenSlots     int       // Слоты со свободными местами
	Selected      bool      // Совпадает ли дата с выбранной
}
