package domain

// Status - производный статус дня, в базе не хранится
type Status string

const (
	StatusOff     Status = "off"
	StatusLeft    Status = "left"
	StatusArrived Status = "arrived"
	StatusNone    Status = "none"
)

var statusLabels = map[Status]string{
	StatusOff:     "休み",
	StatusLeft:    "退勤入力済",
	StatusArrived: "出勤入力済",
	StatusNone:    "-",
}

// DeriveStatus - единственное место вычисления статуса; используется списком,
// карточкой записи, сводкой и ответом на отправку.
func DeriveStatus(s DayState) Status {
	switch {
	case s.WorkType == WorkOff:
		return StatusOff
	case s.End != nil:
		return StatusLeft
	case s.Start != nil:
		return StatusArrived
	default:
		return StatusNone
	}
}

// Label возвращает подпись статуса для экрана
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return statusLabels[StatusNone]
}
