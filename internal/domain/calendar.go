package domain

// IsCalendarComplete решает, ставится ли в календаре отметка за день:
// рабочий день с отметкой ухода либо выходной хотя бы с одной позицией.
// Записи без вида дня и без времени, но с позициями, - выходные из
// старых данных.
func IsCalendarComplete(s DayState, itemCount int) bool {
	switch s.WorkType {
	case WorkWorking:
		return s.End != nil
	case WorkOff:
		return itemCount > 0
	default:
		return s.Start == nil && s.End == nil && itemCount > 0
	}
}
