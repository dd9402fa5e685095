package domain

import "fmt"

// DayState - изменяемая часть записи, которой управляют отправки
type DayState struct {
	WorkType WorkState
	Start    *ClockTime
	End      *ClockTime
}

// SubmissionInput - поля одной отправки, влияющие на состояние дня.
// HasStart/HasEnd отражают наличие ключа в запросе, даже со значением null.
type SubmissionInput struct {
	WorkType     string
	ItemWorkType string

	HasStart bool
	Start    *ClockTime
	HasEnd   bool
	End      *ClockTime
}

// Transition - результат применения отправки
type Transition struct {
	Next    DayState
	Applied []string
	Ignored []string

	// WorkTypeIgnored - запрошенный вид дня не применён
	WorkTypeIgnored bool
}

func (t *Transition) apply(field, detail string) {
	t.Applied = append(t.Applied, fmt.Sprintf("%s: %s", field, detail))
}

func (t *Transition) ignore(field, reason string) {
	t.Ignored = append(t.Ignored, fmt.Sprintf("%s: %s", field, reason))
	if field == "work_type" {
		t.WorkTypeIgnored = true
	}
}

// RequestedWorkState выбирает вид дня из отправки: значение позиции work_type
// важнее значения верхнего уровня. WorkUnknown означает "решения нет".
func (in SubmissionInput) RequestedWorkState() WorkState {
	if ws := ParseWorkState(in.ItemWorkType); ws != WorkUnknown {
		return ws
	}
	return ParseWorkState(in.WorkType)
}

// ApplySubmission вычисляет следующее состояние дня. Функция чистая:
// сохранение результата - забота вызывающего. Ошибка означает, что вся
// отправка должна быть отклонена.
func ApplySubmission(cur DayState, in SubmissionInput) (Transition, error) {
	t := Transition{Next: cur, Applied: []string{}, Ignored: []string{}}
	requested := in.RequestedWorkState()

	if in.HasEnd && !in.HasStart && cur.Start == nil {
		return Transition{}, ErrCheckoutBeforeCheckin
	}

	// после отметки ухода день закрыт
	if cur.End != nil {
		if requested != WorkUnknown && requested != cur.WorkType {
			t.ignore("work_type", "already checked out")
		}
		if in.HasStart {
			t.ignore("work_start_time", "already checked out")
		}
		if in.HasEnd {
			t.ignore("work_end_time", "already checked out")
		}
		return t, nil
	}

	if requested != WorkUnknown && requested != cur.WorkType {
		if requested == WorkOff && cur.Start != nil {
			t.ignore("work_type", "cannot switch to off after check-in")
		} else {
			t.Next.WorkType = requested
			t.apply("work_type", string(requested))
		}
	}

	if t.Next.WorkType == WorkOff {
		if t.Next.Start != nil {
			t.Next.Start = nil
			t.apply("work_start_time", "cleared")
		}
		if t.Next.End != nil {
			t.Next.End = nil
			t.apply("work_end_time", "cleared")
		}
		if in.HasStart {
			t.ignore("work_start_time", "day off")
		}
		if in.HasEnd {
			t.ignore("work_end_time", "day off")
		}
		return t, nil
	}

	if in.HasStart {
		switch {
		case t.Next.Start != nil:
			t.ignore("work_start_time", "already registered")
		case in.Start == nil:
			t.ignore("work_start_time", "empty value")
		default:
			start := *in.Start
			t.Next.Start = &start
			t.apply("work_start_time", start.String())
		}
	}

	if in.HasEnd {
		switch {
		case in.End == nil:
			t.ignore("work_end_time", "empty value")
		case t.Next.Start == nil:
			return Transition{}, ErrCheckoutBeforeCheckin
		case *in.End < *t.Next.Start:
			return Transition{}, ErrEndBeforeStart
		default:
			end := *in.End
			t.Next.End = &end
			t.apply("work_end_time", end.String())
		}
	}

	return t, nil
}
