package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// WorkState - вид дня: рабочий, выходной или ещё не определён.
// Флаг is_off и строка work_type в API выводятся из него.
type WorkState string

const (
	WorkUnknown WorkState = ""
	WorkWorking WorkState = "work"
	WorkOff     WorkState = "off"
)

// ParseWorkState нормализует вход ("  OFF " -> off). Всё, кроме off/work,
// означает отсутствие решения.
func ParseWorkState(s string) WorkState {
	switch WorkState(strings.ToLower(strings.TrimSpace(s))) {
	case WorkOff:
		return WorkOff
	case WorkWorking:
		return WorkWorking
	default:
		return WorkUnknown
	}
}

// IsOff - трёхзначное представление: nil, если вид дня не задан
func (w WorkState) IsOff() *bool {
	if w == WorkUnknown {
		return nil
	}
	off := w == WorkOff
	return &off
}

// Ptr возвращает строку work_type или nil для неопределённого дня
func (w WorkState) Ptr() *string {
	if w == WorkUnknown {
		return nil
	}
	s := string(w)
	return &s
}

// Scan реализует sql.Scanner
func (w *WorkState) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*w = WorkUnknown
	case string:
		*w = ParseWorkState(v)
	case []byte:
		*w = ParseWorkState(string(v))
	default:
		return fmt.Errorf("unsupported work_type type %T", src)
	}
	return nil
}

// Value реализует driver.Valuer; неопределённый день хранится как NULL
func (w WorkState) Value() (driver.Value, error) {
	if w == WorkUnknown {
		return nil, nil
	}
	return string(w), nil
}
