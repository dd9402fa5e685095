package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ClockTime - время суток в секундах от полуночи
type ClockTime int

const dateLayout = "2006-01-02"

// ParseClockTime разбирает "HH:MM" или "HH:MM:SS"; дробная часть секунд отбрасывается
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewClockTime(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

func NewClockTime(hour, minute, second int) ClockTime {
	return ClockTime(hour*3600 + minute*60 + second)
}

func (c ClockTime) Hour() int   { return int(c) / 3600 }
func (c ClockTime) Minute() int { return int(c) % 3600 / 60 }
func (c ClockTime) Second() int { return int(c) % 60 }

// String возвращает "HH:MM" (или "HH:MM:SS", если есть секунды)
func (c ClockTime) String() string {
	if c.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
	}
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTime, string(data))
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок time (postgres) и text (sqlite)
func (c *ClockTime) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseClockTime(v)
		if err != nil {
			return err
		}
		*c = parsed
	case []byte:
		parsed, err := ParseClockTime(string(v))
		if err != nil {
			return err
		}
		*c = parsed
	case time.Time:
		*c = NewClockTime(v.Hour(), v.Minute(), v.Second())
	default:
		return fmt.Errorf("unsupported time type %T", src)
	}
	return nil
}

// Value реализует driver.Valuer
func (c ClockTime) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second()), nil
}

// ParseDate разбирает дату "YYYY-MM-DD" в полночь UTC
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate - обратное к ParseDate
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseMonth разбирает "YYYY-MM" и возвращает полуинтервал [from, to) месяца
func ParseMonth(s string) (from, to time.Time, ok bool) {
	if len(s) != len("2006-01") {
		return time.Time{}, time.Time{}, false
	}
	from, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, from.AddDate(0, 1, 0), true
}
