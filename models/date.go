package models

import "time"

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseDate разбирает календарную дату. Полные метки времени RFC 3339 тоже принимаются.
func ParseDate(s string) (time.Time, bool) {
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, true
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, true
	}
	return time.Time{}, false
}

func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
