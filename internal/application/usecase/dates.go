package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/mobile-inventory/internal/domain"
)

// parseDay interpreta YYYY-MM-DD; vacío = día de now.
func parseDay(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, now.Location())
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// ParseOptionalDay como parseDay pero devuelve nil si s está vacío.
func ParseOptionalDay(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDay(s, time.Now())
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseDay expone parseDay a los handlers (vacío = hoy).
func ParseDay(s string) (time.Time, error) {
	return parseDay(s, time.Now())
}
