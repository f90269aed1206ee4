package service

import (
	"net/mail"
	"strings"

	"github.com/coastalops/launchtours/internal/repository"
)

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

func isValidLaunchStatus(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	switch s {
	case "scheduled", "scrubbed", "launched":
		return true
	default:
		return false
	}
}

func isValidTripStatus(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	switch s {
	case "open", "departed", "cancelled":
		return true
	default:
		return false
	}
}

func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	return err == nil && addr.Address == strings.TrimSpace(s)
}

// validName bounds a human-entered name to a sane length after trimming.
func validName(name string, min, max int, field string, ferrs *[]FieldError) string {
	name = strings.TrimSpace(name)
	if name == "" {
		*ferrs = append(*ferrs, FieldError{Field: field, Message: "must not be empty"})
		return name
	}
	if ln := len([]rune(name)); ln < min || ln > max {
		*ferrs = append(*ferrs, FieldError{Field: field, Message: "invalid length"})
	}
	return name
}
