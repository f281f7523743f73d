package enums

import "fmt"

// ActivityKind discriminates which schedulable entity owns a reservation link.
type ActivityKind string

const (
	ActivityKindEvent   ActivityKind = "event"
	ActivityKindTasting ActivityKind = "tasting"
)

var validActivityKinds = []ActivityKind{
	ActivityKindEvent,
	ActivityKindTasting,
}

// IsValid checks whether the given kind matches the canonical enum.
func (k ActivityKind) IsValid() bool {
	for _, candidate := range validActivityKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// DisplayName returns the label used on calendar entries and notifications.
func (k ActivityKind) DisplayName() string {
	switch k {
	case ActivityKindEvent:
		return "Evento"
	case ActivityKindTasting:
		return "Degustación"
	}
	return string(k)
}

// ParseActivityKind converts raw strings into ActivityKind.
func ParseActivityKind(value string) (ActivityKind, error) {
	for _, candidate := range validActivityKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid activity kind %q", value)
}
