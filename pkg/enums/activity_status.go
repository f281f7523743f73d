package enums

import "fmt"

// ActivityStatus is the lifecycle state shared by events and tastings. Wire
// values keep the Spanish labels the frontend already stores.
type ActivityStatus string

const (
	ActivityStatusPending    ActivityStatus = "Por iniciar"
	ActivityStatusInProgress ActivityStatus = "En proceso"
	ActivityStatusFinished   ActivityStatus = "Finalizado"
	ActivityStatusCancelled  ActivityStatus = "Cancelado"
)

var validActivityStatuses = []ActivityStatus{
	ActivityStatusPending,
	ActivityStatusInProgress,
	ActivityStatusFinished,
	ActivityStatusCancelled,
}

// IsValid checks whether the given status matches the canonical enum.
func (s ActivityStatus) IsValid() bool {
	for _, candidate := range validActivityStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further settlement.
func (s ActivityStatus) IsTerminal() bool {
	return s == ActivityStatusFinished || s == ActivityStatusCancelled
}

// ParseActivityStatus converts raw strings into ActivityStatus.
func ParseActivityStatus(value string) (ActivityStatus, error) {
	for _, candidate := range validActivityStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid activity status %q", value)
}
