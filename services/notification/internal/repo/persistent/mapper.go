package persistent

import (
	"strings"

	"itinera/services/notification/internal/model"
)

// ToDisplayName prefers the profile's full name over the handle.
func ToDisplayName(m *model.ActorModel) string {
	if m == nil {
		return ""
	}
	if name := strings.TrimSpace(m.FullName); name != "" {
		return name
	}
	return m.Username
}
