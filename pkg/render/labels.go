package render

import (
	"strings"

	"github.com/saramhq/aegis/ent/renderjob"
)

// The store keeps lowercase enum values; the API and callbacks speak
// uppercase (QUEUED, VALIDATE_SCRIPT, ...).

func StatusLabel(status renderjob.Status) string {
	return strings.ToUpper(string(status))
}

func StepLabel(step renderjob.Step) string {
	return strings.ToUpper(string(step))
}
