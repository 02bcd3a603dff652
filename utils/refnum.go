package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewParcelNumber generates a unique parcel number, date-stamped for easy
// eyeballing on packing lists.
func NewParcelNumber(now time.Time) string {
	return fmt.Sprintf("PCL-%s-%s", now.Format("20060102"), randomSuffix())
}

// NewWorkOrderNumber generates a stage-prefixed work-order number with a
// random suffix, e.g. "CUT-WO-9F3A21B4".
func NewWorkOrderNumber(stage string) string {
	return fmt.Sprintf("%s-WO-%s", stagePrefix(stage), randomSuffix())
}

// stagePrefix condenses a stage name to a three-letter prefix.
func stagePrefix(stage string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(stage))
	if cleaned == "" {
		return "GEN"
	}
	if len(cleaned) > 3 {
		cleaned = cleaned[:3]
	}
	return cleaned
}

func randomSuffix() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
