package services

import (
	"fmt"
	"strings"
	"time"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
)

var titleSlugReplacer = strings.NewReplacer(" ", "-", "/", "-", "\\", "-")

// ExportFileName builds the attachment name for one run. The source title is
// upper-cased with separators mapped to dashes, and the timestamp carries
// nanosecond resolution so two concurrent runs of the same schedule never
// collide on a name.
func ExportFileName(scheduleID kernel.UUID, sourceTitle string, recurrence schedule.Recurrence, at time.Time) string {
	slug := titleSlugReplacer.Replace(strings.ToUpper(sourceTitle))
	return fmt.Sprintf("report-%s-%s-%s-%s-%d.csv",
		scheduleID, slug, recurrence, at.Format("2006-01-02"), at.UnixNano())
}
