package scale

import (
	"fmt"
	"time"
)

// Layout is the fixed timestamp format assets are stamped with.
const Layout = "2006-01-02 15:04:05"

// ForCreatedAt maps an asset's creation timestamp to its display scale. The
// scale starts at 1 and loses 0.1 per whole elapsed day, floored at 0 from
// day 10 on. Partial days within the first 24 hours count as zero days.
func ForCreatedAt(createdAt string, now time.Time) (float64, error) {
	created, err := time.ParseInLocation(Layout, createdAt, now.Location())
	if err != nil {
		return 0, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}

	days := int(now.Sub(created).Hours() / 24)
	value := 1 - 0.1*float64(days)
	if value < 0 {
		return 0, nil
	}
	return value, nil
}
