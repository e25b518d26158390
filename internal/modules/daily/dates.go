package daily

import (
	"fmt"
	"time"
)

const civilDateLayout = "2006-01-02"

// DateResolver derives the parish civil date from wall-clock time using a
// fixed UTC offset. The chaplaincy serves one timezone, so a fixed offset
// is deliberate: no DST rules, no tzdata dependency.
type DateResolver struct {
	offset time.Duration
	now    func() time.Time
}

func NewDateResolver(offsetHours int) *DateResolver {
	return &DateResolver{
		offset: time.Duration(offsetHours) * time.Hour,
		now:    time.Now,
	}
}

// Today returns the current civil date as YYYY-MM-DD.
func (r *DateResolver) Today() string {
	return r.now().UTC().Add(r.offset).Format(civilDateLayout)
}

// ParseCivilDate validates a YYYY-MM-DD string and returns its calendar day.
func ParseCivilDate(date string) (time.Time, error) {
	t, err := time.Parse(civilDateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return t, nil
}

// ewtnDatePath formats a civil date for the EWTN readings URL (YYYY/MM/DD).
func ewtnDatePath(day time.Time) string {
	return day.Format("2006/01/02")
}

// usccbDatePath formats a civil date for the USCCB readings URL (MMDDYY).
func usccbDatePath(day time.Time) string {
	return day.Format("010206")
}
