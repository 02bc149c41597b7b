package availability

import (
	"medbook-service/internal/pkg/utils"
	"time"
)

// TimeRange is a half-open wall-clock interval [Start, End) in minutes
// since midnight.
type TimeRange struct {
	Start int
	End   int
}

func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

func (r TimeRange) Contains(o TimeRange) bool {
	return r.Start <= o.Start && o.End <= r.End
}

func (r TimeRange) StartClock() string {
	return utils.FormatClock(r.Start)
}

func (r TimeRange) EndClock() string {
	return utils.FormatClock(r.End)
}

// WeeklyPlan holds at most one working window per weekday, indexed by
// time.Weekday.
type WeeklyPlan [7]*TimeRange

// ForWeekday returns the window for wd, if any.
func (wp WeeklyPlan) ForWeekday(wd time.Weekday) (TimeRange, bool) {
	if wd < time.Sunday || wd > time.Saturday || wp[wd] == nil {
		return TimeRange{}, false
	}
	return *wp[wd], true
}

// Result is the availability of a doctor on one date: the working window
// of that weekday plus the occupied sub-intervals ordered by start.
type Result struct {
	Date         time.Time
	Weekday      time.Weekday
	WorkingHours TimeRange
	Occupied     []TimeRange
}
