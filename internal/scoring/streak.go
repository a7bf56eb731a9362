package scoring

import "time"

// DayKey normalizes a timestamp to its calendar date in the given
// location, formatted as 2006-01-02. Activity dates are compared by this
// key so duplicate records on the same day collapse.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// Streak computes the current consecutive-day streak from a set of
// activity day keys, walking backward from today. Today itself may be
// absent without breaking the chain (a learner who was active through
// yesterday still holds the streak before acting today); any gap after
// that terminates the walk.
func Streak(days map[string]bool, today time.Time, loc *time.Location) int {
	if len(days) == 0 {
		return 0
	}
	count := 0
	for i := 0; ; i++ {
		key := DayKey(today.AddDate(0, 0, -i), loc)
		if days[key] {
			count++
			continue
		}
		if i == 0 {
			// day-zero exception: today not yet acted upon
			continue
		}
		break
	}
	return count
}
