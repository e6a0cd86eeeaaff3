package schedule

import (
	"strings"
	"time"
)

// Weekday counts from Monday (0) to Sunday (6), the order schedule files use.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const alwaysOn = "0000-2400"

var dayAbbrev = map[string]Weekday{
	"mo": Monday,
	"tu": Tuesday,
	"we": Wednesday,
	"th": Thursday,
	"fr": Friday,
	"sa": Saturday,
	"su": Sunday,
}

// WeekdayOf converts a time to the Monday-based weekday, in UTC.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.UTC().Weekday()) + 6) % 7)
}

// TimeIsActive reports whether the UTC time of day of at falls inside spec,
// an "HHMM-HHMM" range. The range is half-open and wraps past midnight when
// the start is later than the end. An empty spec or "0000-2400" is always
// active; a malformed spec never is.
func TimeIsActive(spec string, at time.Time) bool {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == alwaysOn {
		return true
	}
	startSpec, endSpec, ok := strings.Cut(spec, "-")
	if !ok {
		return false
	}
	start, ok := parseHHMM(startSpec)
	if !ok {
		return false
	}
	end, ok := parseHHMM(endSpec)
	if !ok {
		return false
	}

	at = at.UTC()
	now := at.Hour()*60 + at.Minute()
	if start <= end {
		return start <= now && now < end
	}
	return now >= start || now < end
}

// parseHHMM returns minutes since midnight for a four-digit "HHMM" value.
// 2400 is accepted as the end of the day.
func parseHHMM(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[2]-'0')*10 + int(s[3]-'0')
	if m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, false
	}
	return h*60 + m, true
}

// DayIsActive reports whether wd is one of the days named by spec.
//
// Accepted forms: a range of two day tokens ("Mo-Fr", "6-2", wrapping over
// Sunday when needed), a run of digits with optional separators ("1234567",
// ".2.4.6."), or a single abbreviation ("Sa"). Digits count from 1 = Monday.
// An empty spec matches every day; anything unparseable matches none.
func DayIsActive(spec string, wd Weekday) bool {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return true
	}
	return daySet(spec)[wd]
}

func daySet(spec string) map[Weekday]bool {
	days := make(map[Weekday]bool, 7)

	if from, to, ok := strings.Cut(spec, "-"); ok {
		start, ok1 := parseDayToken(from)
		end, ok2 := parseDayToken(to)
		if !ok1 || !ok2 {
			return days
		}
		if start <= end {
			for d := start; d <= end; d++ {
				days[d] = true
			}
			return days
		}
		for d := start; d <= Sunday; d++ {
			days[d] = true
		}
		for d := Monday; d <= end; d++ {
			days[d] = true
		}
		return days
	}

	for _, r := range spec {
		if r >= '1' && r <= '7' {
			days[Weekday(r-'1')] = true
		}
	}
	if len(days) == 0 {
		if d, ok := parseDayToken(spec); ok {
			days[d] = true
		}
	}
	return days
}

func parseDayToken(tok string) (Weekday, bool) {
	tok = strings.TrimSpace(tok)
	if len(tok) == 1 && tok[0] >= '1' && tok[0] <= '7' {
		return Weekday(tok[0] - '1'), true
	}
	d, ok := dayAbbrev[strings.ToLower(tok)]
	return d, ok
}

// ActiveAt evaluates the record's own time and day window at the given instant.
// Columns missing from the schema are treated as unrestricted.
func (s *Schedule) ActiveAt(r Record, at time.Time) bool {
	return TimeIsActive(r.Value(s.timeCol), at) && DayIsActive(r.Value(s.daysCol), WeekdayOf(at))
}
