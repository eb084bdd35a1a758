package clinic

import (
	"regexp"
	"strings"
)

// DayHours is the opening hours for a single weekday.
type DayHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"` // cleaned display text, e.g. "8:00 AM - 6:00 PM"

	// OpensAt and ClosesAt are set only when Hours is a single parseable
	// clock range. Multi-range or free-form entries leave them empty.
	OpensAt  string `json:"opens_at,omitempty"`
	ClosesAt string `json:"closes_at,omitempty"`
}

// Schedule is the parsed weekly schedule of a clinic. A schedule with no
// entries is the "unstructured" sentinel: the raw text contained no
// recognizable day segments and callers must fall back to DefaultSchedule.
type Schedule struct {
	Entries []DayHours `json:"entries"`
}

// Structured reports whether the source text yielded any day entries.
func (s Schedule) Structured() bool {
	return len(s.Entries) > 0
}

// Lookup returns the cleaned hours for the given weekday name, if present.
func (s Schedule) Lookup(day string) (string, bool) {
	for _, e := range s.Entries {
		if e.Day == day {
			return e.Hours, true
		}
	}
	return "", false
}

var (
	dayPattern   = regexp.MustCompile(`(?i)(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\s*:\s*([^|]+)`)
	clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
	dashPattern  = regexp.MustCompile(`\s*-\s*`)
	spacePattern = regexp.MustCompile(`\s+`)
	rangePattern = regexp.MustCompile(`^(\d{1,2}:\d{2} (?:AM|PM)) - (\d{1,2}:\d{2} (?:AM|PM))$`)
)

// weekdayOrder canonicalizes day-name capitalization and fixes display order.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ParseSchedule extracts a weekly schedule from a free-text working-hours
// string containing zero or more "<Day>: <time ranges>" segments separated
// loosely by punctuation. Time text is cosmetically cleaned but never
// validated: garbage in produces cleaned garbage out, not an error. Input
// with no recognizable day tokens yields the unstructured sentinel.
func ParseSchedule(raw string) Schedule {
	if raw == "" {
		return Schedule{}
	}

	byDay := make(map[string]DayHours)
	for _, m := range dayPattern.FindAllStringSubmatch(raw, -1) {
		day := canonicalDay(m[1])
		hours := FormatTimeRanges(m[2])
		entry := DayHours{Day: day, Hours: hours}
		if rm := rangePattern.FindStringSubmatch(hours); rm != nil {
			entry.OpensAt = rm[1]
			entry.ClosesAt = rm[2]
		}
		// Last segment for a repeated day wins, matching equality on the key.
		byDay[day] = entry
	}

	var s Schedule
	for _, day := range weekdayOrder {
		if e, ok := byDay[day]; ok {
			s.Entries = append(s.Entries, e)
		}
	}
	return s
}

// FormatTimeRanges cleans a comma-separated list of time ranges: whitespace
// is collapsed, AM/PM markers are uppercased and spaced, and "-" separators
// are normalized to " - ". Empty input formats as "Closed".
func FormatTimeRanges(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Closed"
	}

	parts := strings.Split(raw, ",")
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = clockPattern.ReplaceAllStringFunc(p, func(tok string) string {
			sub := clockPattern.FindStringSubmatch(tok)
			return sub[1] + ":" + sub[2] + " " + strings.ToUpper(sub[3])
		})
		p = dashPattern.ReplaceAllString(p, " - ")
		p = spacePattern.ReplaceAllString(p, " ")
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return "Closed"
	}
	return strings.Join(cleaned, ", ")
}

func canonicalDay(day string) string {
	lower := strings.ToLower(day)
	for _, d := range weekdayOrder {
		if strings.ToLower(d) == lower {
			return d
		}
	}
	return day
}

// DefaultSchedule is the fixed weekly schedule displayed when a clinic has no
// parseable working-hours text.
func DefaultSchedule() Schedule {
	return Schedule{Entries: []DayHours{
		{Day: "Monday - Friday", Hours: "8:00 AM - 6:00 PM", OpensAt: "8:00 AM", ClosesAt: "6:00 PM"},
		{Day: "Saturday", Hours: "9:00 AM - 4:00 PM", OpensAt: "9:00 AM", ClosesAt: "4:00 PM"},
		{Day: "Sunday", Hours: "Emergency Only"},
	}}
}
