package clinic

import (
	"reflect"
	"testing"
)

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{
			name: "two day segments separated by pipe",
			raw:  "Monday: 8:00 AM - 6:00 PM | Saturday: 9:00 AM - 4:00 PM",
			want: map[string]string{
				"Monday":   "8:00 AM - 6:00 PM",
				"Saturday": "9:00 AM - 4:00 PM",
			},
		},
		{
			name: "messy whitespace and case",
			raw:  "monday:   8:00am-6:00pm | FRIDAY: 9:00 AM  -  1:00 PM",
			want: map[string]string{
				"Monday": "8:00 AM - 6:00 PM",
				"Friday": "9:00 AM - 1:00 PM",
			},
		},
		{
			name: "multiple ranges for one day",
			raw:  "Tuesday: 8:00 AM - 12:00 PM, 1:30 PM - 6:00 PM",
			want: map[string]string{
				"Tuesday": "8:00 AM - 12:00 PM, 1:30 PM - 6:00 PM",
			},
		},
		{
			name: "garbage hours are cleaned not rejected",
			raw:  "Sunday: by appointment   only",
			want: map[string]string{
				"Sunday": "by appointment only",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ParseSchedule(tt.raw)
			if !s.Structured() {
				t.Fatalf("ParseSchedule(%q) yielded unstructured schedule", tt.raw)
			}
			got := make(map[string]string, len(s.Entries))
			for _, e := range s.Entries {
				got[e.Day] = e.Hours
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSchedule(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseScheduleUnstructured(t *testing.T) {
	for _, raw := range []string{"", "open most days", "Mon-Fri 9-5", "call us"} {
		if s := ParseSchedule(raw); s.Structured() {
			t.Errorf("ParseSchedule(%q) = %v, want unstructured sentinel", raw, s.Entries)
		}
	}
}

func TestParseScheduleOpensClosesAt(t *testing.T) {
	s := ParseSchedule("Monday: 8:00 AM - 6:00 PM")
	if len(s.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(s.Entries))
	}
	e := s.Entries[0]
	if e.OpensAt != "8:00 AM" || e.ClosesAt != "6:00 PM" {
		t.Errorf("opens/closes = %q/%q, want 8:00 AM/6:00 PM", e.OpensAt, e.ClosesAt)
	}

	// Multi-range entries carry display text only.
	s = ParseSchedule("Monday: 8:00 AM - 12:00 PM, 1:00 PM - 5:00 PM")
	e = s.Entries[0]
	if e.OpensAt != "" || e.ClosesAt != "" {
		t.Errorf("multi-range opens/closes = %q/%q, want empty", e.OpensAt, e.ClosesAt)
	}
}

func TestParseScheduleOrdersByWeekday(t *testing.T) {
	s := ParseSchedule("Friday: 9:00 AM - 1:00 PM | Monday: 8:00 AM - 6:00 PM")
	if len(s.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(s.Entries))
	}
	if s.Entries[0].Day != "Monday" || s.Entries[1].Day != "Friday" {
		t.Errorf("order = [%s %s], want [Monday Friday]", s.Entries[0].Day, s.Entries[1].Day)
	}
}

func TestFormatTimeRanges(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "Closed"},
		{"   ", "Closed"},
		{"8:00AM-6:00PM", "8:00 AM - 6:00 PM"},
		{"12:00 AM - 7:00 AM,8:30 AM - 12:00 AM", "12:00 AM - 7:00 AM, 8:30 AM - 12:00 AM"},
		{"9:00 am   -   4:00 pm", "9:00 AM - 4:00 PM"},
		{"nonsense   text", "nonsense text"},
	}
	for _, tt := range tests {
		if got := FormatTimeRanges(tt.raw); got != tt.want {
			t.Errorf("FormatTimeRanges(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule()
	if len(s.Entries) != 3 {
		t.Fatalf("default schedule has %d entries, want 3", len(s.Entries))
	}
	if got, ok := s.Lookup("Sunday"); !ok || got != "Emergency Only" {
		t.Errorf("Sunday = %q (ok=%v), want Emergency Only", got, ok)
	}
}
