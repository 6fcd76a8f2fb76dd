package planner

import "testing"

func TestSlots_CoversFixedHalfHourDay(t *testing.T) {
	slots := Slots()

	if len(slots) != 28 {
		t.Fatalf("Expected 28 half-hour slots, got %d", len(slots))
	}
	if slots[0].Key() != "06:00" {
		t.Errorf("Expected first slot key 06:00, got %s", slots[0].Key())
	}
	if slots[len(slots)-1].Key() != "19:30" {
		t.Errorf("Expected last slot key 19:30, got %s", slots[len(slots)-1].Key())
	}

	for i := 1; i < len(slots); i++ {
		prev, err := parseKey(slots[i-1].Key())
		if err != nil {
			t.Fatalf("Slot %d has unparseable key %q: %v", i-1, slots[i-1].Key(), err)
		}
		cur, err := parseKey(slots[i].Key())
		if err != nil {
			t.Fatalf("Slot %d has unparseable key %q: %v", i, slots[i].Key(), err)
		}
		if cur-prev != 30 {
			t.Errorf("Expected slot %d to start 30 minutes after slot %d, got %d minutes", i, i-1, cur-prev)
		}
	}
}

func TestSlot_LabelUses12HourClockWithoutPadding(t *testing.T) {
	cases := []struct {
		minutes int
		label   string
	}{
		{6 * 60, "6:00"},
		{9*60 + 30, "9:30"},
		{12 * 60, "12:00"},
		{12*60 + 30, "12:30"},
		{13 * 60, "1:00"},
		{19*60 + 30, "7:30"},
	}

	for _, c := range cases {
		slot := Slot{minutes: c.minutes}
		if got := slot.Label(); got != c.label {
			t.Errorf("Slot at %d minutes: expected label %q, got %q", c.minutes, c.label, got)
		}
	}
}

func TestEndTime_AddsHalfHourBlocks(t *testing.T) {
	cases := []struct {
		start string
		span  int
		want  string
	}{
		{"08:00", 3, "09:30"},
		{"06:00", 0, "06:00"},
		{"09:15", 2, "10:15"},
		{"18:30", 1, "19:00"},
	}

	for _, c := range cases {
		got, err := EndTime(c.start, c.span)
		if err != nil {
			t.Errorf("EndTime(%q, %d) returned error: %v", c.start, c.span, err)
			continue
		}
		if got != c.want {
			t.Errorf("EndTime(%q, %d) = %q, want %q", c.start, c.span, got, c.want)
		}
	}
}

func TestEndTime_WrapsPastMidnight(t *testing.T) {
	got, err := EndTime("23:00", 4)
	if err != nil {
		t.Fatalf("EndTime returned error: %v", err)
	}
	if got != "01:00" {
		t.Errorf("Expected 23:00 + 4 blocks to wrap to 01:00, got %q", got)
	}

	got, err = EndTime("19:00", 12)
	if err != nil {
		t.Fatalf("EndTime returned error: %v", err)
	}
	if got != "01:00" {
		t.Errorf("Expected 19:00 + 12 blocks to wrap to 01:00, got %q", got)
	}
}

func TestEndTime_RejectsMalformedStart(t *testing.T) {
	for _, start := range []string{"", "junk", "25:00", "0800", "9am"} {
		if _, err := EndTime(start, 1); err == nil {
			t.Errorf("EndTime(%q, 1) succeeded, expected an error", start)
		}
	}
}
