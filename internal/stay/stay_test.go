package stay

import (
	"testing"
)

func TestNights(t *testing.T) {
	nights, err := Nights("2025-08-15", "2025-08-22")
	if err != nil {
		t.Fatalf("Nights error: %v", err)
	}
	if nights != 7 {
		t.Fatalf("expected 7 nights, got %d", nights)
	}
}

func TestNightsInvertedRange(t *testing.T) {
	nights, err := Nights("2025-08-20", "2025-08-15")
	if err != nil {
		t.Fatalf("Nights error: %v", err)
	}
	if nights >= 0 {
		t.Fatalf("expected negative nights, got %d", nights)
	}
}

func TestNightsBadDate(t *testing.T) {
	if _, err := Nights("not-a-date", "2025-08-15"); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestSpansWeekend(t *testing.T) {
	// 2025-08-15 is a Friday.
	spans, err := SpansWeekend("2025-08-15", 2)
	if err != nil {
		t.Fatalf("SpansWeekend error: %v", err)
	}
	if !spans {
		t.Fatalf("expected friday checkin to span a weekend")
	}

	// 2025-08-18 is a Monday; two nights stay mon-wed.
	spans, err = SpansWeekend("2025-08-18", 2)
	if err != nil {
		t.Fatalf("SpansWeekend error: %v", err)
	}
	if spans {
		t.Fatalf("expected monday two-night stay to not span a weekend")
	}
}

func TestOverlaps(t *testing.T) {
	a, err := NewRange("2025-08-10", "2025-08-15")
	if err != nil {
		t.Fatalf("NewRange error: %v", err)
	}
	b, err := NewRange("2025-08-14", "2025-08-18")
	if err != nil {
		t.Fatalf("NewRange error: %v", err)
	}
	if !Overlaps(a, b) {
		t.Fatalf("expected ranges to overlap")
	}

	c, err := NewRange("2025-08-15", "2025-08-18")
	if err != nil {
		t.Fatalf("NewRange error: %v", err)
	}
	if Overlaps(a, c) {
		t.Fatalf("back-to-back stays must not overlap")
	}
}
