package time

import (
	"testing"
	"time"
)

func TestFixedAndOrSystem(t *testing.T) {
	at := time.Date(2024, time.May, 3, 10, 0, 0, 0, time.UTC)
	c := Fixed(at)
	if !c.Now().Equal(at) {
		t.Fatalf("Fixed.Now() = %v, want %v", c.Now(), at)
	}
	if got := OrSystem(c).Now(); !got.Equal(at) {
		t.Fatalf("OrSystem should keep a non-nil clock, got %v", got)
	}
	if OrSystem(nil) == nil {
		t.Fatalf("OrSystem(nil) should fall back to System")
	}
}

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatalf("Ptr(zero) should be nil")
	}
	now := time.Now()
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatalf("Ptr(now) mismatch")
	}
}

func TestUTCStamp(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	at := time.Date(2023, time.January, 2, 13, 4, 5, 6_000_000, loc)
	if got := UTCStamp(at); got != "2023-01-02T12:04:05.006Z" {
		t.Fatalf("UTCStamp = %q", got)
	}
}
