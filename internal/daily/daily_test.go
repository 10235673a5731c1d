package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	got := DateKey(time.Date(2026, 3, 2, 5, 0, 0, 0, loc))
	if got != "2026-03-01" {
		t.Fatalf("DateKey = %s; want 2026-03-01", got)
	}
}

func TestSeedDeterministic(t *testing.T) {
	day := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)

	a1, a2 := Seed(day, "salt")
	b1, b2 := Seed(later, "salt")
	if a1 != b1 || a2 != b2 {
		t.Fatal("same day produced different seeds")
	}

	c1, c2 := Seed(day.Add(24*time.Hour), "salt")
	if a1 == c1 && a2 == c2 {
		t.Fatal("consecutive days share a seed")
	}
	d1, d2 := Seed(day, "other")
	if a1 == d1 && a2 == d2 {
		t.Fatal("different salts share a seed")
	}
}
