package gate

import (
	"errors"
	"testing"
	"time"
)

func TestCheck(t *testing.T) {
	newYear := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.Local)
	midsummer := time.Date(2026, time.July, 15, 9, 0, 0, 0, time.Local)

	cases := []struct {
		name     string
		now      time.Time
		override string
		force    bool
		wantWarn bool
		wantErr  bool
	}{
		{"january first", newYear, "", false, false, false},
		{"january first with force", newYear, "", true, false, false},
		{"other day refused", midsummer, "", false, false, true},
		{"other day forced", midsummer, "", true, true, false},
		{"override to january first", midsummer, "2026-01-01", false, false, false},
		{"override to other day", newYear, "2026-07-15", false, false, true},
		{"override to other day forced", newYear, "2026-07-15", true, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			warn, err := Check(tc.now, tc.override, tc.force)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tc.wantErr)
			}
			if warn != tc.wantWarn {
				t.Errorf("Check() warn = %v, want %v", warn, tc.wantWarn)
			}
			if tc.wantErr && !errors.Is(err, ErrNotNewYear) {
				t.Errorf("Check() error = %v, want ErrNotNewYear", err)
			}
		})
	}
}

func TestCheckBadOverride(t *testing.T) {
	for _, override := range []string{"2026", "01-01", "2026/01/01", "not-a-date"} {
		if _, err := Check(time.Now(), override, true); err == nil {
			t.Errorf("Check with override %q: expected parse error", override)
		}
	}
}
