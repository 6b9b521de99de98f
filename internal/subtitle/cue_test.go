package subtitle

import (
	"testing"
	"time"
)

func TestNewCueSwapsReversedTimes(t *testing.T) {
	c := NewCue("", 7*time.Second, 5*time.Second, []string{"late"})
	if c.Begin != 5*time.Second || c.End != 7*time.Second {
		t.Errorf("reversed times not swapped: begin=%v end=%v", c.Begin, c.End)
	}

	c = NewCue("", 5*time.Second, 7*time.Second, nil)
	if c.Begin != 5*time.Second || c.End != 7*time.Second {
		t.Errorf("ordered times changed: begin=%v end=%v", c.Begin, c.End)
	}
}

func TestRetainIdentifier(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"", ""},
		{"1", ""},
		{"0123456789", ""},
		{"intro", "intro"},
		{"chapter 1", "chapter 1"},
		{"42a", "42a"},
		{"48é", "48é"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := RetainIdentifier(tt.token); got != tt.want {
				t.Errorf("RetainIdentifier(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}
