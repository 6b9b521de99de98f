package subtitle

import (
	"errors"
	"testing"
	"time"
)

func TestDeltaApply(t *testing.T) {
	c := NewCue("", 5*time.Second, 7*time.Second, []string{"hi"})

	got, err := NoDelta.Apply(c)
	if err != nil {
		t.Fatalf("NoDelta.Apply failed: %v", err)
	}
	if got.Begin != c.Begin || got.End != c.End {
		t.Errorf("NoDelta changed the cue: %v", got)
	}

	got, err = AddDelta(10 * time.Second).Apply(c)
	if err != nil {
		t.Fatalf("AddDelta.Apply failed: %v", err)
	}
	if got.Begin != 15*time.Second || got.End != 17*time.Second {
		t.Errorf("AddDelta: begin=%v end=%v", got.Begin, got.End)
	}

	got, err = SubDelta(2 * time.Second).Apply(c)
	if err != nil {
		t.Fatalf("SubDelta.Apply failed: %v", err)
	}
	if got.Begin != 3*time.Second || got.End != 5*time.Second {
		t.Errorf("SubDelta: begin=%v end=%v", got.Begin, got.End)
	}
}

func TestDeltaApplyUnderflow(t *testing.T) {
	c := NewCue("", 5*time.Second, 7*time.Second, nil)

	_, err := SubDelta(6 * time.Second).Apply(c)
	if !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	c := NewCue("id", 1500*time.Millisecond, 3750*time.Millisecond, []string{"a", "b"})
	d := 96125 * time.Millisecond

	up, err := AddDelta(d).Apply(c)
	if err != nil {
		t.Fatal(err)
	}
	down, err := SubDelta(d).Apply(up)
	if err != nil {
		t.Fatal(err)
	}
	if down.Begin != c.Begin || down.End != c.End {
		t.Errorf("round trip drifted: begin=%v end=%v", down.Begin, down.End)
	}
}

func TestParseDelta(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration // shift applied to a cue beginning at 10 minutes
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "0", want: 0},
		{in: "+0", want: 0},
		{in: "+5", want: 5 * time.Second},
		{in: "-2.5", want: -2500 * time.Millisecond},
		{in: "+1:36.125", want: 96125 * time.Millisecond},
		{in: "-1:00", want: -time.Minute},
		{in: "+0.1255", want: 125 * time.Millisecond},
		{in: "5", wantErr: true},
		{in: "1:36", wantErr: true},
		{in: "+", wantErr: true},
		{in: "+.5", wantErr: true},
		{in: "+1:", wantErr: true},
		{in: "+x:40", wantErr: true},
		{in: "+1:3a.000", wantErr: true},
	}

	base := NewCue("", 10*time.Minute, 10*time.Minute, nil)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDelta(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDelta(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDelta(%q) failed: %v", tt.in, err)
			}
			got, err := d.Apply(base)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if shift := got.Begin - base.Begin; shift != tt.want {
				t.Errorf("ParseDelta(%q) shifts by %v, want %v", tt.in, shift, tt.want)
			}
		})
	}
}

func TestParseDeltaShiftFromZero(t *testing.T) {
	d, err := ParseDelta("+1:36.125")
	if err != nil {
		t.Fatal(err)
	}
	got, err := d.Apply(NewCue("", 0, time.Second, nil))
	if err != nil {
		t.Fatal(err)
	}
	if got.Begin != 96125*time.Millisecond {
		t.Errorf("begin = %v, want 1m36.125s", got.Begin)
	}
}
