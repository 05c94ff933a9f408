package features

import "testing"

func TestOversToBalls(t *testing.T) {
	tests := []struct {
		name  string
		overs float64
		want  int
	}{
		{"start of innings", 0.0, 0},
		{"mid over", 8.5, 53},
		{"third ball", 12.3, 75},
		{"final over", 19.5, 119},
		{"complete innings", 20.0, 120},
		{"whole overs only", 6.0, 36},
		// The tenths digit is used as-is even when it is not a valid
		// ball-within-over; this mirrors the historical behavior.
		{"inconsistent tenths digit", 8.7, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OversToBalls(tt.overs); got != tt.want {
				t.Errorf("OversToBalls(%v) = %d, want %d", tt.overs, got, tt.want)
			}
		})
	}
}

func TestBallsRemaining(t *testing.T) {
	tests := []struct {
		overs float64
		want  int
	}{
		{0.0, 120},
		{8.5, 67},
		{19.5, 1},
		{20.0, 0},
		{20.1, -1},
	}

	for _, tt := range tests {
		if got := BallsRemaining(tt.overs); got != tt.want {
			t.Errorf("BallsRemaining(%v) = %d, want %d", tt.overs, got, tt.want)
		}
	}
}

func TestParseOvers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer overs", "8", 8.0, false},
		{"one decimal", "8.5", 8.5, false},
		{"zero", "0.0", 0.0, false},
		{"two decimals rejected", "8.55", 0, true},
		{"negative rejected", "-1.2", 0, true},
		{"garbage rejected", "eight", 0, true},
		{"empty rejected", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOvers(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOvers(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOvers(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseOvers(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
