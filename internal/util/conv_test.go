package util

import "testing"

func TestAnswerIndex(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		index  int
		wantOK bool
	}{
		{"json number", float64(2), 2, true},
		{"json zero", float64(0), 0, true},
		{"native int", 3, 3, true},
		{"fractional", float64(1.5), 0, false},
		{"nil", nil, 0, false},
		{"string digit", "2", 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := AnswerIndex(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && idx != tt.index {
				t.Errorf("index = %d, want %d", idx, tt.index)
			}
		})
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		correct int
		total   int
		want    int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{4, 5, 80},
		{2, 3, 67},
		{5, 6, 83},
		// half to even: 12.5 rounds down, 37.5 rounds up
		{1, 8, 12},
		{3, 8, 38},
	}

	for _, tt := range tests {
		if got := RoundPercent(tt.correct, tt.total); got != tt.want {
			t.Errorf("RoundPercent(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
