package reset

import "testing"

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"100", 100},
		{"250", 250},
		{" 75% ", 75},
		{"12.6", 13},
		{"", DefaultPercent},
		{"abc", DefaultPercent},
		{"0", DefaultPercent},
		{"-50", DefaultPercent},
		{"NaN", DefaultPercent},
		{"Inf", DefaultPercent},
	}
	for _, tt := range tests {
		if got := ParsePercent(tt.in); got != tt.want {
			t.Errorf("ParsePercent(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestOptions(t *testing.T) {
	if (Options{ScalePercent: -3}).Percent() != DefaultPercent {
		t.Error("negative percent not normalized")
	}
	if (Options{}).Any() {
		t.Error("zero options ask for work")
	}
	if !(Options{Replace: true}).Any() || (Options{Replace: true}).matrixWork() {
		t.Error("replace-only options misclassified")
	}
	got := Options{Skew: true, Rotate: true, Scale: true, ScalePercent: 80}.String()
	if want := "rotate,scale=80%,skew"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Options{}).String(); got != "none" {
		t.Errorf("String() = %q, want none", got)
	}
}
