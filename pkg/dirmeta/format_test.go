package dirmeta_test

import (
	"math"
	"testing"

	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		size float64
		want string
	}{
		{"zero", 0, "0.00 B"},
		{"bytes", 512, "512.00 B"},
		{"just below a kilobyte", 1023, "1023.00 B"},
		{"one kilobyte", 1024, "1.00 KB"},
		{"one and a half kilobytes", 1536, "1.50 KB"},
		{"one megabyte", 1024 * 1024, "1.00 MB"},
		{"one gigabyte", 1024 * 1024 * 1024, "1.00 GB"},
		{"one terabyte", math.Pow(1024, 4), "1.00 TB"},
		{"one petabyte", math.Pow(1024, 5), "1.00 PB"},
		{"one exabyte", math.Pow(1024, 6), "1.00 EB"},
		{"one zettabyte", math.Pow(1024, 7), "1.00 ZB"},
		{"one yobibyte reuses the last unit", math.Pow(1024, 8), "1.00 ZB"},
		{"far beyond the last unit", math.Pow(1024, 9), "1024.00 ZB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dirmeta.FormatSize(tt.size); got != tt.want {
				t.Errorf("FormatSize(%v) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}
