package database

import "testing"

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name          string
		total, fields int
		missing       int
		want          float64
	}{
		{"empty table", 0, 5, 0, 0},
		{"fully complete", 100, 5, 0, 100},
		{"half missing", 10, 2, 10, 50},
		{"rounds to one decimal", 3, 5, 1, 93.3},
		{"everything missing", 4, 5, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionRate(tt.total, tt.fields, tt.missing); got != tt.want {
				t.Errorf("CompletionRate(%d, %d, %d) = %v, want %v",
					tt.total, tt.fields, tt.missing, got, tt.want)
			}
		})
	}
}
