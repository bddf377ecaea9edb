package ingest

import (
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Service status", "Service status"},
		{"  Service   status  ", "Service status"},
		{"\uFEFFService status", "Service status"},
		{"Service status", "Service status"},
		{"Service​status", "Servicestatus"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		got := NormalizeHeader(c.input)
		if got != c.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestMapColumns_CaseInsensitive(t *testing.T) {
	header := []string{"service STATUS date", " Service status", "Product Brand"}
	expected := []string{"Service status date", "Service status", "Product brand"}

	got := MapColumns(header, expected)

	want := []int{0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MapColumns[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMapColumns_AbsentColumnSynthesized(t *testing.T) {
	header := []string{"Service status"}
	expected := []string{"Service status", "Service repair date"}

	got := MapColumns(header, expected)

	if got[0] != 0 {
		t.Errorf("present column mapped to %d, want 0", got[0])
	}
	if got[1] != -1 {
		t.Errorf("absent column mapped to %d, want -1", got[1])
	}
}

func TestMapColumns_FirstMatchWins(t *testing.T) {
	header := []string{"Service Status", "service status"}
	expected := []string{"Service status"}

	got := MapColumns(header, expected)

	if got[0] != 0 {
		t.Errorf("duplicate header mapped to %d, want first match 0", got[0])
	}
}
