package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestRunValidSeed(t *testing.T) {
	path := writeSeed(t, "rooms.json", `[{"roomNumber":"101","price":100,"roomType":"SINGLE"}]`)
	if code := run([]string{path}); code != 0 {
		t.Fatalf("want exit code 0, got %d", code)
	}
}

func TestRunReportsBadSeed(t *testing.T) {
	good := writeSeed(t, "good.json", `[{"roomNumber":"101","price":100,"roomType":"SINGLE"}]`)
	bad := writeSeed(t, "bad.json", `[{"roomNumber":"102","price":-1,"roomType":"DOUBLE"}]`)
	if code := run([]string{good, bad}); code != 1 {
		t.Fatalf("want exit code 1, got %d", code)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"101", 12, "101"},
		{"penthouse-suite-east", 12, "penthouse..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
