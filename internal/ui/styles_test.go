package ui

import (
	"strings"
	"testing"
)

func TestFormatControl(t *testing.T) {
	tests := []struct {
		name string
		key  string
		desc string
	}{
		{
			name: "basic control",
			key:  "q",
			desc: "Quit",
		},
		{
			name: "longer key",
			key:  "Space",
			desc: "Pause the event feed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatControl(tt.key, tt.desc)
			// Check that it contains both key and description
			if !strings.Contains(got, tt.key) {
				t.Errorf("FormatControl() missing key %q", tt.key)
			}
			if !strings.Contains(got, tt.desc) {
				t.Errorf("FormatControl() missing description %q", tt.desc)
			}
		})
	}
}

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		name   string
		ok     bool
		status string
	}{
		{
			name:   "open status",
			ok:     true,
			status: "Window open",
		},
		{
			name:   "closed status",
			ok:     false,
			status: "Window closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatStatus(tt.ok, tt.status)

			// Should contain the status text
			if !strings.Contains(got, tt.status) {
				t.Errorf("FormatStatus() missing status text %q", tt.status)
			}

			// Should have different indicators
			if tt.ok && !strings.Contains(got, "●") {
				t.Errorf("FormatStatus() ok=true should contain filled circle")
			}
			if !tt.ok && !strings.Contains(got, "○") {
				t.Errorf("FormatStatus() ok=false should contain empty circle")
			}
		})
	}
}

func TestCreateSeparator(t *testing.T) {
	tests := []struct {
		name  string
		width int
		char  string
		want  string
	}{
		{
			name:  "default char",
			width: 5,
			char:  "",
			want:  "─────",
		},
		{
			name:  "custom char",
			width: 3,
			char:  "=",
			want:  "===",
		},
		{
			name:  "zero width falls back to default",
			width: 0,
			char:  "-",
			want:  strings.Repeat("-", 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateSeparator(tt.width, tt.char)
			if !strings.Contains(got, tt.want) {
				t.Errorf("CreateSeparator() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
