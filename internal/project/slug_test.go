package project

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My Cool App!", "my-cool-app-"},
		{"checkout", "checkout"},
		{"Q3_Sprint-2", "q3_sprint-2"},
		{"a/b\\c", "a-b-c"},
		{"Café", "caf-"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slug(tt.name); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
