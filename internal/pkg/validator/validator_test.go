package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-15", "2000-02-29", "1999-12-31"}
	invalid := []string{"2024-13-01", "2024-01-32", "15-01-2024", "2024/01/15", "", "abc"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"active", "inactive"}
	if !IsInSlice("active", slice) {
		t.Error("IsInSlice(active) = false, want true")
	}
	if IsInSlice("retired", slice) {
		t.Error("IsInSlice(retired) = true, want false")
	}
	if IsInSlice("active", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}
	want := "name: name is required; date: date must be in YYYY-MM-DD format"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if m["name"] != "name is required" || m["date"] != "date must be in YYYY-MM-DD format" {
		t.Errorf("ToMap() = %v", m)
	}
}
