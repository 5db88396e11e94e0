package pets

import (
	"errors"
	"testing"
)

func fidoAndRex() []Pet {
	return []Pet{
		{ID: "1", Name: "Fido", Age: "3"},
		{ID: "2", Name: "Rex", Age: "5", Description: "Muy juguetón"},
	}
}

func names(items []Pet) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{name: "zero criteria keeps all", c: Criteria{}, want: []string{"Fido", "Rex"}},
		{name: "search fi", c: Criteria{Search: "fi"}, want: []string{"Fido"}},
		{name: "search is case-insensitive", c: Criteria{Search: "REX"}, want: []string{"Rex"}},
		{name: "age 5", c: Criteria{Age: "5"}, want: []string{"Rex"}},
		{name: "age empty", c: Criteria{Age: ""}, want: []string{"Fido", "Rex"}},
		{name: "age is exact", c: Criteria{Age: "05"}, want: []string{}},
		{name: "description contains", c: Criteria{Description: "JUGUE"}, want: []string{"Rex"}},
		{name: "description filter skips missing description", c: Criteria{Description: "a"}, want: []string{}},
		{name: "combined AND", c: Criteria{Search: "r", Age: "3"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Apply(fidoAndRex(), tt.c))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v want %v", got, tt.want)
				}
			}
		})
	}
}

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name    string
		petName string
		age     string
		ok      bool
	}{
		{name: "valid", petName: "Milo", age: "2", ok: true},
		{name: "valid with spaces", petName: " Milo ", age: " 2 ", ok: true},
		{name: "fractional age", petName: "Milo", age: "0.5", ok: true},
		{name: "blank name", petName: "  ", age: "2"},
		{name: "blank age", petName: "Milo", age: " "},
		{name: "negative age", petName: "Milo", age: "-1"},
		{name: "zero age", petName: "Milo", age: "0"},
		{name: "non numeric age", petName: "Milo", age: "abc"},
		{name: "nan age", petName: "Milo", age: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFields(tt.petName, tt.age)
			if tt.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
