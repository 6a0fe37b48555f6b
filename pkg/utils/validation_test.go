package utils

import "testing"

type moviePatch struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	ReleaseDate *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,min=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }
	intPtr := func(n int) *int { return &n }

	t.Run("valid struct yields nil", func(t *testing.T) {
		if errs := ValidateStruct(moviePatch{Title: strPtr("Inception")}); errs != nil {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("error keys use the json tag", func(t *testing.T) {
		errs := ValidateStruct(moviePatch{
			ReleaseDate: strPtr("July 2010"),
			Duration:    intPtr(-1),
		})
		if len(errs) != 2 {
			t.Fatalf("expected 2 errors, got %v", errs)
		}
		for _, key := range []string{"release_date", "duration"} {
			if _, ok := errs[key]; !ok {
				t.Fatalf("expected snake_case key %q, got %v", key, errs)
			}
		}
		if _, ok := errs["ReleaseDate"]; ok {
			t.Fatalf("expected no Go field name keys, got %v", errs)
		}
	})

	t.Run("empty title fails min", func(t *testing.T) {
		errs := ValidateStruct(moviePatch{Title: strPtr("")})
		if errs["title"] != "Minimum is 1" {
			t.Fatalf("expected title min error, got %v", errs)
		}
	})
}
