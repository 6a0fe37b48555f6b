package request

import "time"

// MovieRequest is the untyped create payload. Fields stay `any` so that
// clients sending numbers as strings (or vice versa) get a field error
// back instead of a decode failure.
type MovieRequest struct {
	Title       any `json:"title"`
	Description any `json:"description"`
	ReleaseDate any `json:"release_date"`
	Duration    any `json:"duration"`
	Poster      any `json:"poster"`
}

// MovieFields is the checked, typed field set produced by Validate.
type MovieFields struct {
	Title       string
	Description *string
	ReleaseDate *time.Time
	Duration    *int
	Poster      *string
}

// Validate checks the payload and collects every field error instead of
// stopping at the first one.
func (r *MovieRequest) Validate() (*MovieFields, map[string]string) {
	errors := make(map[string]string)
	fields := &MovieFields{}

	if title, ok := asString(r.Title); ok && title != "" {
		fields.Title = title
	} else {
		errors["title"] = "Title is required"
	}

	if present(r.Description) {
		if desc, ok := asString(r.Description); ok && desc != "" {
			fields.Description = &desc
		}
	}

	if present(r.Poster) {
		if poster, ok := asString(r.Poster); ok && poster != "" {
			fields.Poster = &poster
		}
	}

	if present(r.Duration) {
		if duration, ok := asInt(r.Duration); ok {
			if duration < 0 {
				errors["duration"] = "Duration must be a positive number"
			} else {
				d := int(duration)
				fields.Duration = &d
			}
		} else {
			errors["duration"] = "Duration must be a valid integer"
		}
	}

	if present(r.ReleaseDate) {
		raw, _ := asString(r.ReleaseDate)
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			errors["release_date"] = "Release date must be in YYYY-MM-DD format"
		} else {
			fields.ReleaseDate = &date
		}
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return fields, nil
}

// MovieUpdateRequest is the typed partial patch for PUT: only fields
// present in the payload are applied.
type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	ReleaseDate *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,min=0"`
	Poster      *string `json:"poster,omitempty"`
}
