// Package ats scores resume text against a job description, combining role
// classification with TF-IDF keyword analysis into a 0-100 suitability score.
package ats

import "fmt"

// InvalidInputError reports a malformed scoring input. Unlike the analyzer
// layers, which degrade silently, scoring surfaces validation failures so the
// caller can map them to a client-facing error.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
