// Package validation holds the pure field validators for survey submissions
// and account registration. Nothing here touches storage; callers receive the
// full list of violations in one pass.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-\s()]{11,15}$`)
)

// Violations collects every broken rule from one validation pass.
type Violations []string

func (v Violations) Error() string {
	return strings.Join(v, "; ")
}

// ValidEmail accepts the empty string; otherwise the value must contain a
// single @ followed by a dotted domain, with no whitespace.
func ValidEmail(e string) bool {
	if e == "" {
		return true
	}
	return emailRe.MatchString(e)
}

// ValidPhone accepts the empty string; otherwise 11-15 characters drawn from
// digits, +, -, space and parentheses.
func ValidPhone(p string) bool {
	if p == "" {
		return true
	}
	return phoneRe.MatchString(p)
}

// SurveyForm carries the raw, untrimmed field values as submitted. Ratings
// arrive as strings because they come from free-form inputs; a non-numeric
// value is a violation in its own right, not a transport error.
type SurveyForm struct {
	Name       string
	Email      string
	Phone      string
	Gender     string
	Location   string
	Quality    string
	Timeliness string
	Service    string
	Overall    string
	Comments   string
}

// Ratings holds the parsed rating values of a valid form.
type Ratings struct {
	Quality    int
	Timeliness int
	Service    int
	Overall    int
}

// CheckSurveyForm validates every field and returns the parsed ratings plus
// all violations found. The ratings are only meaningful when the violation
// list is empty.
func CheckSurveyForm(form SurveyForm) (Ratings, Violations) {
	var errs Violations
	var ratings Ratings

	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, "name is required")
	}
	if email := strings.TrimSpace(form.Email); !ValidEmail(email) {
		errs = append(errs, "email is invalid")
	}
	if phone := strings.TrimSpace(form.Phone); !ValidPhone(phone) {
		errs = append(errs, "phone number is invalid")
	}

	ratings.Quality = checkRating("quality", form.Quality, 5, &errs)
	ratings.Timeliness = checkRating("timeliness", form.Timeliness, 5, &errs)
	ratings.Service = checkRating("service", form.Service, 5, &errs)
	ratings.Overall = checkRating("overall", form.Overall, 10, &errs)

	return ratings, errs
}

func checkRating(field, raw string, max int, errs *Violations) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s rating must be a number", field))
		return 0
	}
	if value < 1 || value > max {
		*errs = append(*errs, fmt.Sprintf("%s rating must be between 1 and %d", field, max))
	}
	return value
}

// CheckRegistration validates a registration attempt. Username and password
// must both be at least six characters and the confirmation must match.
func CheckRegistration(fullName, username, password, confirm string) Violations {
	var errs Violations

	if strings.TrimSpace(fullName) == "" {
		errs = append(errs, "full name is required")
	}
	switch {
	case strings.TrimSpace(username) == "":
		errs = append(errs, "username is required")
	case len(username) < 6:
		errs = append(errs, "username must be at least 6 characters")
	}
	switch {
	case password == "":
		errs = append(errs, "password is required")
	case len(password) < 6:
		errs = append(errs, "password must be at least 6 characters")
	}
	if password != confirm {
		errs = append(errs, "passwords do not match")
	}

	return errs
}
