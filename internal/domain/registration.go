package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
)

var ErrInvalidRegistration = errors.New("invalid registration")

// Registration is an application to take part in the awards.
type Registration struct {
	Name      string
	Email     string
	Category  string
	Portfolio string
	About     string
}

// FieldError names the registration field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidRegistration }

// Validate checks every field and resolves Category against nominations. The
// category may be given as a nomination id, slug or title.
func (r Registration) Validate(nominations []Nomination) (Nomination, error) {
	var errs []error

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, &FieldError{Field: "name", Reason: "is required"})
	}

	if email := strings.TrimSpace(r.Email); email == "" {
		errs = append(errs, &FieldError{Field: "email", Reason: "is required"})
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errs = append(errs, &FieldError{Field: "email", Reason: fmt.Sprintf("%q is not an email address", email)})
	}

	nomination, found := r.nomination(nominations)
	switch {
	case strings.TrimSpace(r.Category) == "":
		errs = append(errs, &FieldError{Field: "category", Reason: "is required"})
	case !found:
		errs = append(errs, &FieldError{Field: "category", Reason: fmt.Sprintf("unknown nomination %q", r.Category)})
	}

	if portfolio := strings.TrimSpace(r.Portfolio); portfolio == "" {
		errs = append(errs, &FieldError{Field: "portfolio", Reason: "is required"})
	} else if !webURL(portfolio) {
		errs = append(errs, &FieldError{Field: "portfolio", Reason: fmt.Sprintf("%q is not an http(s) link", portfolio)})
	}

	if strings.TrimSpace(r.About) == "" {
		errs = append(errs, &FieldError{Field: "about", Reason: "is required"})
	}

	if len(errs) > 0 {
		return Nomination{}, errors.Join(errs...)
	}
	return nomination, nil
}

func (r Registration) nomination(nominations []Nomination) (Nomination, bool) {
	category := strings.TrimSpace(r.Category)
	if category == "" {
		return Nomination{}, false
	}
	if id, err := strconv.ParseInt(category, 10, 64); err == nil {
		return FindNomination(nominations, NominationID(id))
	}
	for _, nomination := range nominations {
		if strings.EqualFold(nomination.Slug, category) || strings.EqualFold(strings.TrimSpace(nomination.Title), category) {
			return nomination, true
		}
	}
	return Nomination{}, false
}

func webURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
