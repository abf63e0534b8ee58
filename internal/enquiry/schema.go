package enquiry

import (
	"regexp"
	"strings"
)

// Field normalizers and validators for the public enquiry form. All
// transforms are idempotent and run before their validators.

var (
	nameRe     = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)
	nonDigitRe = regexp.MustCompile(`[^0-9]`)
	scriptRe   = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	tagRe      = regexp.MustCompile(`<[^>]*>`)
)

var enquiryTypes = map[string]bool{
	"course":     true,
	"general":    true,
	"admission":  true,
	"fees":       true,
	"facilities": true,
	"other":      true,
}

// StripHTML removes script/style blocks with their content, then every
// remaining tag, then trims surrounding whitespace.
func StripHTML(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone drops every non-digit character.
func NormalizePhone(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

func validEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.Contains(domain, "@") {
		return false
	}
	return !strings.ContainsAny(s, " \t")
}

type FieldError struct {
	Path    string
	Message string
}

// CombineErrors joins field failures into the single client-facing
// message: "path: message; path: message".
func CombineErrors(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Path+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// ParseSubmission normalizes and validates a raw form body. All field
// failures are collected, not just the first. The returned Submission is
// only meaningful when the error slice is empty.
func ParseSubmission(req SubmitEnquiryRequest) (*Submission, []FieldError) {
	var errs []FieldError
	sub := &Submission{}

	sub.FirstName = parseName(req.FirstName, "first_name", &errs)
	sub.LastName = parseName(req.LastName, "last_name", &errs)

	sub.Email = NormalizeEmail(req.Email)
	switch {
	case sub.Email == "":
		errs = append(errs, FieldError{"email", "Required"})
	case len(sub.Email) > 254:
		errs = append(errs, FieldError{"email", "must be at most 254 characters"})
	case !validEmail(sub.Email):
		errs = append(errs, FieldError{"email", "Invalid email address"})
	}

	sub.Phone = NormalizePhone(req.Phone)
	if len(sub.Phone) != 10 {
		errs = append(errs, FieldError{"phone", "Phone must be exactly 10 digits"})
	}

	sub.EnquiryType = strings.TrimSpace(req.EnquiryType)
	if !enquiryTypes[sub.EnquiryType] {
		errs = append(errs, FieldError{"enquiry_type", "must be one of: course, general, admission, fees, facilities, other"})
	}

	if msg := StripHTML(req.Message); msg != "" {
		if len(msg) > 2000 {
			errs = append(errs, FieldError{"message", "must be at most 2000 characters"})
		} else {
			sub.Message = &msg
		}
	}

	// The course reference is required for course enquiries and ignored
	// for every other type: enquiry_type is authoritative.
	if sub.EnquiryType == "course" {
		sub.CourseID = strings.TrimSpace(req.CourseID)
		if sub.CourseID == "" {
			errs = append(errs, FieldError{"course_id", "Required for course enquiries"})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return sub, nil
}

func parseName(raw, path string, errs *[]FieldError) string {
	name := StripHTML(raw)
	switch {
	case name == "":
		*errs = append(*errs, FieldError{path, "Required"})
	case len(name) > 100:
		*errs = append(*errs, FieldError{path, "must be at most 100 characters"})
	case !nameRe.MatchString(name):
		*errs = append(*errs, FieldError{path, path + " must contain only letters and single spaces"})
	}
	return name
}
