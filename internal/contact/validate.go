package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	msgNameRequired    = "Name is required"
	msgEmailRequired   = "Email is required"
	msgEmailInvalid    = "Please enter a valid email address"
	msgSubjectRequired = "Subject is required"
	msgMessageRequired = "Message is required"
	msgMessageShort    = "Message must be at least 10 characters long"

	// MinMessageLength is the shortest accepted message, in characters.
	MinMessageLength = 10
)

// local@domain.tld. RE2's \s is ASCII only, so Validate also rejects any
// unicode.IsSpace rune before matching.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks every field of form and returns the messages for the
// fields that fail. The result is empty when the form can be sent.
func Validate(form Form) Errors {
	errs := Errors{}

	if strings.TrimSpace(form.Name) == "" {
		errs[FieldName] = msgNameRequired
	}

	email := strings.TrimSpace(form.Email)
	switch {
	case email == "":
		errs[FieldEmail] = msgEmailRequired
	case strings.IndexFunc(email, unicode.IsSpace) >= 0 || !emailPattern.MatchString(email):
		errs[FieldEmail] = msgEmailInvalid
	}

	if strings.TrimSpace(form.Subject) == "" {
		errs[FieldSubject] = msgSubjectRequired
	}

	message := strings.TrimSpace(form.Message)
	switch {
	case message == "":
		errs[FieldMessage] = msgMessageRequired
	case utf8.RuneCountInString(message) < MinMessageLength:
		errs[FieldMessage] = msgMessageShort
	}

	return errs
}
