// Package contact holds the portfolio contact form and its delivery.
package contact

import (
	"errors"
	"fmt"
)

// Field names one of the four contact form inputs.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the form fields in the order they are rendered.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// ErrUnknownField is returned when an edit names a field the form does not have.
var ErrUnknownField = errors.New("unknown form field")

// ParseField maps a form input name to a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldEmail, FieldSubject, FieldMessage:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Form holds the values of the contact form. Every field is required.
type Form struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Get returns the value of f.
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	}
	return ""
}

func (f *Form) set(field Field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	}
}

// IsZero reports whether every field is empty.
func (f Form) IsZero() bool {
	return f == Form{}
}

// Errors maps a field to its validation message. A missing key means the
// field passed validation.
type Errors map[Field]string

// Has reports whether field has an error.
func (e Errors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
