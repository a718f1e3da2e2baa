package contact

import (
	"reflect"
	"testing"
)

func validForm() Form {
	return Form{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Hi",
		Message: "Hello there, nice site!",
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Form)
		field Field
		want  string
	}{
		{"name empty", func(f *Form) { f.Name = "" }, FieldName, "Name is required"},
		{"name blank", func(f *Form) { f.Name = "   " }, FieldName, "Name is required"},
		{"email empty", func(f *Form) { f.Email = "\t" }, FieldEmail, "Email is required"},
		{"subject empty", func(f *Form) { f.Subject = "" }, FieldSubject, "Subject is required"},
		{"message empty", func(f *Form) { f.Message = " \n " }, FieldMessage, "Message is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.edit(&form)

			errs := Validate(form)
			if len(errs) != 1 {
				t.Fatalf("Validate() = %v, want exactly one error", errs)
			}
			if errs[tt.field] != tt.want {
				t.Errorf("errs[%s] = %q, want %q", tt.field, errs[tt.field], tt.want)
			}
		})
	}
}

func TestValidateEmptyForm(t *testing.T) {
	errs := Validate(Form{})
	want := Errors{
		FieldName:    "Name is required",
		FieldEmail:   "Email is required",
		FieldSubject: "Subject is required",
		FieldMessage: "Message is required",
	}
	if !reflect.DeepEqual(errs, want) {
		t.Errorf("Validate(Form{}) = %v, want %v", errs, want)
	}
}

func TestValidateEmailShape(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@b.co", true},
		{"jane.doe@mail.example.org", true},
		{"  a@b.co  ", true},
		{"a@b", false},
		{"a@b.", false},
		{"ab.co", false},
		{"@b.co", false},
		{"a@.co", false},
		{"a b@c.co", false},
		{"a@b c.co", false},
		{"a\vb@c.co", false},
		{"a\u00a0b@c.co", false},
		{"a@b\u2003c.co", false},
		{"a\u3000b@c.co", false},
		{"a@b.co\u2028x", false},
		{"\u00a0a@b.co\u3000", true},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			form := validForm()
			form.Email = tt.email

			errs := Validate(form)
			got, has := errs[FieldEmail]
			if tt.ok && has {
				t.Errorf("email %q rejected: %q", tt.email, got)
			}
			if !tt.ok && got != "Please enter a valid email address" {
				t.Errorf("email %q: got %q, want invalid address error", tt.email, got)
			}
		})
	}
}

func TestValidateMessageLength(t *testing.T) {
	form := Form{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "short"}

	errs := Validate(form)
	want := Errors{FieldMessage: "Message must be at least 10 characters long"}
	if !reflect.DeepEqual(errs, want) {
		t.Errorf("Validate() = %v, want %v", errs, want)
	}

	form.Message = "0123456789"
	if errs := Validate(form); len(errs) != 0 {
		t.Errorf("Validate() with 10-char message = %v, want none", errs)
	}

	// Surrounding whitespace does not count toward the length.
	form.Message = "   short    "
	if errs := Validate(form); errs[FieldMessage] != "Message must be at least 10 characters long" {
		t.Errorf("padded short message: got %v", errs)
	}
}

func TestValidateIsPure(t *testing.T) {
	forms := []Form{{}, validForm(), {Name: "x", Email: "bad", Message: "tiny"}}
	for _, f := range forms {
		first := Validate(f)
		second := Validate(f)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Validate(%+v) not idempotent: %v vs %v", f, first, second)
		}
	}
}
