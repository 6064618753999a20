package validator

import (
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/l3blonde/grip-and-grin/internal/domain"
)

const (
	// MaxExcerptLength is the hard limit on article excerpts.
	MaxExcerptLength = 500

	minUsernameLength = 3
	minPasswordLength = 8
)

// Validator provides validation for use-case inputs. Fields are checked
// one at a time so the first offending field is the one reported.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ArticleInput is the user-supplied text portion of a create or update
// request. Callers trim the fields before validating.
type ArticleInput struct {
	Title   string
	Content string
	Excerpt string
}

// ValidateArticle checks the text fields of a create/update request in
// order: title, content, excerpt.
func (v *Validator) ValidateArticle(in ArticleInput) error {
	if err := validation.Validate(in.Title,
		validation.Required.Error("title is required"),
	); err != nil {
		return domain.NewValidationError("title", err.Error())
	}
	if err := validation.Validate(in.Content,
		validation.Required.Error("content is required"),
	); err != nil {
		return domain.NewValidationError("content", err.Error())
	}
	if err := validation.Validate(in.Excerpt,
		validation.Length(0, MaxExcerptLength).Error("excerpt must be 500 characters or less"),
	); err != nil {
		return domain.NewValidationError("excerpt", err.Error())
	}
	return nil
}

// ValidateRegistration checks a new account request.
func (v *Validator) ValidateRegistration(username, email, password string) error {
	if err := validation.Validate(username,
		validation.Required.Error("username is required"),
		validation.Length(minUsernameLength, 0).Error("username must be at least 3 characters long"),
	); err != nil {
		return domain.NewValidationError("username", err.Error())
	}
	if err := validation.Validate(email,
		validation.Required.Error("email is required"),
		is.Email.Error("invalid email address"),
	); err != nil {
		return domain.NewValidationError("email", err.Error())
	}
	if err := validation.Validate(password,
		validation.Required.Error("password is required"),
		validation.Length(minPasswordLength, 0).Error("password must be at least 8 characters long"),
		validation.By(passwordStrength),
	); err != nil {
		return domain.NewValidationError("password", err.Error())
	}
	return nil
}

// ValidateProfile checks a profile update. The password is not part of
// a profile edit, so only username and email rules apply.
func (v *Validator) ValidateProfile(username, email string) error {
	if err := validation.Validate(username,
		validation.Required.Error("username is required"),
		validation.Length(minUsernameLength, 0).Error("username must be at least 3 characters long"),
	); err != nil {
		return domain.NewValidationError("username", err.Error())
	}
	if err := validation.Validate(email,
		validation.Required.Error("email is required"),
		is.Email.Error("invalid email address"),
	); err != nil {
		return domain.NewValidationError("email", err.Error())
	}
	return nil
}

// passwordStrength requires at least one uppercase letter, one
// lowercase letter, and one digit.
func passwordStrength(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return validation.NewError(
			"weak_password",
			"password must contain at least one uppercase letter, one lowercase letter, and one number",
		)
	}
	return nil
}
