package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name     string
		input    RegisterInput
		expected Errors
	}{
		{
			name:     "valid",
			input:    RegisterInput{Name: "Jane Doe", Email: "jane@example.com", Password: "secret1", Password2: "secret1"},
			expected: Errors{},
		},
		{
			name:  "all empty",
			input: RegisterInput{},
			expected: Errors{
				"name":      "Name field is required",
				"email":     "Email field is required",
				"password":  "Password field is required",
				"password2": "Confirm Password field is required",
			},
		},
		{
			name:  "whitespace name is empty",
			input: RegisterInput{Name: "   ", Email: "jane@example.com", Password: "secret1", Password2: "secret1"},
			expected: Errors{
				"name": "Name field is required",
			},
		},
		{
			name:  "short fields and mismatch",
			input: RegisterInput{Name: "J", Email: "not-an-email", Password: "abc", Password2: "abd"},
			expected: Errors{
				"name":      "Name must be between 2 and 30 characters",
				"email":     "Email is invalid",
				"password":  "Password must be at least 6 characters",
				"password2": "Passwords must match",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, ok := ValidateRegisterInput(tt.input)
			assert.Equal(t, tt.expected, errs)
			assert.Equal(t, len(tt.expected) == 0, ok)
			assert.Equal(t, ok, errs.IsValid())
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	errs, ok := ValidateLoginInput(LoginInput{Email: "bad"})
	assert.False(t, ok)
	assert.Equal(t, Errors{"email": "Email is invalid", "password": "Password field is required"}, errs)

	_, ok = ValidateLoginInput(LoginInput{Email: "jane@example.com", Password: "x"})
	assert.True(t, ok)
}

func TestValidatePostInput(t *testing.T) {
	errs, ok := ValidatePostInput(PostInput{Text: "short"})
	assert.False(t, ok)
	assert.Equal(t, "Post must be between 10 and 300 characters", errs["text"])

	errs, _ = ValidatePostInput(PostInput{Text: strings.Repeat("a", 301)})
	assert.Equal(t, "Post must be between 10 and 300 characters", errs["text"])

	errs, _ = ValidatePostInput(PostInput{})
	assert.Equal(t, "Text field is required", errs["text"])

	_, ok = ValidatePostInput(PostInput{Text: "exactly ten"})
	assert.True(t, ok)
}

func TestValidateProfileInput(t *testing.T) {
	errs, ok := ValidateProfileInput(ProfileInput{Handle: "x", Website: "not a url"})
	assert.False(t, ok)
	assert.Equal(t, Errors{
		"handle":  "Handle needs to between 2 and 40 characters",
		"status":  "Status field is required",
		"skills":  "Skills field is required",
		"website": "Not a valid URL",
	}, errs)

	errs, ok = ValidateProfileInput(ProfileInput{
		Handle:   "jane",
		Status:   "Developer",
		Skills:   "go, sql",
		Website:  "jane.dev",
		Twitter:  "https://twitter.com/jane",
		Linkedin: "ftp://linkedin.com/in/jane",
	})
	assert.False(t, ok)
	assert.Equal(t, Errors{"linkedin": "Not a valid URL"}, errs)
}

func TestValidateExperienceInput(t *testing.T) {
	errs, ok := ValidateExperienceInput(ExperienceInput{})
	assert.False(t, ok)
	assert.Equal(t, Errors{
		"title":   "Job title field is required",
		"company": "Company field is required",
		"from":    "From date field is required",
	}, errs)

	errs, _ = ValidateExperienceInput(ExperienceInput{Title: "Dev", Company: "Acme", From: "yesterday"})
	assert.Equal(t, Errors{"from": "From date is invalid"}, errs)

	_, ok = ValidateExperienceInput(ExperienceInput{Title: "Dev", Company: "Acme", From: "2020-01-01", Current: true})
	assert.True(t, ok)
}

func TestValidateEducationInput(t *testing.T) {
	errs, ok := ValidateEducationInput(EducationInput{School: "MIT"})
	assert.False(t, ok)
	assert.Equal(t, Errors{
		"degree":       "Degree field is required",
		"fieldofstudy": "Field of study field is required",
		"from":         "From date field is required",
	}, errs)

	_, ok = ValidateEducationInput(EducationInput{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2010-09-01", To: "2014-06-30",
	})
	assert.True(t, ok)
}
