package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":           "Name",
	"Email":          "Email",
	"Password":       "Password",
	"Role":           "Role",
	"Location":       "Location",
	"Skills":         "Skills",
	"Title":          "Job title",
	"Description":    "Job description",
	"RequiredSkills": "Required skills",
	"JobID":          "Job ID",
	"UserID":         "User ID",
	"Status":         "Status",
	"Page":           "Page",
	"Limit":          "Limit",
}

// FormatErrors converts validator errors into a readable message list
func FormatErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		label := FieldLabels[fieldErr.Field()]
		if label == "" {
			label = fieldErr.Field()
		}

		var msg string
		switch fieldErr.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", label)
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", label)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", label, fieldErr.Param())
		case "max":
			msg = fmt.Sprintf("%s cannot exceed %s characters", label, fieldErr.Param())
		case "oneof":
			msg = fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fieldErr.Param(), " ", ", "))
		case "uuid":
			msg = fmt.Sprintf("%s must be a valid identifier", label)
		case "valid_name":
			msg = fmt.Sprintf("%s contains invalid characters", label)
		default:
			msg = fmt.Sprintf("%s is invalid", label)
		}
		messages = append(messages, msg)
	}

	return messages
}
