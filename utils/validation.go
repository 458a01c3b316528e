package utils

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// SanitizeString escapes HTML and strips tags from user input
func SanitizeString(input string) string {
	sanitized := html.EscapeString(input)
	htmlTagRegex := regexp.MustCompile(`<[^>]*>`)
	return htmlTagRegex.ReplaceAllString(sanitized, "")
}

// ValidateEmail checks the email format
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone checks the phone number format
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateURL checks that the value is a well-formed absolute http(s)
// URL. An empty value is accepted; optional link fields treat empty as
// unset.
func ValidateURL(value string) bool {
	if value == "" {
		return true
	}
	parsed, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}

// ValidateSocialLinks validates a platform->URL map: every value must
// be a well-formed URL or empty, and at least one must be set.
func ValidateSocialLinks(links map[string]string) error {
	var errs FieldValidationErrors
	anySet := false
	for platform, link := range links {
		if link != "" {
			anySet = true
		}
		if !ValidateURL(link) {
			errs = append(errs, FieldValidationError{
				Field:   platform,
				Message: "must be a valid URL",
			})
		}
	}
	if !anySet {
		errs = append(errs, FieldValidationError{
			Field:   "links",
			Message: "at least one social media link is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateRating checks that a review rating is between 1 and 5
func ValidateRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// ValidateDiscount checks that a coupon discount percent is in (0, 100]
func ValidateDiscount(discount float64) bool {
	return discount > 0 && discount <= 100
}
