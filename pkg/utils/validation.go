package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidateRequestType validates a request type tag
func ValidateRequestType(requestType string) error {
	if requestType == "" {
		return fmt.Errorf("request type cannot be empty")
	}
	if len(requestType) > 64 {
		return fmt.Errorf("request type too long (max 64 characters)")
	}
	return nil
}

// ValidateAction validates an approval action code
func ValidateAction(action string) error {
	if action != "A" && action != "R" {
		return fmt.Errorf("invalid action: %q (must be 'A' or 'R')", action)
	}
	return nil
}

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// SanitizeString removes dangerous characters from user input
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")
	// Trim whitespace
	input = strings.TrimSpace(input)
	return input
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // Default limit
	}
	if limit > 100 {
		return 100 // Max limit
	}
	return limit
}

// ValidateOffset validates pagination offset
func ValidateOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// ValidateRequired validates that a field is not empty
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateMaxLength validates maximum string length
func ValidateMaxLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", fieldName, maxLength)
	}
	return nil
}

// ValidatePositiveID validates that a numeric identifier is positive
func ValidatePositiveID(fieldName string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s must be a positive identifier", fieldName)
	}
	return nil
}

// HumanizeRequestType converts a request type tag into a readable label,
// e.g. "ASSET_MOVEMENT_APPROVAL" -> "Asset Movement Approval"
func HumanizeRequestType(requestType string) string {
	words := strings.Split(strings.ToLower(strings.ReplaceAll(requestType, "_", " ")), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
