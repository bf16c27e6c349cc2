package validation

import (
	"regexp"
	"strings"

	"github.com/article-mirror-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Field length limits for user-submitted content
const (
	MaxNameLength = 100
	MaxBodyLength = 10000
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateComment validates a comment creation payload and returns the
// field-level errors found
func ValidateComment(input *models.CommentInput) []ValidationError {
	var errors []ValidationError

	name := strings.TrimSpace(input.Name)
	if name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	} else if len(name) > MaxNameLength {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: "name exceeds maximum length",
			Value:   len(name),
		})
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errors = append(errors, ValidationError{
			Field:   "email",
			Message: "invalid email format",
			Value:   email,
		})
	}

	body := strings.TrimSpace(input.Body)
	if body == "" {
		errors = append(errors, ValidationError{Field: "body", Message: "body is required"})
	} else if len(body) > MaxBodyLength {
		errors = append(errors, ValidationError{
			Field:   "body",
			Message: "body exceeds maximum length",
			Value:   len(body),
		})
	}

	return errors
}

// ValidateBookmark validates a bookmark creation payload
func ValidateBookmark(input *models.BookmarkInput) []ValidationError {
	var errors []ValidationError

	if input.ArticleID <= 0 {
		errors = append(errors, ValidationError{
			Field:   "article_id",
			Message: "article_id is required and must be positive",
			Value:   input.ArticleID,
		})
	}

	return errors
}
