package validation_test

import (
	"strings"
	"testing"

	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/validation"
)

func fieldNames(errors []validation.ValidationError) map[string]bool {
	fields := make(map[string]bool)
	for _, e := range errors {
		fields[e.Field] = true
	}
	return fields
}

func TestValidateCommentValid(t *testing.T) {
	input := &models.CommentInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Body:  "A perfectly fine comment.",
	}

	if errors := validation.ValidateComment(input); len(errors) != 0 {
		t.Errorf("Expected no errors, got %v", errors)
	}
}

func TestValidateCommentMissingFields(t *testing.T) {
	input := &models.CommentInput{}

	errors := validation.ValidateComment(input)
	if len(errors) != 3 {
		t.Fatalf("Expected 3 errors, got %d", len(errors))
	}

	fields := fieldNames(errors)
	for _, field := range []string{"name", "email", "body"} {
		if !fields[field] {
			t.Errorf("Expected error for field %q", field)
		}
	}
}

func TestValidateCommentWhitespaceOnly(t *testing.T) {
	input := &models.CommentInput{Name: "   ", Email: " ", Body: "\t\n"}

	if errors := validation.ValidateComment(input); len(errors) != 3 {
		t.Errorf("Whitespace-only fields should fail, got %d errors", len(errors))
	}
}

func TestValidateCommentEmailFormat(t *testing.T) {
	invalid := []string{"plainstring", "@nodomain", "user@", "user@domain", "user @domain.com"}
	for _, email := range invalid {
		input := &models.CommentInput{Name: "A", Email: email, Body: "b"}
		errors := validation.ValidateComment(input)
		if !fieldNames(errors)["email"] {
			t.Errorf("Expected email error for %q", email)
		}
	}

	valid := []string{"user@example.com", "first.last+tag@sub.domain.org"}
	for _, email := range valid {
		input := &models.CommentInput{Name: "A", Email: email, Body: "b"}
		errors := validation.ValidateComment(input)
		if fieldNames(errors)["email"] {
			t.Errorf("Did not expect email error for %q", email)
		}
	}
}

func TestValidateCommentLengthLimits(t *testing.T) {
	input := &models.CommentInput{
		Name:  strings.Repeat("n", validation.MaxNameLength+1),
		Email: "a@b.com",
		Body:  strings.Repeat("b", validation.MaxBodyLength+1),
	}

	errors := validation.ValidateComment(input)
	fields := fieldNames(errors)
	if !fields["name"] || !fields["body"] {
		t.Errorf("Expected length errors for name and body, got %v", errors)
	}
}

func TestValidateBookmark(t *testing.T) {
	if errors := validation.ValidateBookmark(&models.BookmarkInput{ArticleID: 42}); len(errors) != 0 {
		t.Errorf("Expected no errors, got %v", errors)
	}

	for _, id := range []int64{0, -1} {
		if errors := validation.ValidateBookmark(&models.BookmarkInput{ArticleID: id}); len(errors) != 1 {
			t.Errorf("Expected 1 error for article_id %d, got %d", id, len(errors))
		}
	}
}
