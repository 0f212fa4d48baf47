package content

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// CreateCourseInput holds parameters for the course creation operation.
type CreateCourseInput struct {
	Name             string
	NativeLanguage   string
	LearningLanguage string
	Interest         string
	Level            string
}

// Validate validates the course input.
func (i CreateCourseInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 128 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if strings.TrimSpace(i.NativeLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "native_language", Message: "required"})
	}
	if strings.TrimSpace(i.LearningLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "learning_language", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTopicInput holds parameters for the manual topic creation operation.
type CreateTopicInput struct {
	Title       string
	Category    domain.TopicCategory
	Content     string
	Description string
}

// Validate validates the topic input. A category outside the three known
// ones is a validation error, not a silent default.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "category",
			Message: fmt.Sprintf("must be one of %v", domain.Categories()),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
