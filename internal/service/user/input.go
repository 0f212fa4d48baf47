package user

import "github.com/heartmarshall/linguacourse-backend/internal/domain"

const maxPasswordLen = 72

// UpdateProfileInput holds parameters for the profile update operation.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name     *string
	Password *string
}

// Validate validates the update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Password == nil {
		errs = append(errs, domain.FieldError{Field: "name", Message: "nothing to update"})
	}

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(*i.Name) > 64 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Password != nil {
		if len(*i.Password) < 8 {
			errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
		} else if len(*i.Password) > maxPasswordLen {
			errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
