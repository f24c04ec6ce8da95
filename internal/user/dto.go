package user

import (
	"strings"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
	"github.com/hotelops/hotel-operations/internal/core/validation"
)

// CreateUserDTO is the payload for creating an account.
type CreateUserDTO struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Location   string `json:"location"`
}

func (d *CreateUserDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required().MaxLength(255).Custom(validateEmail("email"))
	v.Field("name", d.Name).Required().MaxLength(255)
	v.Field("password", d.Password).Required().MinLength(8).MaxLength(72)
	v.Field("role", d.Role).Required().
		OneOf(string(auth.RoleStaff), string(auth.RoleManager), string(auth.RoleAdmin), string(auth.RoleMaster))
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UpdateUserDTO is the payload for a partial account update. Passwords are
// rotated here too; a nil field leaves the stored value untouched.
type UpdateUserDTO struct {
	Email      *string `json:"email"`
	Name       *string `json:"name"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Location   *string `json:"location"`
	IsActive   *bool   `json:"is_active"`
}

func (d *UpdateUserDTO) Validate() error {
	v := validation.NewValidator()
	if d.Email != nil {
		v.Field("email", *d.Email).Required().MaxLength(255).Custom(validateEmail("email"))
	}
	if d.Name != nil {
		v.Field("name", *d.Name).Required().MaxLength(255)
	}
	if d.Password != nil {
		v.Field("password", *d.Password).Required().MinLength(8).MaxLength(72)
	}
	if d.Role != nil {
		v.Field("role", *d.Role).Required().
			OneOf(string(auth.RoleStaff), string(auth.RoleManager), string(auth.RoleAdmin), string(auth.RoleMaster))
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func validateEmail(field string) func(interface{}) *internal.AppError {
	return func(value interface{}) *internal.AppError {
		v, ok := value.(string)
		if !ok || v == "" {
			return nil
		}
		at := strings.Index(v, "@")
		if at < 1 || at == len(v)-1 || !strings.Contains(v[at+1:], ".") {
			return internal.NewValidationFieldError(field, "invalid email address", internal.ErrCodeValidationFailed)
		}
		return nil
	}
}
