package candidate

import (
	"strings"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/core/validation"
)

// CreateCandidateDTO carries the multipart form fields; the CV file itself
// travels separately through the handler.
type CreateCandidateDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Location   string `json:"location"`
	Source     string `json:"source"`
	Notes      string `json:"notes"`
}

func (d *CreateCandidateDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(255)
	v.Field("email", d.Email).Required().MaxLength(255).Custom(validateEmail)
	v.Field("role", d.Role).MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type UpdateCandidateDTO struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Location   *string `json:"location"`
	Source     *string `json:"source"`
	Status     *Status `json:"status"`
	Notes      *string `json:"notes"`
}

func (d *UpdateCandidateDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Field("name", *d.Name).Required().MaxLength(255)
	}
	if d.Email != nil {
		v.Field("email", *d.Email).Required().MaxLength(255).Custom(validateEmail)
	}
	if d.Status != nil && !d.Status.Valid() {
		return internal.NewValidationFieldError("status", "invalid candidate status", internal.ErrCodeInvalidStatus)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d *UpdateCandidateDTO) Apply(c *Candidate) {
	if d.Name != nil {
		c.Name = *d.Name
	}
	if d.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*d.Email))
	}
	if d.Phone != nil {
		c.Phone = *d.Phone
	}
	if d.Role != nil {
		c.Role = *d.Role
	}
	if d.Department != nil {
		c.Department = *d.Department
	}
	if d.Location != nil {
		c.Location = *d.Location
	}
	if d.Source != nil {
		c.Source = *d.Source
	}
	if d.Status != nil {
		c.Status = *d.Status
	}
	if d.Notes != nil {
		c.Notes = *d.Notes
	}
}

func validateEmail(value interface{}) *internal.AppError {
	v, ok := value.(string)
	if !ok || v == "" {
		return nil
	}
	at := strings.Index(v, "@")
	if at < 1 || at == len(v)-1 || !strings.Contains(v[at+1:], ".") {
		return internal.NewValidationFieldError("email", "invalid email address", internal.ErrCodeValidationFailed)
	}
	return nil
}
