package contact

import (
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2/utils"
)

// Form is the normalized contact input. Fields outside this struct never
// reach the domain: the typed shape is the allowlist.
type Form struct {
	Name     string
	Lastname string
	Email    string
	Phone    string
}

// Normalize trims every field. The values are copied because form
// values parsed by fasthttp alias reusable request buffers and must not
// outlive the handler as-is.
func (f *Form) Normalize() {
	f.Name = utils.CopyString(strings.TrimSpace(f.Name))
	f.Lastname = utils.CopyString(strings.TrimSpace(f.Lastname))
	f.Email = utils.CopyString(strings.TrimSpace(f.Email))
	f.Phone = utils.CopyString(strings.TrimSpace(f.Phone))
}

// Validate applies every rule and returns all violations in rule order.
// An empty slice means the form is valid.
func (f Form) Validate() []string {
	var errs []string
	if f.Name == "" {
		errs = append(errs, "Name is a required field.")
	}
	if f.Email != "" && !govalidator.IsEmail(f.Email) {
		errs = append(errs, "Invalid email.")
	}
	if f.Email == "" && f.Phone == "" {
		errs = append(errs, "At least one contact method is required: email or phone.")
	}
	return errs
}
