package auth

import (
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2/utils"
)

// Credentials is the normalized registration/login input.
type Credentials struct {
	Email    string
	Password string
}

// Normalize trims the email. The password is kept verbatim: leading and
// trailing spaces are legal password characters. Both fields are copied
// because form values parsed by fasthttp alias reusable request buffers
// and must not outlive the handler as-is.
func (cr *Credentials) Normalize() {
	cr.Email = utils.CopyString(strings.TrimSpace(cr.Email))
	cr.Password = utils.CopyString(cr.Password)
}

// Validate applies every rule and returns all violations in rule order.
// An empty slice means the credentials are valid.
func (cr Credentials) Validate() []string {
	var errs []string
	if !govalidator.IsEmail(cr.Email) {
		errs = append(errs, "Invalid email.")
	}
	if len(cr.Password) < 3 || len(cr.Password) > 50 {
		errs = append(errs, "Password must be between 3 and 50 characters.")
	}
	return errs
}
