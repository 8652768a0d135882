package validation

type RegisterInput struct {
	Name      string `json:"name" form:"name" validate:"required,min=2,max=30"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required,min=6,max=30"`
	Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password"`
}

var registerMessages = map[string]string{
	"name.required":      "Name field is required",
	"name.min":           "Name must be between 2 and 30 characters",
	"name.max":           "Name must be between 2 and 30 characters",
	"email.required":     "Email field is required",
	"email.email":        "Email is invalid",
	"password.required":  "Password field is required",
	"password.min":       "Password must be at least 6 characters",
	"password.max":       "Password must be at most 30 characters",
	"password2.required": "Confirm Password field is required",
	"password2.eqfield":  "Passwords must match",
}

func ValidateRegisterInput(in RegisterInput) (Errors, bool) {
	trim(&in.Name, &in.Email)
	return validateStruct(in, registerMessages)
}

type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

var loginMessages = map[string]string{
	"email.required":    "Email field is required",
	"email.email":       "Email is invalid",
	"password.required": "Password field is required",
}

func ValidateLoginInput(in LoginInput) (Errors, bool) {
	trim(&in.Email)
	return validateStruct(in, loginMessages)
}
