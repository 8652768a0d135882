package auth

import "errors"

// AuthError is returned by the token layer. Code is stable and safe to expose to clients.
type AuthError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrorCodeInvalidToken = "invalid_token"
	ErrorCodeTokenExpired = "token_expired"
	ErrorCodeTokenRevoked = "token_revoked"
	ErrorCodeMissingToken = "missing_token"
	ErrorCodeUserNotFound = "user_not_found"
	ErrorCodeUnauthorized = "unauthorized"
)

// NewAuthError creates a new AuthError
func NewAuthError(code, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// HasCode reports whether err is an AuthError carrying code.
func HasCode(err error, code string) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code == code
	}
	return false
}

func IsTokenExpired(err error) bool {
	return HasCode(err, ErrorCodeTokenExpired)
}

func IsUserNotFound(err error) bool {
	return HasCode(err, ErrorCodeUserNotFound)
}
