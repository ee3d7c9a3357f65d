package dto

// Error codes returned in the result envelope.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeFileError          = "FILE_ERROR"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeEmailError         = "EMAIL_ERROR"
	CodeSignUpError        = "SIGNUP_ERROR"
	CodeInvalidOtp         = "INVALID_OTP"
	CodeVerificationError  = "VERIFICATION_ERROR"
	CodeInvalidSession     = "INVALID_SESSION"
	CodeCompanyNotFound    = "COMPANY_NOT_FOUND"
	CodePasswordError      = "PASSWORD_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeLoginError         = "LOGIN_ERROR"
	CodeRetrievalError     = "RETRIEVAL_ERROR"
	CodeUpstreamTimeout    = "UPSTREAM_TIMEOUT"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the uniform envelope every workflow operation returns. The
// engine never hands a bare error to the transport; failures are encoded
// here with one specific code each, except validation which is multi-valued.
type Result[T any] struct {
	Success bool       `json:"success"`
	Data    *T         `json:"data,omitempty"`
	Errors  []APIError `json:"errors,omitempty"`
}

func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: &data}
}

func Fail[T any](code, message string) Result[T] {
	return Result[T]{Success: false, Errors: []APIError{{Code: code, Message: message}}}
}

func FailAll[T any](errs []APIError) Result[T] {
	return Result[T]{Success: false, Errors: errs}
}

// FirstCode returns the code of the first error, or "" on success.
func (r Result[T]) FirstCode() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Code
}
