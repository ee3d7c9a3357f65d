package validate

import (
	"strings"
	"testing"

	"companyreg/internal/dto"
)

func validSignUp() dto.SignUpRequest {
	return dto.SignUpRequest{
		ArabicName:  "شركة أكمي",
		EnglishName: "Acme",
		Email:       "a@acme.com",
	}
}

func TestSignUpAcceptsMinimalRequest(t *testing.T) {
	if errs := SignUp(validSignUp()); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestSignUpFieldRules(t *testing.T) {
	long := strings.Repeat("x", 300)

	cases := []struct {
		name   string
		mutate func(*dto.SignUpRequest)
		want   string
	}{
		{name: "missing arabic name", mutate: func(r *dto.SignUpRequest) { r.ArabicName = "" }, want: "Arabic company name is required"},
		{name: "arabic name too long", mutate: func(r *dto.SignUpRequest) { r.ArabicName = long }, want: "must not exceed 255"},
		{name: "missing english name", mutate: func(r *dto.SignUpRequest) { r.EnglishName = "" }, want: "English company name is required"},
		{name: "missing email", mutate: func(r *dto.SignUpRequest) { r.Email = "  " }, want: "Email is required"},
		{name: "bad email", mutate: func(r *dto.SignUpRequest) { r.Email = "not-an-email" }, want: "Invalid email format"},
		{name: "bad phone", mutate: func(r *dto.SignUpRequest) { r.Phone = "0-800-BANANA" }, want: "Invalid phone number format"},
		{name: "relative website", mutate: func(r *dto.SignUpRequest) { r.WebsiteURL = "acme.com/about" }, want: "Invalid website URL format"},
		{name: "bad logo extension", mutate: func(r *dto.SignUpRequest) {
			r.Logo = &dto.LogoUpload{Filename: "logo.gif", Size: 10}
		}, want: "jpg, jpeg, png"},
		{name: "oversized logo", mutate: func(r *dto.SignUpRequest) {
			r.Logo = &dto.LogoUpload{Filename: "logo.png", Size: 16 * 1024 * 1024}
		}, want: "must not exceed 15MB"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignUp()
			tc.mutate(&req)
			errs := SignUp(req)
			if !containsSubstring(errs, tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, errs)
			}
		})
	}
}

func TestSignUpOptionalFieldsMayBeEmpty(t *testing.T) {
	req := validSignUp()
	req.Phone = ""
	req.WebsiteURL = ""
	if errs := SignUp(req); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	req.Phone = "+201234567890"
	req.WebsiteURL = "https://acme.com"
	if errs := SignUp(req); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestSignUpCollectsMultipleErrors(t *testing.T) {
	errs := SignUp(dto.SignUpRequest{Email: "nope"})
	if len(errs) < 3 {
		t.Fatalf("expected errors for both names and the email, got %v", errs)
	}
}

func TestVerifyOtpRules(t *testing.T) {
	if errs := VerifyOtp(dto.VerifyOtpRequest{CompanyID: 1, OtpCode: "123456"}); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	cases := []struct {
		name string
		req  dto.VerifyOtpRequest
		want string
	}{
		{name: "missing company", req: dto.VerifyOtpRequest{OtpCode: "123456"}, want: "company ID"},
		{name: "missing code", req: dto.VerifyOtpRequest{CompanyID: 1}, want: "OTP code is required"},
		{name: "short code", req: dto.VerifyOtpRequest{CompanyID: 1, OtpCode: "123"}, want: "6 digits"},
		{name: "alphabetic code", req: dto.VerifyOtpRequest{CompanyID: 1, OtpCode: "12345a"}, want: "6 digits"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if errs := VerifyOtp(tc.req); !containsSubstring(errs, tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, errs)
			}
		})
	}
}

func TestSetPasswordPolicy(t *testing.T) {
	ok := dto.SetPasswordRequest{CompanyID: 1, OtpCode: "123456", NewPassword: "Abc123!", ConfirmPassword: "Abc123!"}
	if errs := SetPassword(ok); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	cases := []struct {
		name     string
		password string
		want     string
	}{
		{name: "too short", password: "Ab1!", want: "at least 7 characters"},
		{name: "no uppercase", password: "abc1234!", want: "uppercase letter"},
		{name: "no digit", password: "Abcdefg!", want: "one number"},
		{name: "no symbol", password: "Abc12345", want: "special character"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := ok
			req.NewPassword = tc.password
			req.ConfirmPassword = tc.password
			if errs := SetPassword(req); !containsSubstring(errs, tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, errs)
			}
		})
	}

	req := ok
	req.ConfirmPassword = "Different1!"
	if errs := SetPassword(req); !containsSubstring(errs, "do not match") {
		t.Fatalf("expected mismatch error, got %v", errs)
	}
}

func TestLoginRules(t *testing.T) {
	if errs := Login(dto.LoginRequest{Email: "a@acme.com", Password: "x"}); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if errs := Login(dto.LoginRequest{}); len(errs) != 2 {
		t.Fatalf("expected both email and password errors, got %v", errs)
	}
}

func containsSubstring(errs []string, want string) bool {
	for _, e := range errs {
		if strings.Contains(e, want) {
			return true
		}
	}
	return false
}
