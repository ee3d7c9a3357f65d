package impl

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"companyreg/internal/domain"
	"companyreg/internal/dto"
	"companyreg/internal/observability/metrics"
	"companyreg/internal/otp"
	"companyreg/internal/service"
	"companyreg/internal/store"
	"companyreg/internal/validate"
)

// CompanyServiceImpl orchestrates the signup → verify → set-password →
// login sequence over the company and token stores plus the two external
// collaborators (email dispatch, logo storage).
type CompanyServiceImpl struct {
	Store     dataStore
	Passwords service.PasswordService
	Emails    service.EmailService
	Storage   service.StorageService

	OtpTTL        time.Duration
	EmailTimeout  time.Duration
	UploadTimeout time.Duration

	GenerateOtp func() (string, error)
}

func NewCompanyServiceImpl(st *store.Store, pw service.PasswordService, em service.EmailService, fs service.StorageService) *CompanyServiceImpl {
	return &CompanyServiceImpl{
		Store:         gormStoreAdapter{store: st},
		Passwords:     pw,
		Emails:        em,
		Storage:       fs,
		OtpTTL:        15 * time.Minute,
		EmailTimeout:  10 * time.Second,
		UploadTimeout: 30 * time.Second,
		GenerateOtp:   otp.Generate,
	}
}

type dataStore interface {
	WithTx(ctx context.Context, fn func(tx storeTx) error) error
	Companies() companyStore
	Tokens() tokenStore
}

type storeTx interface {
	Companies() companyStore
	Tokens() tokenStore
}

type companyStore interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uint) (*domain.Company, error)
	GetByEmail(ctx context.Context, email string) (*domain.Company, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, company *domain.Company) error
	List(ctx context.Context) ([]domain.Company, error)
}

type tokenStore interface {
	Create(ctx context.Context, token *domain.VerificationToken) error
	FindValid(ctx context.Context, companyID uint, code string, kind domain.TokenKind) (*domain.VerificationToken, error)
	Consume(ctx context.Context, tokenID uint) error
	InvalidateAll(ctx context.Context, companyID uint, kind domain.TokenKind) (int64, error)
}

type gormStoreAdapter struct {
	store *store.Store
}

func (g gormStoreAdapter) WithTx(ctx context.Context, fn func(tx storeTx) error) error {
	return g.store.WithTx(ctx, func(tx *store.Store) error {
		return fn(gormTxAdapter{tx: tx})
	})
}

func (g gormStoreAdapter) Companies() companyStore { return g.store.Companies() }
func (g gormStoreAdapter) Tokens() tokenStore      { return g.store.Tokens() }

type gormTxAdapter struct {
	tx *store.Store
}

func (g gormTxAdapter) Companies() companyStore { return g.tx.Companies() }
func (g gormTxAdapter) Tokens() tokenStore      { return g.tx.Tokens() }

// SignUp creates an unverified account and mails it a fresh OTP. The
// uniqueness check, account row, token row and dispatch all run inside one
// transaction, so a failed dispatch leaves no orphaned account behind. An
// already-uploaded logo object is not deleted on failure.
func (s *CompanyServiceImpl) SignUp(ctx context.Context, r dto.SignUpRequest) dto.Result[dto.CompanyResponse] {
	if msgs := validate.SignUp(r); len(msgs) > 0 {
		return validationFailure[dto.CompanyResponse]("signup", msgs)
	}

	var logoPath *string
	if r.Logo != nil {
		uctx, cancel := context.WithTimeout(ctx, s.UploadTimeout)
		path, err := s.Storage.UploadLogo(uctx, *r.Logo)
		cancel()
		if err != nil {
			if isDeadline(err) {
				return failOp[dto.CompanyResponse]("signup", dto.CodeUpstreamTimeout, "Logo upload timed out")
			}
			return failOp[dto.CompanyResponse]("signup", dto.CodeFileError, err.Error())
		}
		logoPath = &path
	}

	var created *domain.Company
	err := s.Store.WithTx(ctx, func(tx storeTx) error {
		exists, err := tx.Companies().EmailExists(ctx, r.Email)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrEmailExists
		}

		now := time.Now().UTC()
		company := &domain.Company{
			ArabicName:    r.ArabicName,
			EnglishName:   r.EnglishName,
			Email:         r.Email,
			Phone:         optional(r.Phone),
			WebsiteURL:    optional(r.WebsiteURL),
			LogoPath:      logoPath,
			EmailVerified: false,
			CreatedAt:     now,
		}
		if err := tx.Companies().Create(ctx, company); err != nil {
			return err
		}

		code, err := s.GenerateOtp()
		if err != nil {
			return err
		}
		// Sweep any still-valid codes before issuing, so at most one is
		// redeemable per (company, kind).
		if _, err := tx.Tokens().InvalidateAll(ctx, company.ID, domain.TokenKindEmailVerification); err != nil {
			return err
		}
		token := &domain.VerificationToken{
			CompanyID: company.ID,
			Code:      code,
			Kind:      domain.TokenKindEmailVerification,
			CreatedAt: now,
			ExpiresAt: now.Add(s.OtpTTL),
		}
		if err := tx.Tokens().Create(ctx, token); err != nil {
			return err
		}

		ectx, cancel := context.WithTimeout(ctx, s.EmailTimeout)
		defer cancel()
		if err := s.Emails.SendOtp(ectx, r.Email, code, r.EnglishName); err != nil {
			return errors.Join(errEmailDispatch, err)
		}

		created = company
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailExists):
			return failOp[dto.CompanyResponse]("signup", dto.CodeEmailExists, "Email is already registered")
		case isDeadline(err):
			return failOp[dto.CompanyResponse]("signup", dto.CodeUpstreamTimeout, "Verification email dispatch timed out")
		case errors.Is(err, errEmailDispatch):
			return failOp[dto.CompanyResponse]("signup", dto.CodeEmailError, "Failed to send verification email")
		default:
			slog.Default().Error("signup failed", "error", err)
			return failOp[dto.CompanyResponse]("signup", dto.CodeSignUpError, "An error occurred during registration")
		}
	}
	metrics.OtpIssuedTotal.Inc()
	return okOp("signup", dto.NewCompanyResponse(created))
}

// VerifyOtp flips the account to verified when a valid code is presented.
// The code is deliberately not consumed here, so re-presenting it (another
// tab, a retried request) succeeds until SetPassword redeems it or it
// expires. A verified flag never regresses.
func (s *CompanyServiceImpl) VerifyOtp(ctx context.Context, r dto.VerifyOtpRequest) dto.Result[string] {
	if msgs := validate.VerifyOtp(r); len(msgs) > 0 {
		return validationFailure[string]("verify_otp", msgs)
	}

	err := s.Store.WithTx(ctx, func(tx storeTx) error {
		if _, err := tx.Tokens().FindValid(ctx, r.CompanyID, r.OtpCode, domain.TokenKindEmailVerification); err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return domain.ErrInvalidToken
			}
			return err
		}

		company, err := tx.Companies().GetByID(ctx, r.CompanyID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				// A matching token without its account is treated as a
				// no-op; callers must not learn about account existence
				// through this operation.
				return nil
			}
			return err
		}

		switch company.State() {
		case domain.StateUnverified:
			company.EmailVerified = true
			return tx.Companies().Update(ctx, company)
		case domain.StateVerified, domain.StateCredentialed:
			return nil
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return failOp[string]("verify_otp", dto.CodeInvalidOtp, "Invalid or expired OTP code")
		}
		slog.Default().Error("otp verification failed", "error", err)
		return failOp[string]("verify_otp", dto.CodeVerificationError, "An error occurred during OTP verification")
	}
	return okOp("verify_otp", dto.MarkerOtpVerified)
}

// SetPassword installs the credential and is the single point of OTP
// consumption: the presented code is redeemed with a conditional update
// and every sibling code is swept, so a replay fails with INVALID_SESSION.
func (s *CompanyServiceImpl) SetPassword(ctx context.Context, r dto.SetPasswordRequest) dto.Result[string] {
	if msgs := validate.SetPassword(r); len(msgs) > 0 {
		return validationFailure[string]("set_password", msgs)
	}

	err := s.Store.WithTx(ctx, func(tx storeTx) error {
		token, err := tx.Tokens().FindValid(ctx, r.CompanyID, r.OtpCode, domain.TokenKindEmailVerification)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return domain.ErrTokenConsumed
			}
			return err
		}

		company, err := tx.Companies().GetByID(ctx, r.CompanyID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return domain.ErrCompanyNotFound
			}
			return err
		}

		encoded, err := s.Passwords.Hash(r.NewPassword)
		if err != nil {
			return err
		}
		company.PasswordHash = &encoded
		if err := tx.Companies().Update(ctx, company); err != nil {
			return err
		}

		if err := tx.Tokens().Consume(ctx, token.ID); err != nil {
			return err
		}
		_, err = tx.Tokens().InvalidateAll(ctx, r.CompanyID, domain.TokenKindEmailVerification)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenConsumed):
			return failOp[string]("set_password", dto.CodeInvalidSession, "Invalid or expired session. Please request a new OTP.")
		case errors.Is(err, domain.ErrCompanyNotFound):
			return failOp[string]("set_password", dto.CodeCompanyNotFound, "Company not found")
		default:
			slog.Default().Error("set password failed", "error", err)
			return failOp[string]("set_password", dto.CodePasswordError, "An error occurred while setting password")
		}
	}
	return okOp("set_password", dto.MarkerPasswordSet)
}

// Login collapses every rejection reason (unknown email, unverified
// account, credential absent, wrong password) into one undifferentiated
// INVALID_CREDENTIALS result.
func (s *CompanyServiceImpl) Login(ctx context.Context, r dto.LoginRequest) dto.Result[dto.CompanyResponse] {
	if msgs := validate.Login(r); len(msgs) > 0 {
		return validationFailure[dto.CompanyResponse]("login", msgs)
	}

	company, err := s.Store.Companies().GetByEmail(ctx, r.Email)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return failOp[dto.CompanyResponse]("login", dto.CodeInvalidCredentials, "Invalid email or password")
		}
		slog.Default().Error("login failed", "error", err)
		return failOp[dto.CompanyResponse]("login", dto.CodeLoginError, "An error occurred during login")
	}
	if !company.CanAuthenticate() {
		return failOp[dto.CompanyResponse]("login", dto.CodeInvalidCredentials, "Invalid email or password")
	}
	if !s.Passwords.Verify(r.Password, *company.PasswordHash) {
		return failOp[dto.CompanyResponse]("login", dto.CodeInvalidCredentials, "Invalid email or password")
	}
	return okOp("login", dto.NewCompanyResponse(company))
}

func (s *CompanyServiceImpl) GetByID(ctx context.Context, id uint) dto.Result[dto.CompanyResponse] {
	company, err := s.Store.Companies().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return failOp[dto.CompanyResponse]("get_by_id", dto.CodeCompanyNotFound, "Company not found")
		}
		slog.Default().Error("company retrieval failed", "error", err)
		return failOp[dto.CompanyResponse]("get_by_id", dto.CodeRetrievalError, "An error occurred while retrieving company")
	}
	return okOp("get_by_id", dto.NewCompanyResponse(company))
}

func (s *CompanyServiceImpl) List(ctx context.Context) dto.Result[[]dto.CompanyResponse] {
	companies, err := s.Store.Companies().List(ctx)
	if err != nil {
		slog.Default().Error("company listing failed", "error", err)
		return failOp[[]dto.CompanyResponse]("list", dto.CodeRetrievalError, "An error occurred while retrieving companies")
	}
	views := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		views = append(views, dto.NewCompanyResponse(&companies[i]))
	}
	return okOp("list", views)
}

// isDeadline matches both deadline shapes a timed-out collaborator can
// produce: context.DeadlineExceeded from context-aware calls and
// os.ErrDeadlineExceeded from net connections carrying a SetDeadline.
func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func failOp[T any](op, code, message string) dto.Result[T] {
	metrics.RecordOperation(op, code)
	return dto.Fail[T](code, message)
}

func okOp[T any](op string, data T) dto.Result[T] {
	metrics.RecordOperation(op, "")
	return dto.OK(data)
}

func validationFailure[T any](op string, msgs []string) dto.Result[T] {
	metrics.RecordOperation(op, dto.CodeValidationError)
	errs := make([]dto.APIError, 0, len(msgs))
	for _, m := range msgs {
		errs = append(errs, dto.APIError{Code: dto.CodeValidationError, Message: m})
	}
	return dto.FailAll[T](errs)
}
