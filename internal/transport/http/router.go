package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"companyreg/internal/dto"
	"companyreg/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	AllowedOrigins []string
}

func NewRouter(companies service.CompanyService, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/companies", func(r chi.Router) {
		r.Post("/signup", handleSignUp(companies))
		r.Post("/verify-otp", handleVerifyOtp(companies))
		r.Post("/set-password", handleSetPassword(companies))
		r.Post("/login", handleLogin(companies))
		r.Get("/", handleList(companies))
		r.Get("/{id}", handleGetByID(companies))
	})

	return r
}

func handleSignUp(companies service.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeSignUp(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest,
				dto.Fail[dto.CompanyResponse](dto.CodeValidationError, "malformed request body"))
			return
		}
		if req.Logo != nil {
			if c, ok := req.Logo.Content.(io.Closer); ok {
				defer c.Close()
			}
		}
		res := companies.SignUp(r.Context(), req)
		writeResult(w, res, http.StatusBadRequest)
	}
}

// decodeSignUp accepts the original multipart form (required for the logo
// upload) and falls back to a JSON body for logo-less signups.
func decodeSignUp(r *http.Request) (dto.SignUpRequest, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return dto.SignUpRequest{}, err
		}
		req := dto.SignUpRequest{
			ArabicName:  r.FormValue("arabicName"),
			EnglishName: r.FormValue("englishName"),
			Email:       r.FormValue("email"),
			Phone:       r.FormValue("phone"),
			WebsiteURL:  r.FormValue("websiteUrl"),
		}
		if file, header, err := r.FormFile("logo"); err == nil {
			req.Logo = &dto.LogoUpload{
				Filename: header.Filename,
				Size:     header.Size,
				Content:  file,
			}
		}
		return req, nil
	}

	var req dto.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return dto.SignUpRequest{}, err
	}
	req.Logo = nil
	return req, nil
}

func handleVerifyOtp(companies service.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.VerifyOtpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest,
				dto.Fail[string](dto.CodeValidationError, "malformed request body"))
			return
		}
		writeResult(w, companies.VerifyOtp(r.Context(), req), http.StatusBadRequest)
	}
}

func handleSetPassword(companies service.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest,
				dto.Fail[string](dto.CodeValidationError, "malformed request body"))
			return
		}
		writeResult(w, companies.SetPassword(r.Context(), req), http.StatusBadRequest)
	}
}

func handleLogin(companies service.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest,
				dto.Fail[dto.CompanyResponse](dto.CodeValidationError, "malformed request body"))
			return
		}
		writeResult(w, companies.Login(r.Context(), req), http.StatusUnauthorized)
	}
}

func handleGetByID(companies service.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest,
				dto.Fail[dto.CompanyResponse](dto.CodeValidationError, "invalid company id"))
			return
		}
		writeResult(w, companies.GetByID(r.Context(), uint(id)), http.StatusNotFound)
	}
}

func handleList(companies service.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, companies.List(r.Context()), http.StatusInternalServerError)
	}
}

func writeResult[T any](w http.ResponseWriter, res dto.Result[T], failureStatus int) {
	status := http.StatusOK
	if !res.Success {
		status = failureStatus
	}
	writeJSON(w, status, res)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
