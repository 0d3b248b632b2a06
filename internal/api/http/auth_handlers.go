package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/quiz"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+91-\d{10}$`)
)

const bcryptCost = 12

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email_id"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	School          string `json:"school"`
}

func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	for field, value := range map[string]string{
		"name":             req.Name,
		"email_id":         req.Email,
		"phone":            req.Phone,
		"password":         req.Password,
		"confirm_password": req.ConfirmPassword,
		"school":           req.School,
	} {
		if strings.TrimSpace(value) == "" {
			writeError(w, http.StatusBadRequest, field+" is required")
			return
		}
	}
	if req.Password != req.ConfirmPassword {
		writeError(w, http.StatusBadRequest, "password and confirm_password do not match")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		writeError(w, http.StatusBadRequest, "invalid email format")
		return
	}
	if !phonePattern.MatchString(req.Phone) {
		writeError(w, http.StatusBadRequest, "phone must be in +91-XXXXXXXXXX format")
		return
	}

	// Registering with the bootstrap admin username and its password
	// claims the admin role. Anyone else becomes a regular user.
	role := "user"
	if strings.EqualFold(email, a.admin.Username) &&
		bcrypt.CompareHashAndPassword([]byte(a.admin.PassHash), []byte(req.Password)) == nil {
		role = "admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}
	user := quiz.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        req.Phone,
		Role:         role,
		School:       strings.TrimSpace(req.School),
		PasswordHash: string(hash),
	}
	created, err := a.store.CreateUser(r.Context(), user)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  true,
		"message": "user registered successfully",
		"user": map[string]any{
			"user_id":  created.ID,
			"name":     created.Name,
			"email_id": created.Email,
			"phone":    created.Phone,
			"school":   created.School,
			"role":     created.Role,
		},
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	login := strings.ToLower(strings.TrimSpace(req.Username))

	if strings.EqualFold(login, a.admin.Username) {
		if bcrypt.CompareHashAndPassword([]byte(a.admin.PassHash), []byte(req.Password)) != nil {
			writeError(w, http.StatusUnauthorized, "invalid username/email or password")
			return
		}
		a.issueLogin(w, r, quiz.User{
			ID:    "admin",
			Name:  a.admin.Name,
			Email: a.admin.Username,
			Role:  "admin",
		})
		return
	}

	user, err := a.store.FindUserByLogin(r.Context(), login)
	if err != nil {
		if errors.Is(err, quiz.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid username/email or password")
			return
		}
		writeStoreError(w, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid username/email or password")
		return
	}
	a.issueLogin(w, r, user)
}

func (a *API) issueLogin(w http.ResponseWriter, _ *http.Request, user quiz.User) {
	token, err := a.tokens.Issue(user.ID, user.Role, user.Name, user.Email, user.Phone, user.School)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"message": "login successful",
		"token":   token,
		"user": map[string]any{
			"user_id":  user.ID,
			"name":     user.Name,
			"username": user.Email,
			"phone":    user.Phone,
			"school":   user.School,
			"role":     user.Role,
		},
	})
}

type decodeTokenRequest struct {
	Token string `json:"token"`
}

func (a *API) DecodeToken(w http.ResponseWriter, r *http.Request) {
	var req decodeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}
	claims, err := a.tokens.Verify(req.Token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "token is invalid or expired")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    true,
		"message":   "token decoded successfully",
		"user_data": claimsPayload(claims),
	})
}

func (a *API) VerifyToken(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    true,
		"message":   "token is valid",
		"user_data": claimsPayload(claims),
	})
}

func claimsPayload(c *auth.Claims) map[string]any {
	payload := map[string]any{
		"user_id": c.UserID,
		"role":    c.Role,
		"name":    c.Name,
		"email":   c.Email,
		"phone":   c.Phone,
		"school":  c.School,
	}
	if c.IssuedAt != nil {
		payload["issued_at"] = c.IssuedAt.UTC().Format(time.RFC3339)
	}
	if c.ExpiresAt != nil {
		payload["expires_at"] = c.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return payload
}
