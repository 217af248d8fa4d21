package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bmaBack/internal/models"
	"bmaBack/internal/services"
	"bmaBack/utils"
)

type stubIdentity struct {
	user models.User
	err  error
}

func (s *stubIdentity) Login(ctx context.Context, email, password string) (models.User, error) {
	return s.user, s.err
}

func newAuthHandler(identity services.IdentityProvider) *AuthHandler {
	tokens, err := utils.NewManager("test-signing-key")
	if err != nil {
		panic(err)
	}
	return &AuthHandler{Service: &services.AuthService{
		Identity: identity,
		Tokens:   tokens,
		TokenTTL: time.Hour,
	}}
}

func loginRequestBody(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/verify-login", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestVerifyLogin(t *testing.T) {
	identity := &stubIdentity{user: models.User{Email: "agent@bma.example", RoleID: "2"}}
	h := newAuthHandler(identity)

	rr := httptest.NewRecorder()
	h.VerifyLogin(rr, loginRequestBody(`{"email":"agent@bma.example","password":"secret"}`))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Success bool        `json:"success"`
		User    models.User `json:"user"`
		Token   string      `json:"token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success {
		t.Error("success = false")
	}
	if body.User.Email != "agent@bma.example" || body.User.RoleID != "2" {
		t.Errorf("user = %+v", body.User)
	}
	if body.Token == "" {
		t.Error("no token issued")
	}
}

func TestVerifyLoginMissingFields(t *testing.T) {
	h := newAuthHandler(&stubIdentity{})

	rr := httptest.NewRecorder()
	h.VerifyLogin(rr, loginRequestBody(`{"email":"agent@bma.example"}`))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["success"] != false {
		t.Errorf("body = %v", body)
	}
	if body["error"] != "Email and password are required" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestVerifyLoginBadCredentials(t *testing.T) {
	h := newAuthHandler(&stubIdentity{err: models.ErrInvalidCredentials})

	rr := httptest.NewRecorder()
	h.VerifyLogin(rr, loginRequestBody(`{"email":"agent@bma.example","password":"wrong"}`))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestVerifyLoginBadBody(t *testing.T) {
	h := newAuthHandler(&stubIdentity{})

	rr := httptest.NewRecorder()
	h.VerifyLogin(rr, loginRequestBody(`{not json`))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}
