package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegister(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ann", "email": "ann@x.com", "password": "p",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	var resp struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	decode(t, w, &resp)
	if resp.ID == 0 || resp.Name != "Ann" || resp.Email != "ann@x.com" {
		t.Errorf("unexpected body: %+v", resp)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, body := range []gin.H{
		{"email": "ann@x.com", "password": "p"},
		{"name": "Ann", "password": "p"},
		{"name": "Ann", "email": "ann@x.com"},
		{},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %v: status %d, want 400", body, w.Code)
		}
		var resp struct {
			Error string `json:"error"`
		}
		decode(t, w, &resp)
		if resp.Error != "Missing required fields" {
			t.Errorf("body %v: error %q", body, resp.Error)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t)

	body := gin.H{"name": "Ann", "email": "ann@x.com", "password": "p"}
	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body); w.Code != http.StatusOK {
		t.Fatalf("first register: status %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second register: status %d, want 400", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decode(t, w, &resp)
	if resp.Error != "User already exists" {
		t.Errorf("error %q, want %q", resp.Error, "User already exists")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAndLogin(t, r, "Ann", "ann@x.com", "p")

	// Wrong password and unknown email answer identically.
	for _, body := range []gin.H{
		{"email": "ann@x.com", "password": "wrong"},
		{"email": "ghost@x.com", "password": "p"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", body)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("body %v: status %d, want 401", body, w.Code)
		}
		var resp struct {
			Error string `json:"error"`
		}
		decode(t, w, &resp)
		if resp.Error != "Invalid credentials" {
			t.Errorf("body %v: error %q", body, resp.Error)
		}
	}
}
