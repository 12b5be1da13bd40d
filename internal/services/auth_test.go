package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/goal-achiever-backend/internal/repos"
	"github.com/yungbote/goal-achiever-backend/internal/requestdata"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

func newAuthService(t *testing.T, db *gorm.DB) AuthService {
	t.Helper()
	log := newTestLogger(t)
	// No avatar service in unit tests, registration tolerates its absence.
	return NewAuthService(db, log, repos.NewUserRepo(db, log), nil, "test-secret", time.Hour)
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	db := newTestDB(t)
	as := newAuthService(t, db)

	user := &types.User{Email: "Alice@Example.com", Password: "supersecret"}
	token, err := as.RegisterUser(context.Background(), user)
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.Password == "supersecret" {
		t.Fatalf("password stored in plaintext")
	}

	gotToken, gotUser, err := as.LoginUser(context.Background(), "ALICE@example.com", "supersecret")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if gotToken == "" || gotUser.ID != user.ID {
		t.Fatalf("login returned wrong identity")
	}

	ctx, err := as.SetContextFromToken(context.Background(), gotToken)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		t.Fatalf("request data missing from context")
	}
	if rd.UserID != user.ID {
		t.Fatalf("token resolved to wrong user: %s", rd.UserID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	as := newAuthService(t, db)

	if _, err := as.RegisterUser(context.Background(), &types.User{Email: "bob@example.com", Password: "password1"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := as.RegisterUser(context.Background(), &types.User{Email: "BOB@example.com", Password: "password2"})
	if err == nil {
		t.Fatalf("duplicate email accepted")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	as := newAuthService(t, db)

	cases := []*types.User{
		{Email: "", Password: "password1"},
		{Email: "no-at-sign", Password: "password1"},
		{Email: "short@example.com", Password: "seven77"},
	}
	for i, user := range cases {
		if _, err := as.RegisterUser(context.Background(), user); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	db := newTestDB(t)
	as := newAuthService(t, db)

	if _, err := as.RegisterUser(context.Background(), &types.User{Email: "carol@example.com", Password: "rightpassword"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Both an unknown email and a wrong password read the same from outside.
	_, _, errUnknown := as.LoginUser(context.Background(), "nobody@example.com", "rightpassword")
	_, _, errWrongPass := as.LoginUser(context.Background(), "carol@example.com", "wrongpassword")
	for _, err := range []error{errUnknown, errWrongPass} {
		if err == nil {
			t.Fatalf("expected login failure")
		}
		if !strings.Contains(err.Error(), "Incorrect email or password") {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestSetContextFromTokenRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	as := newAuthService(t, db)

	if _, err := as.SetContextFromToken(context.Background(), "not.a.token"); err == nil {
		t.Fatalf("garbage token accepted")
	}
}

func TestSetContextFromTokenRejectsForeignSecret(t *testing.T) {
	db := newTestDB(t)
	as := newAuthService(t, db)
	other := NewAuthService(db, newTestLogger(t), repos.NewUserRepo(db, newTestLogger(t)), nil, "other-secret", time.Hour)

	user := &types.User{Email: "dave@example.com", Password: "password1"}
	token, err := other.RegisterUser(context.Background(), user)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := as.SetContextFromToken(context.Background(), token); err == nil {
		t.Fatalf("token signed with a different secret accepted")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	as := NewAuthService(db, log, repos.NewUserRepo(db, log), nil, "test-secret", -time.Minute)

	user := &types.User{Email: "eve@example.com", Password: "password1"}
	token, err := as.RegisterUser(context.Background(), user)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := as.SetContextFromToken(context.Background(), token); err == nil {
		t.Fatalf("expired token accepted")
	}
}
