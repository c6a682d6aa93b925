package auth

import (
	"testing"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/config"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "s3cret" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "op@example.com", "Ada", "L")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "user-1" || claims.Email != "op@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestInviteTokenRoundTrip(t *testing.T) {
	token, err := GenerateInviteToken("invitee@example.com")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateInviteToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Email != "invitee@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestInviteTokenTamperedSignature(t *testing.T) {
	token, err := GenerateInviteToken("invitee@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateInviteToken(token + "x"); err == nil {
		t.Fatal("tampered token accepted")
	}
}
