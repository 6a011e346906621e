package utils

import (
	"testing"
	"time"

	"github.com/mlevashov/clientdesk/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	clientID := "c1"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, clientID, "Bob", models.RoleClient, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.ClientID != clientID {
		t.Errorf("expected client id %s, got %s", clientID, token.ClientID)
	}
	if token.Role != models.RoleClient {
		t.Errorf("expected role %s, got %s", models.RoleClient, token.Role)
	}

	claims, ok := token.Token.Claims.(*models.SessionClaims)
	if !ok {
		t.Fatal("could not cast claims to SessionClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != clientID {
		t.Errorf("expected subject '%s', got %s", clientID, claims.Subject)
	}
	if claims.Name != "Bob" {
		t.Errorf("expected name 'Bob', got %s", claims.Name)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		clientID string
		role     string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "c1", "client", time.Hour, "key"},
		{"empty client id", "iss", "", "client", time.Hour, "key"},
		{"empty role", "iss", "c1", "", time.Hour, "key"},
		{"zero duration", "iss", "c1", "client", 0, "key"},
		{"empty key", "iss", "c1", "client", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.clientID, "Bob", tt.role, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	minted, err := GenerateJWTToken(issuer, "c1", "Bob", models.RoleAdmin, time.Hour, key)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(minted.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.ClientID != "c1" {
		t.Errorf("expected client id 'c1', got %s", parsed.ClientID)
	}
	if parsed.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %s", parsed.Role)
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	minted, err := GenerateJWTToken(issuer, "c1", "Bob", models.RoleClient, time.Hour, key)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	expired, err := GenerateJWTToken(issuer, "c1", "Bob", models.RoleClient, -time.Hour, key)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong sign key", minted.SignedString, "other-key", issuer},
		{"wrong issuer", minted.SignedString, key, "other-issuer"},
		{"expired token", expired.SignedString, key, issuer},
		{"garbage token", "not.a.token", key, issuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"extra whitespace", "  Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer ", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestParseClientIDFromJWT(t *testing.T) {
	minted, err := GenerateJWTToken("iss", "c42", "Bob", models.RoleClient, time.Hour, "key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	clientID, err := ParseClientIDFromJWT(minted.SignedString)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if clientID != "c42" {
		t.Errorf("expected 'c42', got '%s'", clientID)
	}

	if _, err = ParseClientIDFromJWT("garbage"); err == nil {
		t.Error("expected error for garbage token, got nil")
	}
}
