package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret-key")

func signToken(t *testing.T, claims *SessionClaims, secret []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("签发测试Token失败: %v", err)
	}
	return signed
}

func validClaims() *SessionClaims {
	return &SessionClaims{
		Email:    "fish@example.com",
		Metadata: map[string]interface{}{"displayName": "安知鱼"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "6f1b7f0a-5f2c-4a8e-9a3d-2b1c8d7e6f50",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestParseAccessToken_合法Token(t *testing.T) {
	tokenStr := signToken(t, validClaims(), testSecret)

	claims, err := ParseAccessToken(tokenStr, testSecret)
	if err != nil {
		t.Fatalf("ParseAccessToken() 意外错误: %v", err)
	}
	if claims.UserID() != "6f1b7f0a-5f2c-4a8e-9a3d-2b1c8d7e6f50" {
		t.Errorf("UserID() = %q", claims.UserID())
	}
	if claims.Email != "fish@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.DisplayName() != "安知鱼" {
		t.Errorf("DisplayName() = %q", claims.DisplayName())
	}
}

func TestParseAccessToken_密钥不匹配(t *testing.T) {
	tokenStr := signToken(t, validClaims(), []byte("other-secret"))

	if _, err := ParseAccessToken(tokenStr, testSecret); err == nil {
		t.Error("密钥不匹配时应返回错误")
	}
}

func TestParseAccessToken_已过期(t *testing.T) {
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	tokenStr := signToken(t, claims, testSecret)

	if _, err := ParseAccessToken(tokenStr, testSecret); err == nil {
		t.Error("过期Token应返回错误")
	}
}

func TestParseAccessToken_用户ID不是UUID(t *testing.T) {
	claims := validClaims()
	claims.Subject = "not-a-uuid"
	tokenStr := signToken(t, claims, testSecret)

	if _, err := ParseAccessToken(tokenStr, testSecret); err == nil {
		t.Error("sub 不是合法UUID时应返回错误")
	}
}

func TestParseAccessToken_空密钥(t *testing.T) {
	tokenStr := signToken(t, validClaims(), testSecret)

	if _, err := ParseAccessToken(tokenStr, nil); err == nil {
		t.Error("空密钥应返回错误")
	}
}

func TestSessionClaims_DisplayName缺失(t *testing.T) {
	claims := &SessionClaims{Email: "fish@example.com"}
	if claims.DisplayName() != "" {
		t.Errorf("无元数据时 DisplayName() = %q, want 空串", claims.DisplayName())
	}
}
