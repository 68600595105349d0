package validator

import (
	"net/http"
	"strings"

	"app/internal/usecase"
)

// 登録・ログイン共通の入力チェック。
// usecase.CredentialValidatorを実装する
type CredentialValidator struct{}

// DI
func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{}
}

func (v *CredentialValidator) ValidateCredentials(username string, password string) error {
	if strings.TrimSpace(username) == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "username required")
	}
	if len(username) > 64 {
		return usecase.NewHTTPError(http.StatusBadRequest, "username too long")
	}
	if password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "password required")
	}

	// bcryptは72バイトまでしか見ない
	if len(password) > 72 {
		return usecase.NewHTTPError(http.StatusBadRequest, "password too long")
	}
	return nil
}
