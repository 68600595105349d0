package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase/auth"
)

// ログイン失敗はユーザー不在でもパスワード違いでも同じ文言。
// どちらが間違っていたかを外から判別させない
const invalidCredentialsMessage = "invalid username or password"

// usecaseがValidatorInterfaceに依存する約束
type CredentialValidator interface {
	ValidateCredentials(username string, password string) error
}

type AuthUsecase struct {
	users     repo.UserRepository
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	validator CredentialValidator
}

// DI
func NewAuthUsecase(
	users repo.UserRepository,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	validator CredentialValidator,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		hasher:    hasher,
		verifier:  verifier,
		validator: validator,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

// ハッシュは絶対に出さない
type UserOutput struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginOutput struct {
	Message  string `json:"message"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserOutput, error) {
	username := strings.TrimSpace(in.Username)

	if err := u.validator.ValidateCredentials(username, in.Password); err != nil {
		return UserOutput{}, err
	}

	//username重複チェック
	_, err := u.users.FindByUsername(ctx, username)
	if err == nil {
		return UserOutput{}, NewHTTPError(http.StatusConflict, "username already taken")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	// dev用の簡易ルール："admin"という名前だけ管理者になる
	role := model.RoleUser
	if username == "admin" {
		role = model.RoleAdmin
	}

	user := &model.User{
		Username: username,
		Password: hashed,
		Role:     role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return UserOutput{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}, nil
}

func (u *AuthUsecase) Login(ctx context.Context, in RegisterInput) (LoginOutput, error) {
	if err := u.validator.ValidateCredentials(strings.TrimSpace(in.Username), in.Password); err != nil {
		return LoginOutput{}, err
	}

	user, err := u.users.FindByUsername(ctx, strings.TrimSpace(in.Username))
	if errors.Is(err, repo.ErrNotFound) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, invalidCredentialsMessage)
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if ok := u.verifier.Verify(in.Password, user.Password); !ok {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, invalidCredentialsMessage)
	}

	//tokenは発行しない。クライアントがこのペイロードを保持する
	return LoginOutput{
		Message:  "login successful",
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}, nil
}
