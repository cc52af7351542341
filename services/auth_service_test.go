package services

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sweet-shop/constants"
	"sweet-shop/dto"
	"sweet-shop/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthService(t *testing.T) IAuthService {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	db := setupTestDB(t)
	return NewAuthService(repositories.NewAuthRepository(db), repositories.NewTokenRepository(db))
}

func TestRegisterIssuesTokenAndRedactedUser(t *testing.T) {
	service := setupAuthService(t)

	token, user, err := service.Register(dto.RegisterInput{
		Name:     "Ann",
		Email:    "  Ann@X.com ",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, token)

	assert.Equal(t, "ann@x.com", user.Email)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, constants.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret1", user.Password)
	assert.NotZero(t, user.ID)

	parsed, err := jwt.Parse(*token, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "ann@x.com", claims["email"])
	assert.Equal(t, constants.RoleCustomer, claims["role"])
	assert.Equal(t, "Ann", claims["name"])
	assert.EqualValues(t, user.ID, claims["sub"])
}

func TestRegisterValidation(t *testing.T) {
	service := setupAuthService(t)

	tests := []struct {
		name    string
		input   dto.RegisterInput
		wantErr error
	}{
		{"invalid role", dto.RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1", Role: "owner"}, ErrInvalidRole},
		{"invalid email", dto.RegisterInput{Name: "Ann", Email: "not-an-email", Password: "secret1"}, ErrInvalidEmail},
		{"weak password", dto.RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "abc"}, ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.Register(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestRegisterMissingFields(t *testing.T) {
	service := setupAuthService(t)

	_, _, err := service.Register(dto.RegisterInput{Email: "ann@x.com"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "Missing required fields: name, password", err.Error())
}

func TestRegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	service := setupAuthService(t)

	_, _, err := service.Register(dto.RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = service.Register(dto.RegisterInput{Name: "Other", Email: "ANN@X.COM", Password: "secret2"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

// A registration losing the race on the email unique constraint must still
// answer with the duplicate-email validation error, not an internal one.
func TestConcurrentRegistersSameEmail(t *testing.T) {
	service := setupAuthService(t)

	const attempts = 6
	var wg sync.WaitGroup
	var successes int64

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := service.Register(dto.RegisterInput{
				Name:     "Ann",
				Email:    "ann@x.com",
				Password: "secret1",
			})
			if err == nil {
				atomic.AddInt64(&successes, 1)
				return
			}
			assert.ErrorIs(t, err, ErrDuplicateEmail)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, successes)
}

func TestLoginDoesNotLeakUserExistence(t *testing.T) {
	service := setupAuthService(t)

	_, _, err := service.Register(dto.RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, wrongPassword := service.Login("ann@x.com", "wrong-password")
	_, _, unknownEmail := service.Login("nobody@x.com", "secret1")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginReturnsSameClaimsShapeAsRegister(t *testing.T) {
	service := setupAuthService(t)

	_, _, err := service.Register(dto.RegisterInput{Name: "Boss", Email: "boss@x.com", Password: "secret1", Role: " Admin "})
	require.NoError(t, err)

	token, user, err := service.Login("boss@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, user.Role)

	fromToken, err := service.GetUserFromToken(*token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fromToken.ID)
	assert.Equal(t, constants.RoleAdmin, fromToken.Role)
}

func TestLogoutRevokesToken(t *testing.T) {
	service := setupAuthService(t)

	token, _, err := service.Register(dto.RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = service.GetUserFromToken(*token)
	require.NoError(t, err)

	require.NoError(t, service.Logout(*token))
	// Logging out twice is fine.
	require.NoError(t, service.Logout(*token))

	_, err = service.GetUserFromToken(*token)
	assert.Error(t, err)
}

func TestGetUserFromTokenRejectsExpired(t *testing.T) {
	service := setupAuthService(t)

	_, user, err := service.Register(dto.RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"name":  user.Name,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(os.Getenv("SECRET_KEY")))
	require.NoError(t, err)

	_, err = service.GetUserFromToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestGetUserFromTokenRejectsTampering(t *testing.T) {
	service := setupAuthService(t)

	token, _, err := service.Register(dto.RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = service.GetUserFromToken(*token + "x")
	assert.Error(t, err)
}
