package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"sweet-shop/constants"
	"sweet-shop/dto"
	"sweet-shop/models"
	"sweet-shop/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type IAuthService interface {
	Register(input dto.RegisterInput) (*string, *models.User, error)
	Login(email string, password string) (*string, *models.User, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	Logout(tokenString string) error
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
}

func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
	}
}

func (s *AuthService) Register(input dto.RegisterInput) (*string, *models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := strings.TrimSpace(input.Password)
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role == "" {
		role = constants.RoleCustomer
	}

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, nil, errMissingFields(missing)
	}

	if role != constants.RoleAdmin && role != constants.RoleCustomer {
		return nil, nil, ErrInvalidRole
	}
	if !emailPattern.MatchString(email) {
		return nil, nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, nil, ErrWeakPassword
	}

	if _, err := s.repository.FindUser(email); err == nil {
		return nil, nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
		Role:     role,
	}
	createdUser, err := s.repository.CreateUser(user)
	if err != nil {
		// A racing registration can pass the lookup and lose on the unique
		// email constraint; the loser still gets the duplicate answer.
		if isDuplicateKeyError(err) {
			return nil, nil, ErrDuplicateEmail
		}
		return nil, nil, err
	}

	token, err := CreateToken(createdUser)
	if err != nil {
		return nil, nil, err
	}
	return token, createdUser, nil
}

func (s *AuthService) Login(email string, password string) (*string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	// A missing user and a wrong password are indistinguishable to the caller.
	foundUser, err := s.repository.FindUser(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := CreateToken(foundUser)
	if err != nil {
		return nil, nil, err
	}
	return token, foundUser, nil
}

func CreateToken(user *models.User) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"name":  user.Name,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	// parseToken already rejects expired or tampered tokens.
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	isRevoked, err := s.tokenRepository.IsRevoked(hashToken(tokenString))
	if err != nil {
		return nil, err
	}
	if isRevoked {
		return nil, errors.New("token is revoked")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	// The database row, not the claim, is the role authority.
	return s.repository.FindUser(email)
}

func (s *AuthService) Logout(tokenString string) error {
	token, err := parseToken(tokenString)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(time.Hour).Unix()
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = int64(exp)
		}
	}

	if err := s.tokenRepository.PurgeExpired(); err != nil {
		log.Printf("Failed to purge expired tokens: %v", err)
	}
	return s.tokenRepository.Revoke(hashToken(tokenString), expiresAt)
}

func parseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
}

func hashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(sum[:])
}
