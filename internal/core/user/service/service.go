package userapp

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"yatube/internal/config"
	"yatube/internal/core/errs"
	userEntity "yatube/internal/core/user"
	userPort "yatube/internal/ports/user"
)

const (
	tokenIssuer   = "yatube"
	tokenLifetime = 24 * time.Hour

	maxUsernameLength = 150
)

// Usernames are letters, digits and @.+-_ so every one is a single path segment.
var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// UserService registers users and issues the tokens that identify them.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
	bcryptCost     int
	now            func() time.Time
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
		bcryptCost:     bcrypt.DefaultCost,
		now:            time.Now,
	}
}

// WithBcryptCost lowers hashing cost, for tests and seeding.
func (s *UserService) WithBcryptCost(cost int) *UserService {
	s.bcryptCost = cost
	return s
}

// LoginUser checks the password and returns a signed token.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		config.Logger.Info("Login rejected", zap.String("username", username))
		return nil, errs.ErrInvalidCredentials
	}

	return s.IssueToken(user)
}

// IssueToken signs a token whose subject is the user id.
func (s *UserService) IssueToken(user *userEntity.User) (*userPort.LoginResponse, error) {
	expiresAt := s.now().Add(tokenLifetime).Unix()
	claims := &jwt.StandardClaims{
		Subject:   user.ID.String(),
		Issuer:    tokenIssuer,
		IssuedAt:  s.now().Unix(),
		ExpiresAt: expiresAt,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}
	return &userPort.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// ParseToken returns the user id carried by a valid token.
func (s *UserService) ParseToken(token string) (uuid.UUID, error) {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, errs.ErrUnauthorized
	}
	if claims.Issuer != tokenIssuer {
		return uuid.Nil, errs.ErrUnauthorized
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.ErrUnauthorized
	}
	return id, nil
}

// RegisterUser creates an account with a hashed password.
func (s *UserService) RegisterUser(ctx context.Context, username, firstName, lastName, password string) (*userPort.UserDTO, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.Invalid("username", "This field is required.")
	}
	if !usernamePattern.MatchString(username) || strings.Trim(username, ".") == "" {
		return nil, errs.Invalid("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return nil, errs.Invalid("username", "Ensure this value has at most 150 characters.")
	}
	if password == "" {
		return nil, errs.Invalid("password", "This field is required.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		ID:        uuid.Must(uuid.NewV4()),
		Username:  username,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Password:  string(hashed),
	})
	if err != nil {
		return nil, err
	}

	config.Logger.Info("User registered", zap.String("username", u.Username))
	return userPort.ToDTO(u), nil
}

// GetByUsername resolves a username, failing with errs.ErrNotFound.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*userEntity.User, error) {
	return s.UserRepository.FindByUsername(ctx, username)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error) {
	return s.UserRepository.FindByID(ctx, id)
}
