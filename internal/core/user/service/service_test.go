package userapp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"yatube/internal/adapters/database"
	"yatube/internal/adapters/database/dbtest"
	"yatube/internal/core/errs"
)

func newService(t *testing.T) *UserService {
	repo := database.NewUserRepositoryDatabase(dbtest.New(t))
	return NewUserService(repo, []byte("test-secret")).WithBcryptCost(bcrypt.MinCost)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	dto, err := s.RegisterUser(ctx, "leo", "Leo", "Tolstoy", "war-and-peace")
	require.NoError(t, err)
	assert.Equal(t, "leo", dto.Username)
	assert.Equal(t, "Leo Tolstoy", dto.FullName)

	res, err := s.LoginUser(ctx, "leo", "war-and-peace")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	id, err := s.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, dto.ID, id.String())
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.RegisterUser(ctx, "leo", "", "", "pw")
	require.NoError(t, err)
	_, err = s.RegisterUser(ctx, "leo", "", "", "other")
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestRegisterValidates(t *testing.T) {
	s := newService(t)

	_, err := s.RegisterUser(context.Background(), "  ", "", "", "pw")
	assert.True(t, errs.IsValidation(err))
	_, err = s.RegisterUser(context.Background(), "leo", "", "", "")
	assert.True(t, errs.IsValidation(err))
}

func TestLoginFailures(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	_, err := s.RegisterUser(ctx, "leo", "", "", "pw")
	require.NoError(t, err)

	_, err = s.LoginUser(ctx, "leo", "wrong")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	_, err = s.LoginUser(ctx, "ghost", "pw")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestParseTokenRejects(t *testing.T) {
	s := newService(t)
	other := NewUserService(nil, []byte("other-secret"))

	foreign, err := other.IssueToken(testUser())
	require.NoError(t, err)
	_, err = s.ParseToken(foreign.Token)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = s.ParseToken("not-a-token")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	s.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := s.IssueToken(testUser())
	require.NoError(t, err)
	s.now = time.Now
	_, err = s.ParseToken(expired.Token)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &jwt.StandardClaims{Subject: uuid.Must(uuid.NewV4()).String(), Issuer: tokenIssuer})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.ParseToken(unsigned)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestRegisterRejectsUnroutableUsernames(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	for _, name := range []string{"a/b", "../follow", "x?y", "with space", "50%", "..", strings.Repeat("a", 151)} {
		_, err := s.RegisterUser(ctx, name, "", "", "pw")
		assert.True(t, errs.IsValidation(err), name)
	}

	for _, name := range []string{"leo.t", "anna@yatube", "a+b-c_d", "Лев"} {
		_, err := s.RegisterUser(ctx, name, "", "", "pw")
		assert.NoError(t, err, name)
	}
}
