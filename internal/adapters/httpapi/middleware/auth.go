package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const (
	// TokenCookie carries the signed login token.
	TokenCookie = "token"
	// LoginURL is where anonymous requests to protected routes are sent.
	LoginURL = "/auth/login/"

	userIDKey = "userID"
)

// TokenParser turns a signed token into the id of the user it was issued to.
type TokenParser interface {
	ParseToken(token string) (uuid.UUID, error)
}

// Authenticate attaches the caller's user id to the context when a valid
// token arrives as the token cookie or a Bearer header. Requests without one
// continue anonymously.
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := tokenFrom(c); raw != "" {
			if id, err := parser.ParseToken(raw); err == nil {
				c.Set(userIDKey, id)
			}
		}
		c.Next()
	}
}

// LoginRequired redirects anonymous requests to the login page, keeping the
// original location in the next parameter.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			c.Redirect(http.StatusFound, LoginRedirect(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRedirect builds the login location for a request to next.
func LoginRedirect(next string) string {
	return LoginURL + "?next=" + url.QueryEscape(next)
}

// UserID returns the authenticated caller, if any.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func tokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
