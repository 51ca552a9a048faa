package middleware

import (
	"net/http"
	"slices"
	"strings"

	domainerr "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// HeaderActor names the caller when token auth is disabled
const HeaderActor = "X-Actor"

const (
	anonymousActor = "anonymous"
	anyEntity      = "*"
)

// AuthConfig controls bearer token verification
type AuthConfig struct {
	Enabled    bool
	HMACSecret string
	Issuer     string
}

// ActorClaims is the token payload: the subject is the actor recorded on
// overrides and audit entries, Entities the ledgers it may act on
type ActorClaims struct {
	Entities []string `json:"entities,omitempty"`
	jwt.RegisteredClaims
}

// Actor resolves who is calling. With auth enabled an HMAC-signed bearer
// token is required; otherwise the X-Actor header is trusted.
func Actor(cfg AuthConfig, logger coreport.Logger) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			actor := strings.TrimSpace(c.GetHeader(HeaderActor))
			if actor == "" {
				actor = anonymousActor
			}
			c.Set(ContextActor, actor)
			c.Next()
		}
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(opts...)
	secret := []byte(cfg.HMACSecret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		claims := &ActorClaims{}
		token, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			reason := "missing subject"
			if err != nil {
				reason = err.Error()
			}
			logger.Warn("Rejected bearer token", map[string]any{
				"request_id": RequestIDFrom(c),
				"reason":     reason,
			})
			abortUnauthorized(c, "Invalid bearer token")
			return
		}

		c.Set(ContextActor, claims.Subject)
		c.Set(ContextEntityScope, claims.Entities)
		c.Next()
	}
}

// EntityScope rejects requests for an :entityId outside the token's scope.
// A token without an entities claim, or with "*", may act on any entity.
func EntityScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, _ := c.Get(ContextEntityScope)
		entities, _ := scope.([]string)
		if len(entities) == 0 || slices.Contains(entities, anyEntity) {
			c.Next()
			return
		}

		if !slices.Contains(entities, c.Param("entityId")) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Entity is outside the caller's scope",
			})
			return
		}
		c.Next()
	}
}

// ActorFrom returns the resolved caller
func ActorFrom(c *gin.Context) string {
	if actor := c.GetString(ContextActor); actor != "" {
		return actor
	}
	return anonymousActor
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Bearer realm="txn-categorizer"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
		Message: message,
	})
}
