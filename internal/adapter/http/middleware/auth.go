package middleware

import (
	"errors"
	"net/http"
	"strings"

	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

const actorKey = "actor"

var errEmptySecret = errors.New("empty signing secret")

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed for this operation", http.StatusForbidden)
)

// Claims carries the workflow identity. Subject holds the user id.
type Claims struct {
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token and stores the entities.Actor in the context.
// With a blank secret every token is rejected.
func JWTAuth(secret, issuer string) gin.HandlerFunc {
	if strings.TrimSpace(secret) == "" {
		log.Printf("[auth][middleware] no signing secret configured, rejecting all tokens")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			if strings.TrimSpace(secret) == "" {
				return nil, errEmptySecret
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || strings.TrimSpace(claims.Subject) == "" {
			log.Printf("[auth][middleware] invalid token path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(actorKey, entities.Actor{
			ID:    strings.TrimSpace(claims.Subject),
			Name:  claims.Name,
			Email: claims.Email,
			Role:  entities.ParseRole(claims.Role),
		})
		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if ok {
			for _, r := range roles {
				if actor.Role == r {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// SetActor is used by tests and internal callers that authenticate elsewhere.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorKey, actor)
}

// SignToken issues an HS256 token for the actor.
func SignToken(secret, issuer string, actor entities.Actor) (string, error) {
	claims := Claims{
		Role:  string(actor.Role),
		Name:  actor.Name,
		Email: actor.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: actor.ID,
			Issuer:  issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
