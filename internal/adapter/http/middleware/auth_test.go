package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"faepa_workflow/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "secret"

func newAuthRouter(roles ...entities.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuth(testSecret, "faepa")}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		actor, _ := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	r.GET("/me", handlers...)
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		if w := doGet(newAuthRouter(), ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token sets actor", func(t *testing.T) {
		token, err := SignToken(testSecret, "faepa", entities.Actor{ID: "u1", Role: entities.RoleFinance})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w := doGet(newAuthRouter(), token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "u1" || body["role"] != "finance" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown role degrades to requester", func(t *testing.T) {
		token, _ := SignToken(testSecret, "faepa", entities.Actor{ID: "u1", Role: "admin"})
		w := doGet(newAuthRouter(), token)
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["role"] != "requester" {
			t.Fatalf("expected requester, got %s", body["role"])
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := SignToken("other", "faepa", entities.Actor{ID: "u1"})
		if w := doGet(newAuthRouter(), token); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, _ := SignToken(testSecret, "someone-else", entities.Actor{ID: "u1"})
		if w := doGet(newAuthRouter(), token); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired", func(t *testing.T) {
		claims := Claims{Role: "finance", RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			Issuer:    "faepa",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		if w := doGet(newAuthRouter(), token); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		token, _ := SignToken(testSecret, "faepa", entities.Actor{Role: entities.RoleFinance})
		if w := doGet(newAuthRouter(), token); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("blank secret rejects forged tokens", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/me", JWTAuth("", "faepa"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		token, _ := SignToken("", "faepa", entities.Actor{ID: "attacker", Role: entities.RoleFinance})
		if w := doGet(r, token); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	r := newAuthRouter(entities.RoleFinance, entities.RoleCoordinator)

	allowed, _ := SignToken(testSecret, "faepa", entities.Actor{ID: "u1", Role: entities.RoleCoordinator})
	if w := doGet(r, allowed); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	denied, _ := SignToken(testSecret, "faepa", entities.Actor{ID: "u1", Role: entities.RolePayingAuthority})
	if w := doGet(r, denied); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":  "abc",
		"bearer  abc": "abc",
		"Basic abc":   "",
		"abc":         "",
		"":            "",
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Fatalf("bearerToken(%q): expected %q, got %q", in, want, got)
		}
	}
}
