package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"faepa_workflow/internal/adapter/http/middleware"
	"faepa_workflow/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// newTestRouter authenticates every request as actor. A zero actor leaves the
// request anonymous.
func newTestRouter(actor entities.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor.ID != "" {
			middleware.SetActor(c, actor)
		}
		c.Next()
	})
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
