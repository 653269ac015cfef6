package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/server/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Addr:     ":8080",
		AdminKey: "test-admin-key",
	}
}

// jsonCtx builds a test context carrying an authenticated uid and a JSON body.
func jsonCtx(w *httptest.ResponseRecorder, method, target, body, uid string) *gin.Context {
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	if uid != "" {
		ctx.Set("uid", uid)
	}
	return ctx
}

func getCtx(w *httptest.ResponseRecorder, uid string) *gin.Context {
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if uid != "" {
		ctx.Set("uid", uid)
	}
	return ctx
}
