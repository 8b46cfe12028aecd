package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"teamdash-backend/internal/config"
	"teamdash-backend/internal/db"
	"teamdash-backend/internal/routes"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:         "test",
		JwtSecret:      "test-secret",
		JwtExpiryHours: 24,
		BootstrapAdmin: true,
		AdminUsername:  "admin",
		AdminPassword:  "admin123",
		AdminEmail:     "admin@company.com",
	}
}

// setupTest wires the real router against an in-memory database named
// after the test, so cases never share state.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	cfg := testConfig()
	require.NoError(t, db.EnsureDefaultAdmin(database, cfg))

	router := gin.New()
	routes.Register(router, database, cfg)
	return router, database
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func loginAs(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, ok := decodeBody(t, w)["access_token"].(string)
	require.True(t, ok)
	return token
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return loginAs(t, router, "admin", "admin123")
}

// registerEmployee creates an employee account through the API and
// returns a logged-in token for it.
func registerEmployee(t *testing.T, router *gin.Engine, admin, username string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/register", admin, gin.H{
		"email":     username + "@company.com",
		"username":  username,
		"full_name": "Test " + username,
		"password":  "password1",
		"role":      "employee",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return loginAs(t, router, username, "password1")
}
