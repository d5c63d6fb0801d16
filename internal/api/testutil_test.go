package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"smart_cafe/internal/config"
	dbpkg "smart_cafe/internal/db"
	"smart_cafe/internal/domain"
	"smart_cafe/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	redis  *miniredis.Miniredis
	cfg    *config.Config
}

// newTestServer boots the full router against a throwaway sqlite database,
// a miniredis instance and the seeded admin + sample catalog.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@cafe.com",
		AdminPassword: "admin123",
	}
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.AutoMigrate(db))
	require.NoError(t, dbpkg.Seed(db, cfg))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return &testServer{
		router: NewRouter(db, rdb, cfg),
		db:     db,
		redis:  mr,
		cfg:    cfg,
	}
}

func itoa(v uint) string {
	return strconv.Itoa(int(v))
}

// doJSON performs a request with an optional JSON body and bearer token
func (ts *testServer) doJSON(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	ts.router.ServeHTTP(recorder, req)
	return recorder
}

// decode unmarshals a recorded JSON body into a generic map
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// signupUser creates an account through the API and returns its id and token
func (ts *testServer) signupUser(t *testing.T, name, email, password string) (uint, string) {
	t.Helper()
	rec := ts.doJSON(t, "POST", "/api/auth/signup",
		`{"name":"`+name+`","email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, 200, rec.Code, rec.Body.String())
	return ts.login(t, email, password)
}

// login authenticates through the API and returns the user id and token
func (ts *testServer) login(t *testing.T, email, password string) (uint, string) {
	t.Helper()
	rec := ts.doJSON(t, "POST", "/api/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, 200, rec.Code, rec.Body.String())
	body := decode(t, rec)
	user := body["user"].(map[string]any)
	return uint(user["id"].(float64)), body["token"].(string)
}

// adminToken logs in as the seeded admin
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	_, token := ts.login(t, ts.cfg.AdminEmail, ts.cfg.AdminPassword)
	return token
}

// authorityToken creates a food-authority account directly and signs a token
func (ts *testServer) authorityToken(t *testing.T) string {
	t.Helper()
	hash, err := utils.HashPassword("inspector123")
	require.NoError(t, err)
	inspector := domain.User{
		Name:     "Food Inspector",
		Email:    "inspector@authority.gov",
		Password: hash,
		Role:     "food_authority",
	}
	require.NoError(t, ts.db.Create(&inspector).Error)
	token, err := utils.GenerateJWT(inspector.ID, inspector.Role, ts.cfg.JWTSecret)
	require.NoError(t, err)
	return token
}
