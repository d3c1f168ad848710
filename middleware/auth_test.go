package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"telecare/utils"
)

func authRouter(t *testing.T) *gin.Engine {
	t.Helper()
	mr := miniredis.RunT(t)
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"patientID": c.GetString("patientID")})
	})
	return r
}

func getWhoami(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	r := authRouter(t)

	token, err := utils.GenerateToken("patient-1", "patient", time.Hour)
	require.NoError(t, err)

	w := getWhoami(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	require.Contains(t, w.Body.String(), "patient-1")
}

func TestJWTAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	r := authRouter(t)

	require.Equal(t, http.StatusUnauthorized, getWhoami(r, "").Code)
	require.Equal(t, http.StatusUnauthorized, getWhoami(r, "Bearer ").Code)
	require.Equal(t, http.StatusUnauthorized, getWhoami(r, "Basic abc123").Code)
	require.Equal(t, http.StatusUnauthorized, getWhoami(r, "Bearer not-a-jwt").Code)
}

func TestJWTAuthRejectsSupersededToken(t *testing.T) {
	r := authRouter(t)

	older, err := utils.GenerateToken("patient-1", "patient", time.Hour)
	require.NoError(t, err)
	newer, err := utils.GenerateToken("patient-1", "patient", 2*time.Hour)
	require.NoError(t, err)
	require.NotEqual(t, older, newer)

	// The first sighting caches the newer token's hash for the subject.
	require.Equal(t, http.StatusOK, getWhoami(r, "Bearer "+newer).Code)

	// The older token still has a valid signature but no longer matches the
	// cached hash.
	w := getWhoami(r, "Bearer "+older)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Token mismatch")

	require.Equal(t, http.StatusOK, getWhoami(r, "Bearer "+newer).Code)
}
