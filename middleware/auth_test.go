package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"farmhub/config"
	"farmhub/models"
	"farmhub/services/user"
	"farmhub/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetAll() ([]models.User, error) { return nil, nil }

func (r *memUserRepo) Create(u *models.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *memUserRepo) UpdateFields(id string, fields bson.M) error {
	u, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if v, ok := fields["tokenHash"]; ok {
		u.TokenHash = v.(string)
	}
	return nil
}

func (r *memUserRepo) Delete(id string) error { return nil }

func (r *memUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.GetByID(id)
}

func (r *memUserRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.User, error) {
	return r.GetByEmail(email)
}

func (r *memUserRepo) SearchByRoleNear(role string, point models.GeoPoint, maxDistance int) ([]models.User, error) {
	return nil, nil
}

func (r *memUserRepo) GetByResetToken(tokenHash string) (*models.User, error) {
	return nil, nil
}

func (r *memUserRepo) SetRating(id string, rating float64, numOfReviews int) error {
	return nil
}

func setupAuthCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := utils.AuthCacheClient
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { utils.AuthCacheClient = prev })
	return mr
}

func authRouter(repo *memUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuthMiddleware(repo))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return router
}

func request(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// A re-login must invalidate the previous session everywhere: the new token
// is honored immediately and the revoked one stops authenticating, even when
// the old session's hash is still sitting in the auth cache.
func TestReloginInvalidatesCachedSession(t *testing.T) {
	mr := setupAuthCache(t)

	repo := newMemUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	repo.Create(&models.User{
		ID:           "user-1",
		Email:        "amina@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleFarmer,
	})

	svc := &user.DefaultUserService{Repo: repo}
	router := authRouter(repo)
	cacheKey := utils.AuthCachePrefix + "user-1"

	prevExpiry := config.AppConfig.JWTExpiresHours
	t.Cleanup(func() { config.AppConfig.JWTExpiresHours = prevExpiry })

	// First session: authenticate and let the middleware populate the cache.
	config.AppConfig.JWTExpiresHours = 1
	_, firstToken, err := svc.Authenticate("amina@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, request(router, firstToken).Code)
	assert.True(t, mr.Exists(cacheKey))

	// Re-login drops the cached entry for the old session. A longer expiry
	// keeps the second token distinct from the first within one second.
	config.AppConfig.JWTExpiresHours = 2
	_, secondToken, err := svc.Authenticate("amina@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, firstToken, secondToken)
	assert.False(t, mr.Exists(cacheKey))

	// The fresh token authenticates right away; the revoked one does not.
	assert.Equal(t, http.StatusOK, request(router, secondToken).Code)
	assert.Equal(t, http.StatusUnauthorized, request(router, firstToken).Code)
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	setupAuthCache(t)
	router := authRouter(newMemUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
