package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aitech_backend/internal/auth"
	"aitech_backend/internal/middleware"
	"aitech_backend/internal/models"
	"aitech_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

// fakeUserRepo - in-memory репозиторий для тестов охран.
// Считает обращения, чтобы проверять "в БД не ходили".
type fakeUserRepo struct {
	users            map[string]*models.User // по email
	findByEmailCalls int
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	m := make(map[string]*models.User)
	for _, u := range users {
		m[u.Email] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	f.findByEmailCalls++
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (f *fakeUserRepo) Create(user *models.User) error { return nil }
func (f *fakeUserRepo) UpdateRole(userID string, role models.UserRole) (int64, error) {
	return 0, nil
}
func (f *fakeUserRepo) UpdateFired(userID string, fired bool) (int64, error)       { return 0, nil }
func (f *fakeUserRepo) UpdateVerified(userID string, verified bool) (int64, error) { return 0, nil }
func (f *fakeUserRepo) FindByRole(role models.UserRole) ([]models.User, error)     { return nil, nil }
func (f *fakeUserRepo) FindHRAndVerifiedEmployees() ([]models.User, error)         { return nil, nil }

// newGuardedRouter поднимает роутер с одним админским маршрутом
// и одним self-маршрутом
func newGuardedRouter(repo repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := middleware.NewGuard(testSecret, repo)

	r := gin.New()
	r.GET("/admin-only", g.Auth(), g.Admin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/user/admin/:email", g.Auth(), g.Self("email"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestAuth_MissingHeader - без заголовка Authorization: 401,
// и репозиторий не трогается
func TestAuth_MissingHeader(t *testing.T) {
	repo := newFakeUserRepo()
	r := newGuardedRouter(repo)

	w := doRequest(t, r, "/admin-only", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access")
	assert.Equal(t, 0, repo.findByEmailCalls, "без токена обращений к БД быть не должно")
}

// TestAuth_InvalidToken - мусорный токен: 401, БД не трогается
func TestAuth_InvalidToken(t *testing.T) {
	repo := newFakeUserRepo()
	r := newGuardedRouter(repo)

	w := doRequest(t, r, "/admin-only", "garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, repo.findByEmailCalls)
}

// TestRequireRole_Allowed - валидный токен и совпадающая текущая роль
func TestRequireRole_Allowed(t *testing.T) {
	repo := newFakeUserRepo(&models.User{Email: "admin@test.com", Role: models.UserRoleAdmin})
	r := newGuardedRouter(repo)

	token, err := auth.GenerateToken("admin@test.com", testSecret)
	require.NoError(t, err)

	w := doRequest(t, r, "/admin-only", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, repo.findByEmailCalls, "роль проверяется одним запросом к БД")
}

// TestRequireRole_WrongRole - аккаунт есть, но роль не та: 403
func TestRequireRole_WrongRole(t *testing.T) {
	repo := newFakeUserRepo(&models.User{Email: "emp@test.com", Role: models.UserRoleEmployee})
	r := newGuardedRouter(repo)

	token, err := auth.GenerateToken("emp@test.com", testSecret)
	require.NoError(t, err)

	w := doRequest(t, r, "/admin-only", token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access")
}

// TestRequireRole_AccountMissing - токен валиден, аккаунта нет.
// Ответ неотличим от "не та роль".
func TestRequireRole_AccountMissing(t *testing.T) {
	repo := newFakeUserRepo()
	r := newGuardedRouter(repo)

	token, err := auth.GenerateToken("ghost@test.com", testSecret)
	require.NoError(t, err)

	w := doRequest(t, r, "/admin-only", token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access")
}

// TestRequireRole_CurrentState - смена роли в хранилище действует на
// следующем же запросе, токен перевыпускать не нужно
func TestRequireRole_CurrentState(t *testing.T) {
	user := &models.User{Email: "promoted@test.com", Role: models.UserRoleEmployee}
	repo := newFakeUserRepo(user)
	r := newGuardedRouter(repo)

	token, err := auth.GenerateToken("promoted@test.com", testSecret)
	require.NoError(t, err)

	w := doRequest(t, r, "/admin-only", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Повышаем роль "из-под" токена
	user.Role = models.UserRoleAdmin

	w = doRequest(t, r, "/admin-only", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestRequireSelf - чужой email в пути запрещен независимо от роли
func TestRequireSelf(t *testing.T) {
	repo := newFakeUserRepo(&models.User{Email: "a@test.com", Role: models.UserRoleAdmin})
	r := newGuardedRouter(repo)

	token, err := auth.GenerateToken("a@test.com", testSecret)
	require.NoError(t, err)

	w := doRequest(t, r, "/user/admin/b@test.com", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "/user/admin/a@test.com", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
