package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/bingo-backend/internal/config"
	"github.com/iliyamo/bingo-backend/internal/middleware"
	"github.com/iliyamo/bingo-backend/internal/model"
	"github.com/iliyamo/bingo-backend/internal/repository"
)

// ----- fakes -----

type fakeUserStore struct {
	users  map[uint64]model.User
	nextID uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint64]model.User{}, nextID: 1}
}

func (s *fakeUserStore) Create(ctx context.Context, username, passwordHash string) (uint64, error) {
	for _, u := range s.users {
		if u.Username == username {
			return 0, repository.ErrUsernameExists
		}
	}
	id := s.nextID
	s.nextID++
	s.users[id] = model.User{ID: id, Username: username, PasswordHash: passwordHash}
	return id, nil
}

func (s *fakeUserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *fakeUserStore) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func testCfg() config.Config {
	return config.Config{
		JWTSecret:     "test-secret",
		TokenTTLHours: 24,
		BcryptCost:    bcrypt.MinCost,
	}
}

func postJSON(e *echo.Echo, path, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

// ----- tests -----

func TestSignup_CreatesUser(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(testCfg(), newFakeUserStore())
	e := echo.New()

	rec, c := postJSON(e, "/api/auth/signup", `{"username":"alice","password":"secret1"}`)
	require.NoError(t, h.Signup(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User struct {
			ID       uint64 `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "alice", resp.User.Username)
	require.NotZero(t, resp.User.ID)

	// The response must never carry the stored hash.
	require.NotContains(t, rec.Body.String(), "$2")
}

func TestSignup_DuplicateUsername(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	h := NewAuthHandler(testCfg(), store)
	e := echo.New()

	_, c := postJSON(e, "/api/auth/signup", `{"username":"alice","password":"secret1"}`)
	require.NoError(t, h.Signup(c))

	rec, c := postJSON(e, "/api/auth/signup", `{"username":"alice","password":"other"}`)
	require.NoError(t, h.Signup(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "already registered")
	require.Len(t, store.users, 1)
}

func TestSignup_MissingFields(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(testCfg(), newFakeUserStore())
	e := echo.New()

	rec, c := postJSON(e, "/api/auth/signup", `{"username":"","password":""}`)
	require.NoError(t, h.Signup(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(testCfg(), newFakeUserStore())
	e := echo.New()

	rec, c := postJSON(e, "/api/auth/login", `{"username":"ghost","password":"boo"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "does not exist")
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(testCfg(), newFakeUserStore())
	e := echo.New()

	_, c := postJSON(e, "/api/auth/signup", `{"username":"alice","password":"secret1"}`)
	require.NoError(t, h.Signup(c))

	rec, c := postJSON(e, "/api/auth/login", `{"username":"alice","password":"nope"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "wrong password")
}

func TestLogin_SetsHttpOnlyCookie(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(testCfg(), newFakeUserStore())
	e := echo.New()

	_, c := postJSON(e, "/api/auth/signup", `{"username":"alice","password":"secret1"}`)
	require.NoError(t, h.Signup(c))

	rec, c := postJSON(e, "/api/auth/login", `{"username":"alice","password":"secret1"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "token", cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
}

// Signup, then login, then call the protected user endpoint with the
// returned bearer token.
func TestSignupLoginWhoAmI(t *testing.T) {
	t.Parallel()

	cfg := testCfg()
	h := NewAuthHandler(cfg, newFakeUserStore())
	e := echo.New()

	_, c := postJSON(e, "/api/auth/signup", `{"username":"alice","password":"secret1"}`)
	require.NoError(t, h.Signup(c))

	rec, c := postJSON(e, "/api/auth/login", `{"username":"alice","password":"secret1"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	guarded := middleware.JWTAuth(cfg.JWTSecret)(h.Me)
	require.NoError(t, guarded(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var meResp struct {
		User struct {
			ID       uint64 `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meResp))
	require.Equal(t, "alice", meResp.User.Username)
	require.NotZero(t, meResp.User.ID)
}

func TestMe_UserGone(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(testCfg(), newFakeUserStore())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(99)) // token subject with no matching row

	require.NoError(t, h.Me(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "user not found")
}

func TestLogout_ClearsCookie(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(testCfg(), newFakeUserStore())
	e := echo.New()

	rec, c := postJSON(e, "/api/auth/logout", "")
	require.NoError(t, h.Logout(c))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "token", cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}
