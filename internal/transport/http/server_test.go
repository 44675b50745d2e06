package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"milesalone/internal/config"
	"milesalone/internal/domain/models"
	"milesalone/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateSession(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Profile() models.AdminProfile {
	args := m.Called()
	return args.Get(0).(models.AdminProfile)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) GetJourney(ctx context.Context) (*models.JourneyTracking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JourneyTracking), args.Error(1)
}

func (m *MockContentService) UpdateJourney(ctx context.Context, req dto.UpsertJourneyRequest) (*models.JourneyTracking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JourneyTracking), args.Error(1)
}

func (m *MockContentService) GetHomeContent(ctx context.Context) (*models.HomePageContent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomePageContent), args.Error(1)
}

func (m *MockContentService) UpdateHomeContent(ctx context.Context, req dto.UpsertHomeContentRequest) (*models.HomePageContent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomePageContent), args.Error(1)
}

type MockInboxService struct {
	mock.Mock
}

func (m *MockInboxService) Subscribe(ctx context.Context, req dto.SubscribeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockInboxService) SaveMessage(ctx context.Context, req dto.ContactRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockInboxService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockInboxService) MarkRead(ctx context.Context, msgID uuid.UUID) (*models.ContactMessage, error) {
	args := m.Called(ctx, msgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) AdminStats(ctx context.Context) dto.AdminStatsResponse {
	args := m.Called(ctx)
	return args.Get(0).(dto.AdminStatsResponse)
}

type testEnv struct {
	e       *echo.Echo
	routers *Routers
	auth    *MockAuthService
	content *MockContentService
	inbox   *MockInboxService
	stats   *MockStatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	auth := new(MockAuthService)
	content := new(MockContentService)
	inbox := new(MockInboxService)
	stats := new(MockStatsService)

	routers := NewRouter(
		slog.Default(),
		config.SessionConfig{Secret: "test-secret", TTL: time.Hour},
		nil, nil, nil, nil,
		content,
		stats,
		inbox,
		auth,
	)

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))

	e.POST("/api/auth/login", routers.Login)
	e.POST("/api/auth/logout", routers.Logout)
	e.GET("/api/auth/user", routers.AuthUser)
	e.GET("/api/journey", routers.GetJourney)
	e.POST("/api/newsletter/subscribe", routers.Subscribe)
	e.GET("/api/admin/stats", routers.AdminStats, routers.RequireAdmin)

	return &testEnv{e: e, routers: routers, auth: auth, content: content, inbox: inbox, stats: stats}
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestLogin(t *testing.T) {
	t.Run("successful login sets session cookie", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("Login", mock.Anything, "admins", "Travel@2025").
			Return("token-1", nil).Once()

		rec := env.do(loginRequest(`{"username":"admins","password":"Travel@2025"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Login successful"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Result().Cookies())
		env.auth.AssertExpectations(t)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("Login", mock.Anything, "admins", "wrong").
			Return("", assert.AnError).Once()

		rec := env.do(loginRequest(`{"username":"admins","password":"wrong"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid username or password"}`, rec.Body.String())
		env.auth.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(loginRequest(`{"username":"admins"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid request format"}`, rec.Body.String())
		env.auth.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(loginRequest(`not json`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env.auth.AssertExpectations(t)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		env := newTestEnv(t)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		rec := env.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Authentication required"}`, rec.Body.String())
	})

	t.Run("live session reaches handler", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("Login", mock.Anything, "admins", "Travel@2025").
			Return("token-1", nil).Once()
		env.auth.On("ValidateSession", mock.Anything, "token-1").
			Return(true, nil).Once()
		env.stats.On("AdminStats", mock.Anything).
			Return(dto.AdminStatsResponse{TotalPosts: 3, TotalDestinations: 2, TotalGalleries: 1, TotalPins: 5}).Once()

		loginRec := env.do(loginRequest(`{"username":"admins","password":"Travel@2025"}`))
		require.Equal(t, http.StatusOK, loginRec.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		for _, cookie := range loginRec.Result().Cookies() {
			req.AddCookie(cookie)
		}
		rec := env.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"totalPosts":3,"totalDestinations":2,"totalGalleries":1,"totalPins":5}`, rec.Body.String())
		env.auth.AssertExpectations(t)
		env.stats.AssertExpectations(t)
	})

	t.Run("stale session token", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("Login", mock.Anything, "admins", "Travel@2025").
			Return("token-1", nil).Once()
		env.auth.On("ValidateSession", mock.Anything, "token-1").
			Return(false, nil).Once()

		loginRec := env.do(loginRequest(`{"username":"admins","password":"Travel@2025"}`))
		require.Equal(t, http.StatusOK, loginRec.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		for _, cookie := range loginRec.Result().Cookies() {
			req.AddCookie(cookie)
		}
		rec := env.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env.auth.AssertExpectations(t)
	})
}

func TestAuthUser(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		env := newTestEnv(t)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		rec := env.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Not authenticated"}`, rec.Body.String())
	})

	t.Run("authenticated", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("Login", mock.Anything, "admins", "Travel@2025").
			Return("token-1", nil).Once()
		env.auth.On("ValidateSession", mock.Anything, "token-1").
			Return(true, nil).Once()
		env.auth.On("Profile").
			Return(models.AdminProfile{ID: "admin", Name: "Administrator", Username: "admins"}).Once()

		loginRec := env.do(loginRequest(`{"username":"admins","password":"Travel@2025"}`))
		require.Equal(t, http.StatusOK, loginRec.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
		for _, cookie := range loginRec.Result().Cookies() {
			req.AddCookie(cookie)
		}
		rec := env.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"admin"`)
		assert.Contains(t, rec.Body.String(), `"name":"Administrator"`)
		env.auth.AssertExpectations(t)
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := env.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Logged out successfully"}`, rec.Body.String())
}

func TestGetJourney(t *testing.T) {
	t.Run("unset journey renders empty object", func(t *testing.T) {
		env := newTestEnv(t)
		env.content.On("GetJourney", mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/journey", nil)
		rec := env.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
		env.content.AssertExpectations(t)
	})

	t.Run("existing journey", func(t *testing.T) {
		env := newTestEnv(t)
		env.content.On("GetJourney", mock.Anything).Return(&models.JourneyTracking{
			ID:              uuid.New(),
			CurrentLocation: "Srinagar, Kashmir",
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/journey", nil)
		rec := env.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"currentLocation":"Srinagar, Kashmir"`)
		env.content.AssertExpectations(t)
	})
}

func TestSubscribe(t *testing.T) {
	t.Run("successful subscribe", func(t *testing.T) {
		env := newTestEnv(t)
		env.inbox.On("Subscribe", mock.Anything, dto.SubscribeRequest{Email: "reader@example.com"}).
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe",
			strings.NewReader(`{"email":"reader@example.com"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := env.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Successfully subscribed to newsletter"}`, rec.Body.String())
		env.inbox.AssertExpectations(t)
	})

	t.Run("invalid email", func(t *testing.T) {
		env := newTestEnv(t)

		req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe",
			strings.NewReader(`{"email":"not-an-email"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := env.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env.inbox.AssertExpectations(t)
	})
}
