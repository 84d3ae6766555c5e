package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/ctxutil"
	"github.com/shoply/admin-backend/internal/pkg/logger"
	"github.com/shoply/admin-backend/internal/services"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

// stubAuthService accepts exactly one token string and returns canned claims
// for it. Everything except ParseAccessToken is unused by the middleware.
type stubAuthService struct {
	validToken string
	subject    string
	email      string
}

func (s *stubAuthService) Register(ctx context.Context, in services.RegisterInput) (*domain.AdminUser, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.AdminUser, services.TokenPair, error) {
	return nil, services.TokenPair{}, errors.New("not implemented")
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (services.TokenPair, error) {
	return services.TokenPair{}, errors.New("not implemented")
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	return errors.New("not implemented")
}

func (s *stubAuthService) ParseAccessToken(tokenString string) (*services.AccessClaims, error) {
	if tokenString != s.validToken {
		return nil, errors.New("signature invalid")
	}
	return &services.AccessClaims{
		Email:            s.email,
		RegisteredClaims: jwt.RegisteredClaims{Subject: s.subject},
	}, nil
}

func (s *stubAuthService) GetAdmin(ctx context.Context, adminID uuid.UUID) (*domain.AdminUser, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) AccessTTL() time.Duration  { return 15 * time.Minute }
func (s *stubAuthService) RefreshTTL() time.Duration { return 24 * time.Hour }

func authProbeRouter(t *testing.T, svc services.AuthService, seen **ctxutil.RequestData) *gin.Engine {
	t.Helper()
	am := NewAuthMiddleware(newTestLogger(t), svc)
	r := gin.New()
	r.Use(am.RequireAuth())
	r.GET("/probe", func(c *gin.Context) {
		*seen = ctxutil.GetRequestData(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAuthRejectsMissingAndInvalidTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adminID := uuid.New()
	svc := &stubAuthService{validToken: "good", subject: adminID.String()}

	cases := []struct {
		name  string
		setup func(req *http.Request)
	}{
		{name: "no token", setup: func(req *http.Request) {}},
		{name: "wrong bearer token", setup: func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer nope")
		}},
		{name: "wrong cookie token", setup: func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "access_token", Value: "nope"})
		}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var seen *ctxutil.RequestData
			r := authProbeRouter(t, svc, &seen)

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
			}
			if seen != nil {
				t.Fatalf("handler ran despite rejected token")
			}
		})
	}
}

func TestRequireAuthAcceptsBearerHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adminID := uuid.New()
	svc := &stubAuthService{validToken: "good", subject: adminID.String(), email: "admin@shoply.example"}

	var seen *ctxutil.RequestData
	r := authProbeRouter(t, svc, &seen)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	if seen == nil {
		t.Fatal("request data missing from handler context")
	}
	if seen.AdminID != adminID {
		t.Fatalf("unexpected admin id: got=%s want=%s", seen.AdminID, adminID)
	}
	if seen.Email != "admin@shoply.example" {
		t.Fatalf("unexpected email: got=%q", seen.Email)
	}
}

func TestRequireAuthAcceptsAccessTokenCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adminID := uuid.New()
	svc := &stubAuthService{validToken: "good", subject: adminID.String()}

	var seen *ctxutil.RequestData
	r := authProbeRouter(t, svc, &seen)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "good"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	if seen == nil || seen.AdminID != adminID {
		t.Fatalf("request data not propagated from cookie token: %+v", seen)
	}
}

func TestRequireAuthRejectsNonUUIDSubject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubAuthService{validToken: "good", subject: "not-a-uuid"}

	var seen *ctxutil.RequestData
	r := authProbeRouter(t, svc, &seen)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
	}
	if seen != nil {
		t.Fatal("handler ran despite malformed subject claim")
	}
}
