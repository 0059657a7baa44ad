package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	jwtMocks "frontdesk/infras/jwt/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/permissions"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const routeTable = `{"endpoints":[
	{"path":"/v1/auth/login","method":"POST","skip":true},
	{"path":"/v1/sync/pull","method":"POST","roles":["SUPERADMIN","ADMIN"]},
	{"path":"/v1/stays/{id}/checkout","method":"POST","roles":["RECEPTIONIST","MANAGER"]}
]}`

func newRouter(t *testing.T, mockJWT *jwtMocks.MockJWT) http.Handler {
	t.Helper()

	table, err := permissions.Parse([]byte(routeTable))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.APIKey = "sync-peer-key"

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, mocks.NewOtel(), table, cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		login, _ := r.Context().Value(constant.ContextKeyLoginID).(string)
		w.Header().Set("X-Login", login)
		w.WriteHeader(http.StatusNoContent)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		r.Post("/auth/login", ok)
		r.Post("/sync/pull", ok)
		r.Post("/stays/{id}/checkout", ok)
		r.Get("/rooms", ok)
	})

	return router
}

func TestAuthRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	router := newRouter(t, mockJWT)

	claims := func(loginID, role string) *jwt.Claims {
		return &jwt.Claims{UserID: "SUP-" + loginID, LoginID: loginID, Role: role, Type: jwt.AccessToken}
	}

	tests := []struct {
		name      string
		method    string
		path      string
		headers   map[string]string
		setupMock func()
		wantCode  int
		wantLogin string
	}{
		{
			name:     "public login needs no token",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "missing token",
			method:   http.MethodGet,
			path:     "/v1/rooms",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "expired token",
			method:  http.MethodGet,
			path:    "/v1/rooms",
			headers: map[string]string{"Authorization": "Bearer stale"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("stale", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "unlisted route admits any staff",
			method:  http.MethodGet,
			path:    "/v1/rooms",
			headers: map[string]string{"Authorization": "Bearer t1"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("t1", jwt.AccessToken).Return(claims("housekeeping", "SUPERVISOR"), nil)
			},
			wantCode:  http.StatusNoContent,
			wantLogin: "housekeeping",
		},
		{
			name:    "receptionist checks out",
			method:  http.MethodPost,
			path:    "/v1/stays/B-ab12c/checkout",
			headers: map[string]string{"Authorization": "Bearer t2"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("t2", jwt.AccessToken).Return(claims("reception", "RECEPTIONIST"), nil)
			},
			wantCode:  http.StatusNoContent,
			wantLogin: "reception",
		},
		{
			name:    "receptionist cannot pull",
			method:  http.MethodPost,
			path:    "/v1/sync/pull",
			headers: map[string]string{"Authorization": "Bearer t3"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("t3", jwt.AccessToken).Return(claims("reception", "RECEPTIONIST"), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "api key bypasses staff auth",
			method:   http.MethodPost,
			path:     "/v1/sync/pull",
			headers:  map[string]string{"X-API-Key": "sync-peer-key"},
			wantCode: http.StatusNoContent,
		},
		{
			name:     "wrong api key",
			method:   http.MethodPost,
			path:     "/v1/sync/pull",
			headers:  map[string]string{"X-API-Key": "guess"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLogin, rec.Header().Get("X-Login"))
		})
	}
}
