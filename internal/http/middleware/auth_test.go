package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/epicircle/scrap-pickups/internal/model"
)

type parserFunc func(string) (model.Principal, error)

func (f parserFunc) Parse(token string) (model.Principal, error) { return f(token) }

type sessionsFunc func(model.Principal, string) error

func (f sessionsFunc) Authorize(_ context.Context, p model.Principal, token string) error {
	return f(p, token)
}

func newEngine(parser TokenParser, sessions SessionChecker, role model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Auth(parser, sessions), RequireRole(role), func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, principal.Phone)
	})
	return r
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuth(t *testing.T) {
	partner := model.Principal{Phone: "9123456789", Role: model.RolePartner}
	parser := parserFunc(func(token string) (model.Principal, error) {
		if token != "good" {
			return model.Principal{}, errors.New("bad token")
		}
		return partner, nil
	})
	active := sessionsFunc(func(model.Principal, string) error { return nil })
	ended := sessionsFunc(func(model.Principal, string) error { return errors.New("ended") })

	cases := []struct {
		name     string
		sessions SessionChecker
		role     model.Role
		header   string
		status   int
	}{
		{"missing header", active, model.RolePartner, "", http.StatusUnauthorized},
		{"wrong scheme", active, model.RolePartner, "Basic good", http.StatusUnauthorized},
		{"bad token", active, model.RolePartner, "Bearer bad", http.StatusUnauthorized},
		{"ended session", ended, model.RolePartner, "Bearer good", http.StatusUnauthorized},
		{"wrong role", active, model.RoleCustomer, "Bearer good", http.StatusForbidden},
		{"ok", active, model.RolePartner, "Bearer good", http.StatusOK},
		{"lower-case scheme", active, model.RolePartner, "bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(newEngine(parser, tc.sessions, tc.role), tc.header)
			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, partner.Phone, rec.Body.String())
			}
		})
	}
}
