package middleware

import (
	"Vidstream/internal/model"
	"Vidstream/internal/pkg/security"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func (s *stubUserRepo) GetUserById(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) GetUserByIds(context.Context, []primitive.ObjectID) ([]*model.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetUserByUsername(context.Context, string) (*model.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetUserByEmail(context.Context, string) (*model.User, error) {
	return nil, nil
}

func (s *stubUserRepo) CreateUser(context.Context, *model.User) error { return nil }

func (s *stubUserRepo) UpdateUser(context.Context, *model.User) error { return nil }

func (s *stubUserRepo) UpdateSubscribersCount(context.Context, primitive.ObjectID, int64) error {
	return nil
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *model.User, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	user := &model.User{ID: primitive.NewObjectID(), Username: "alice"}
	repo := &stubUserRepo{users: map[primitive.ObjectID]*model.User{user.ID: user}}

	token, err := security.GenerateToken(user.ID.Hex())
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r := gin.New()
	r.GET("/private", AuthMiddleware(repo), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})
	r.GET("/mixed", AuthOptionalMiddleware(repo), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})
	return r, user, token
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiresToken(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	if w := doRequest(r, "/private", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if w := doRequest(r, "/private", "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with non-bearer scheme, got %d", w.Code)
	}
	if w := doRequest(r, "/private", "Bearer garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with invalid token, got %d", w.Code)
	}
}

func TestAuthPassesValidToken(t *testing.T) {
	r, user, token := setupAuthRouter(t)

	w := doRequest(r, "/private", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", w.Code)
	}
	if w.Body.String() != user.ID.Hex() {
		t.Fatalf("expected user id injected, got %q", w.Body.String())
	}
}

func TestAuthRejectsDeletedUser(t *testing.T) {
	r, user, _ := setupAuthRouter(t)

	// token 指向已不存在的用户
	orphanToken, err := security.GenerateToken(primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	_ = user

	if w := doRequest(r, "/private", "Bearer "+orphanToken); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted user, got %d", w.Code)
	}
}

func TestOptionalAuthAnonymousPasses(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := doRequest(r, "/mixed", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for anonymous, got %d", w.Code)
	}
	if w.Body.String() != "" {
		t.Fatalf("expected no user id for anonymous, got %q", w.Body.String())
	}
}

func TestOptionalAuthRejectsInvalidToken(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	// 带了凭证但无效时不能静默降级成匿名
	if w := doRequest(r, "/mixed", "Bearer garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", w.Code)
	}
}

func TestOptionalAuthPassesValidToken(t *testing.T) {
	r, user, token := setupAuthRouter(t)

	w := doRequest(r, "/mixed", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", w.Code)
	}
	if w.Body.String() != user.ID.Hex() {
		t.Fatalf("expected user id injected, got %q", w.Body.String())
	}
}
