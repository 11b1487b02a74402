package response

import (
	"Vidstream/internal/api/dto"
	"Vidstream/internal/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func runError(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, err)

	body := &dto.Response{}
	if err := json.Unmarshal(w.Body.Bytes(), body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return w, body
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", service.ErrUserNotFound, http.StatusNotFound},
		{"video not found", service.ErrVideoNotFound, http.StatusNotFound},
		{"username conflict", service.ErrUsernameExist, http.StatusUnprocessableEntity},
		{"email conflict", service.ErrEmailExist, http.StatusUnprocessableEntity},
		{"self subscribe", service.ErrSubscribeSelf, http.StatusUnprocessableEntity},
		{"wrong password", service.ErrPasswordIncorrect, http.StatusUnprocessableEntity},
		{"bad token", service.ErrTokenInvalid, http.StatusUnauthorized},
		{"not owner", service.ErrNotOwner, http.StatusForbidden},
		{"unexpected", service.UnExpectedError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := runError(t, tc.err)
			if w.Code != tc.want {
				t.Fatalf("expected HTTP %d, got %d", tc.want, w.Code)
			}
			if body.Code != tc.want {
				t.Fatalf("expected envelope code %d, got %d", tc.want, body.Code)
			}
			if body.Message == "" {
				t.Fatalf("expected message in envelope")
			}
		})
	}
}

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"hello": "world"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := &dto.Response{}
	if err := json.Unmarshal(w.Body.Bytes(), body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != Ok || body.Message != "success" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}
