package ez

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-gorm-inventory/internal/core/auth"
	"go-gin-gorm-inventory/internal/domain"
)

type noteIn struct {
	Title string `json:"title" binding:"required,max=5"`
	Tag   string `json:"tag"   binding:"omitempty,oneof=a b"`
}

type noteOut struct {
	Title string `json:"title"`
}

func init() { gin.SetMode(gin.TestMode) }

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAction_JSON(t *testing.T) {
	r := gin.New()
	e := New(r)
	RegisterAction(e, Action[noteIn, noteOut]{
		Method: http.MethodPost, Path: "/notes", Binder: BindJSON,
		Handler: func(c *gin.Context, in *noteIn) (noteOut, error) {
			return noteOut{Title: in.Title}, nil
		},
	})

	w := do(r, http.MethodPost, "/notes", `{"title":"abc"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title":"abc"}`, w.Body.String())

	w = do(r, http.MethodPost, "/notes", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"message":"\"title\" is required"}`, w.Body.String())

	w = do(r, http.MethodPost, "/notes", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(r, http.MethodPost, "/notes", `{"title":"toolong"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `less than or equal to 5 characters`)

	w = do(r, http.MethodPost, "/notes", `{"title":"ok","tag":"z"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `must be one of [a, b]`)

	w = do(r, http.MethodPost, "/notes", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterAction_QueryAndEmpty(t *testing.T) {
	r := gin.New()
	e := New(r)
	RegisterAction(e, Action[domain.PageList, []string]{
		Method: http.MethodGet, Path: "/notes", Binder: BindQuery,
		Handler: func(c *gin.Context, in *domain.PageList) ([]string, error) {
			return []string{fmt.Sprintf("%s/%d/%d", in.SearchString, in.Skip, in.Take)}, nil
		},
	})
	RegisterAction(e, Action[struct{}, struct{}]{
		Method: http.MethodDelete, Path: "/notes/:id", Status: http.StatusNoContent, Empty: true,
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) { return struct{}{}, nil },
	})

	w := do(r, http.MethodGet, "/notes?searchString=x&skip=1&take=2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["x/1/2"]`, w.Body.String())

	w = do(r, http.MethodGet, "/notes?take=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/notes?orderBy=sideways", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "orderBy")

	w = do(r, http.MethodDelete, "/notes/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRegisterAction_ErrorsAndRoles(t *testing.T) {
	var fail error
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role := c.GetHeader("X-Role"); role != "" {
			c.Request = c.Request.WithContext(auth.WithActor(c.Request.Context(), auth.Actor{Email: "a@b.c", Role: role}))
		}
	})
	e := New(r)
	RegisterAction(e, Action[struct{}, *noteOut]{
		Method: http.MethodGet, Path: "/note", Roles: []string{"SYSTEMADMIN"},
		Handler: func(c *gin.Context, _ *struct{}) (*noteOut, error) { return nil, fail },
	})

	req := httptest.NewRequest(http.MethodGet, "/note", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized Access"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/note", nil)
	req.Header.Set("X-Role", "SYSTEMUSER")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	cases := []struct {
		err  error
		code int
		body string
	}{
		{nil, http.StatusOK, `null`},
		{domain.NotFound("x id is not an existing item"), http.StatusBadRequest, `{"message":"x id is not an existing item"}`},
		{errors.New("boom"), http.StatusInternalServerError, `{"message":"boom"}`},
	}
	for _, tc := range cases {
		fail = tc.err
		req = httptest.NewRequest(http.MethodGet, "/note", nil)
		req.Header.Set("X-Role", "SYSTEMADMIN")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.code, w.Code)
		assert.JSONEq(t, tc.body, w.Body.String())
	}
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.Validation("bad"), http.StatusUnprocessableEntity},
		{fmt.Errorf("wrap: %w", domain.ErrUnauthorized), http.StatusUnauthorized},
		{domain.InvalidCredentials("User x doesn't exist."), http.StatusBadRequest},
		{domain.AlreadyExists("dup"), http.StatusBadRequest},
		{domain.InvalidState("already"), http.StatusBadRequest},
		{fmt.Errorf("op: %w", domain.ErrNotFound), http.StatusBadRequest},
		{NotFound("nope"), http.StatusNotFound},
		{Internal("", context.DeadlineExceeded), http.StatusInternalServerError},
		{fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("driver"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusOf(tc.err), tc.err.Error())
	}
}

func TestAErr(t *testing.T) {
	err := Internal("", context.Canceled)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, context.Canceled.Error(), err.Error())
	assert.Equal(t, "action error", (&AErr{}).Error())
}
