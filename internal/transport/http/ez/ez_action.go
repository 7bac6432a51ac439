package ez

import (
	"errors"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"go-gin-gorm-inventory/internal/core/auth"
	resp "go-gin-gorm-inventory/internal/transport/http/response"
)

// EZ 路由分组的轻封装
type EZ struct{ g gin.IRoutes }

func New(g gin.IRoutes) EZ { return EZ{g: g} }

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string   // "GET" | "POST" | "PUT" | "DELETE"
	Path    string   // 例："/login"、"/:id"
	Binder  Binder   // 绑定方式
	Status  int      // 成功状态码，默认 200
	Empty   bool     // 成功时不返回 body
	Roles   []string // 限定角色（可选）
	Handler func(c *gin.Context, in *I) (O, error)
}

// 入参自校验（如分页排序方向）
type checker interface {
	Valid() bool
}

// RegisterAction 在当前 EZ 下注册动作接口
func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}

	h := func(c *gin.Context) {
		// 1) 角色
		if len(a.Roles) > 0 {
			actor, ok := auth.ActorFrom(c.Request.Context())
			if !ok {
				Fail(c, resp.CodeUnauthorized, "")
				return
			}
			if !slices.Contains(a.Roles, actor.Role) {
				Fail(c, resp.CodeForbidden, "")
				return
			}
		}

		// 2) 绑定入参
		var in I
		var err error
		switch a.Binder {
		case BindJSON:
			err = c.ShouldBindJSON(&in)
			if errors.Is(err, io.EOF) {
				// 空 body 按 {} 处理，交给校验报字段缺失
				err = binding.Validator.ValidateStruct(&in)
			}
		case BindQuery:
			err = c.ShouldBindQuery(&in)
			if ck, ok := any(&in).(checker); err == nil && ok && !ck.Valid() {
				err = BadRequest(`"orderBy" must be one of [asc, desc]`)
			}
		default: // BindNone: 不绑定
		}
		if err != nil {
			code, msg := bindError(err)
			Fail(c, code, msg)
			return
		}

		// 3) 执行
		out, err := a.Handler(c, &in)
		if err != nil {
			code := StatusOf(err)
			if code >= http.StatusInternalServerError {
				_ = c.Error(err)
			}
			Fail(c, code, err.Error())
			return
		}
		if a.Empty {
			c.Status(status)
			return
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}

// Fail 终止并写出错误体
func Fail(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, resp.Error(code, msg))
}
