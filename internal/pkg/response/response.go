package response

import (
	stdjson "encoding/json"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"osohub/internal/api/dto"
	"osohub/internal/service"
)

// Success 成功返回，直接回显实体
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// NoContent 删除成功且不回显
func NoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorDTO{Detail: message})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, service.UnprocessableEntity, err.Error())
		return
	}

	// gin 默认走 encoding/json，换 go_json 编译标签时才是 goccy 的类型
	var stdTypeError *stdjson.UnmarshalTypeError
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &stdTypeError) || errors.As(err, &typeError) {
		Fail(c, service.BadRequest, "Malformed JSON body")
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		status = service.InternalServerError
		log.ErrorContext(c.Request.Context(), "unexpected error", "err", err)
		Fail(c, status, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}
