package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const MsgInternalError = "Internal server error."

type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success 直接输出数据
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Message 输出提示信息及可选数据
func Message(c *gin.Context, httpStatus int, msg string, data any) {
	c.JSON(httpStatus, Response{
		Message: msg,
		Data:    data,
	})
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{Error: msg})
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{Error: msg})
}

// Redirect 表单类接口统一 303 跳转
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
