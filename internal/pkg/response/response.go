package response

import (
	"Sokdak/internal/api/dto"
	"Sokdak/internal/service"
	stdjson "encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 并在 Location 中返回新资源地址
func Created(c *gin.Context, location string) {
	c.Header("Location", location)
	c.Status(http.StatusCreated)
}

// NoContent 204
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Message: message})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	if isMalformedJSON(err) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	status, target := service.Classify(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
	}
	_ = c.Error(err)
	Fail(c, status, target.Error())
}

func isMalformedJSON(err error) bool {
	var syntaxErr *stdjson.SyntaxError
	var typeErr *stdjson.UnmarshalTypeError
	var goSyntaxErr *json.SyntaxError
	var goTypeErr *json.UnmarshalTypeError
	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.As(err, &goSyntaxErr) || errors.As(err, &goTypeErr)
}
