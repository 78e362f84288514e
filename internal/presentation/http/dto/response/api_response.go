package response

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/tradenet-api/pkg/apperror"
	"github.com/sangkips/tradenet-api/pkg/pagination"
)

// Error sends the error body for err. Errors that are not AppErrors are
// logged and reported as a bare 500.
func Error(c *gin.Context, err error) {
	if !apperror.IsAppError(err) {
		log.Error().Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		_ = c.Error(err)
	}
	appErr := apperror.GetAppError(err)
	c.AbortWithStatusJSON(appErr.Code, appErr.Body())
}

// OK sends a 200 OK response
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 No Content response
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated sends one page of items with absolute next/previous links.
func Paginated[T any](c *gin.Context, items []T, params *pagination.PaginationParams, total int64) {
	c.JSON(http.StatusOK, pagination.NewPage(items, params, total, requestURL(c)))
}

func requestURL(c *gin.Context) *url.URL {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return &url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
	}
}
