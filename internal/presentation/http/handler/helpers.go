package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/domain/enum"
	"github.com/sangkips/tradenet-api/internal/presentation/http/dto/response"
	"github.com/sangkips/tradenet-api/pkg/apperror"
	"github.com/sangkips/tradenet-api/pkg/pagination"
)

// UserKey is the gin context key holding the authenticated *entity.User.
const UserKey = "user"

const (
	msgRequired       = "This field is required."
	msgInvalidInteger = "A valid integer is required."
	msgInvalidPage    = "Invalid page."
)

func init() {
	// Field errors are keyed by json names, as clients send them.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// GetUser returns the authenticated user set by the auth middleware.
func GetUser(c *gin.Context) *entity.User {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}

// bindJSON decodes the body and runs the binding tags. On failure it writes
// the error response and returns false.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		// An empty body is validated like "{}".
		err = binding.Validator.ValidateStruct(req)
	}
	if err != nil {
		response.Error(c, bindingError(err))
		return false
	}
	return true
}

func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := apperror.FieldErrors{}
		for _, fe := range verrs {
			fields.Add(fieldPath(fe), fieldMessage(fe))
		}
		return apperror.NewValidationError(fields)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperror.NewFieldError(typeErr.Field, "Incorrect type.")
	}
	return apperror.NewBadRequestError("JSON parse error - " + err.Error())
}

// fieldPath drops the struct name from the namespace: contact[0].email.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	isList := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "email":
		return "Enter a valid email address."
	case "min":
		if isList {
			if fe.Param() == "1" {
				return "This list may not be empty."
			}
			return fmt.Sprintf("Ensure this field has at least %s elements.", fe.Param())
		}
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		if isList {
			return fmt.Sprintf("Ensure this field has no more than %s elements.", fe.Param())
		}
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	}
	return "Invalid value."
}

// parseIDParam reads the :id path parameter. Malformed ids cannot match any
// row, so they answer 404 like a missing one.
func parseIDParam(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError(resource))
		return uuid.Nil, false
	}
	return id, true
}

// parseID parses a related-object id from the body.
func parseID(field, raw string, fields apperror.FieldErrors) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		fields.Add(field, service.InvalidPKMessage(raw))
		return uuid.Nil, false
	}
	return id, true
}

func parseIDs(field string, raws []string, fields apperror.FieldErrors) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raws))
	for _, raw := range raws {
		id, ok := parseID(field, raw, fields)
		if !ok {
			return nil
		}
		ids = append(ids, id)
	}
	return ids
}

func parseStatus(raw string, fields apperror.FieldErrors) enum.LinkStatus {
	status, err := enum.ParseLinkStatus(raw)
	if err != nil {
		fields.Add("status_link", err.Error())
	}
	return status
}

// bindListQuery binds list filters. A malformed page is a missing page (404);
// any other malformed parameter is a field error.
func bindListQuery(c *gin.Context, obj any) bool {
	if raw, ok := c.GetQuery("page"); ok {
		if _, err := strconv.Atoi(raw); err != nil {
			response.Error(c, apperror.NewAppError(http.StatusNotFound, msgInvalidPage))
			return false
		}
	}
	if raw, ok := c.GetQuery("page_size"); ok {
		if _, err := strconv.Atoi(raw); err != nil {
			response.Error(c, apperror.NewFieldError("page_size", msgInvalidInteger))
			return false
		}
	}
	if err := c.ShouldBindQuery(obj); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return false
	}
	return true
}

func paginationParams(page, pageSize, defaultSize int) *pagination.PaginationParams {
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	p := &pagination.PaginationParams{Page: page, PerPage: pageSize}
	p.Validate()
	return p
}
