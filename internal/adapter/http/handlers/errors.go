package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"eisen_qms/internal/adapter/http/middleware"
	"eisen_qms/internal/domain"
	"eisen_qms/pkg"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

var notFoundCodes = map[string]string{
	"cliente":    "CLIENT_NOT_FOUND",
	"proyecto":   "PROJECT_NOT_FOUND",
	"ticket":     "TICKET_NOT_FOUND",
	"semana":     "WEEK_NOT_FOUND",
	"inspeccion": "INSPECTION_NOT_FOUND",
	"factura":    "INVOICE_NOT_FOUND",
	"pago":       "PAYMENT_NOT_FOUND",
}

func mapError(err error) *pkg.AppError {
	var (
		ve *domain.ValidationError
		se *domain.StateError
		nf *domain.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		return pkg.NewFieldError(ve.Field, ve.Message)
	case errors.As(err, &se):
		return pkg.NewDomainError("INVALID_STATE", se.Error(), err, http.StatusConflict)
	case errors.As(err, &nf):
		code, ok := notFoundCodes[nf.Entity]
		if !ok {
			code = "NOT_FOUND"
		}
		return pkg.NewDomainError(code, nf.Error(), err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondError writes the mapped error. Server errors are logged with their cause
// on the request scoped logger.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		middleware.RequestLogger(c, log).Error("request failed", zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

var registerTagNames sync.Once

// useJSONFieldNames makes validator report the json name of a failing field.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body into dst, writing a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	useJSONFieldNames()
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var (
		fieldErrs validator.ValidationErrors
		ve        *domain.ValidationError
	)
	switch {
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		fe := fieldErrs[0]
		appErr := pkg.NewFieldError(fe.Field(), fmt.Sprintf("failed %q validation", fe.Tag()))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	case errors.As(err, &ve):
		appErr := pkg.NewFieldError(ve.Field, ve.Message)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	default:
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
	}
	return false
}

// bindOptionalJSON is bindJSON for bodies that may be empty.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, dst)
}
