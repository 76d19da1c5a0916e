package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Wellify-Group/wellify-business-sub000/internal/apierror"
	"github.com/Wellify-Group/wellify-business-sub000/internal/service"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps service-layer sentinel errors to status codes.
// Unknown errors go through c.Error so ErrorHandler logs them as 500s.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Not found"))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid credentials"))
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, apierror.New("Email already registered"))
	case errors.Is(err, service.ErrShiftAlreadyOpen):
		c.JSON(http.StatusConflict, apierror.New("An active shift already exists"))
	case errors.Is(err, service.ErrShiftNotActive):
		c.JSON(http.StatusConflict, apierror.New("Shift is not active"))
	case errors.Is(err, service.ErrNoActiveShift):
		c.JSON(http.StatusConflict, apierror.New("No active shift"))
	case errors.Is(err, service.ErrWrongLocation):
		c.JSON(http.StatusForbidden, apierror.New("Employee is not assigned to this location"))
	default:
		_ = c.Error(err)
	}
}
