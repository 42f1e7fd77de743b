package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/go-playground/validator/v10"
)

const maxRequestBodySize = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrInvalidJSON):
		return http.StatusBadRequest, e.ErrInvalidJSON.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrValidation):
		// Текст собирается в decodeAndValidate и не содержит внутренних деталей.
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeAndValidate читает JSON-тело в dst и проверяет его теги validate.
// Неразборчивое тело даёт e.ErrInvalidJSON, нарушение правил даёт e.ErrValidation.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: %s must be %s", e.ErrValidation, typeErr.Field, typeErr.Type)
		}
		return e.ErrInvalidJSON
	}

	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", e.ErrValidation, describeValidation(err))
	}

	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonPath(fe.Namespace())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "email":
			parts = append(parts, field+" must be a valid email")
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must be >= %s", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}

	return strings.Join(parts, "; ")
}

// jsonPath отрезает имя корневой структуры: "checkoutRequest.items[0].price" -> "items[0].price".
func jsonPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}

	return namespace
}

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
