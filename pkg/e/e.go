package e

import "fmt"

var (
	// Каталог
	ErrProductNotFound       = fmt.Errorf("product not found")
	ErrDataSourceUnavailable = fmt.Errorf("data source unavailable")
	ErrDataSourceEmpty       = fmt.Errorf("data source returned no products")
	ErrInvalidRecord         = fmt.Errorf("invalid product record")
	ErrUnsupportedDatabase   = fmt.Errorf("unsupported database url scheme")

	// Изображения
	ErrBucketNotFound = fmt.Errorf("bucket not found")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidJSON      = fmt.Errorf("request body is not valid json")

	// 422 Unprocessable Entity
	ErrValidation = fmt.Errorf("validation failed")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
