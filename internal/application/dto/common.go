package dto

import "github.com/jhoicas/menu-api/pkg/validation"

// ErrorResponse cuerpo de error HTTP: status fijo "error", mensaje y, para errores
// de validación, la lista de errores por campo.
type ErrorResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// Error construye un ErrorResponse simple.
func Error(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}

// ValidationError construye un ErrorResponse con errores por campo.
func ValidationError(errs []validation.FieldError) ErrorResponse {
	return ErrorResponse{Status: "error", Message: "Validation Error", Errors: errs}
}

// StatusResponse cuerpo de éxito simple {status, message} (ping, delete).
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
