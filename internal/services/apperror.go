package services

import "net/http"

// AppError est l'unique type d'erreur métier remonté des services vers
// les handlers : un statut HTTP, un message lisible, et des détails
// optionnels par champ. Tout autre type d'erreur est traité comme une
// erreur interne (500) par la couche route.
type AppError struct {
	Status  int
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func ErrBadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func ErrUnauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

func ErrForbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message)
}

func ErrNotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func ErrConflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}
