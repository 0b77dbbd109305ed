package handlers

import (
	"errors"
	"net/http"

	"trendy_logistics/internal/usecase"
	"trendy_logistics/pkg"
)

// mapUseCaseError translates usecase errors into the HTTP error contract.
// Validation failures map to 400, missing records to 404, everything else
// is an internal error with the original message hidden from the client.
func mapUseCaseError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var notFoundErr *usecase.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		return pkg.NewDomainErrorSimple("NOT_FOUND", notFoundErr.Error(), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
