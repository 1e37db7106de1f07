package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/httpx"
)

func decodeJSON(r *http.Request, v interface{}) error {
	return httpx.DecodeJSON(r.Body, v)
}

func validationDetails(errs validator.ValidationErrors) map[string]string {
	return httpx.ValidationDetails(errs)
}
