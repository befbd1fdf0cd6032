package httputil

import (
	"encoding/json"
	"net/http"

	apperrors "pvzadmin/pkg/errors"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse is the 400 body for rejected drafts:
// {"errors":[{"field":...,"message":...}]}.
type ValidationResponse struct {
	Errors []apperrors.FieldError `json:"errors"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.Code == apperrors.CodeValidation && len(appErr.Fields) > 0 {
		WriteJSON(w, appErr.StatusCode(), ValidationResponse{Errors: appErr.Fields})
		return
	}
	WriteJSON(w, appErr.StatusCode(), ErrorResponse{Error: appErr.Message})
}

// WriteSuccess writes the entity or list as the bare response body.
// List endpoints return plain JSON arrays, not an envelope.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func WriteCreatedID(w http.ResponseWriter, id string) {
	WriteJSON(w, http.StatusCreated, CreatedResponse{ID: id})
}

func WriteOK(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}

func WriteInvalidJSON(w http.ResponseWriter) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
}
