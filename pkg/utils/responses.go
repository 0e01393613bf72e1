package utils

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func ResponseSuccess(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func ResponseCreated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func ResponseBadRequest(w http.ResponseWriter, message string, errs interface{}) {
	writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: message, Errors: errs})
}

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{Success: false, Message: message})
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, Response{Success: false, Message: message})
}

func ResponseNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{Success: false, Message: message})
}

func ResponseConflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, Response{Success: false, Message: message})
}

func ResponseUnprocessable(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, Response{Success: false, Message: message})
}

func ResponseServiceUnavailable(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusServiceUnavailable, Response{Success: false, Message: message, Data: data})
}

func ResponseInternalError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Response{Success: false, Message: message})
}
