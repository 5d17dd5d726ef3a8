package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UploadResponse is returned after an export archive is ingested. The caller
// distinguishes an empty archive (RecordCount == 0, IsMarkupOnlyExport false)
// from an unsupported HTML export (IsMarkupOnlyExport true) and shows a
// different message for each.
type UploadResponse struct {
	UploadID           string `json:"uploadID"`
	RecordCount        int    `json:"recordCount"`
	SkippedEntries     int    `json:"skippedEntries"`
	AvailableYears     []int  `json:"availableYears"`
	IsMarkupOnlyExport bool   `json:"isMarkupOnlyExport"`
}

// YearsResponse lists the calendar years present in a stored session.
type YearsResponse struct {
	AvailableYears []int `json:"availableYears"`
}

// SendJSONError sends a JSON error response
func SendJSONError(w http.ResponseWriter, statusCode int, err error, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   err.Error(),
		Message: message,
	}

	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		log.Error().Err(encodeErr).Msg("Failed to encode error response")
	}
}

// SendJSONSuccess sends a JSON success response
func SendJSONSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode success response")
	}
}
