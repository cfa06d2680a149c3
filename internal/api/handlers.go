package api

import (
	"encoding/json"
	"net/http"

	"chartscout/domain/dataset"
	"chartscout/internal/errors"
)

// analyzeRequest mirrors the upstream contract: headers plus raw sample rows.
type analyzeRequest struct {
	Name    string          `json:"name,omitempty"`
	Headers []string        `json:"headers"`
	Rows    [][]interface{} `json:"rows"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("request body must be JSON with headers and rows"))
		return
	}

	name := req.Name
	if name == "" {
		name = "uploaded_sample"
	}
	result, err := s.service.Analyze(r.Context(), &dataset.Dataset{
		Name:    name,
		Headers: req.Headers,
		Rows:    req.Rows,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.RunStatistics())
}

// errorResponse is the JSON shape for failures.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeInsufficientData:
		status = http.StatusUnprocessableEntity
	case errors.CodeTimeout:
		status = http.StatusGatewayTimeout
	}
	writeJSON(w, status, errorResponse{Code: code, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
