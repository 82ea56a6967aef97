package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseOverrides converts the JSON override keys (page indexes arrive as
// strings) into the map the assembler takes. Invalid keys are dropped.
func parseOverrides(raw map[string]string) map[int]string {
	if len(raw) == 0 {
		return nil
	}
	overrides := make(map[int]string, len(raw))
	for k, v := range raw {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 {
			continue
		}
		overrides[idx] = v
	}
	return overrides
}
