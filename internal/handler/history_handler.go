package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// historyHandler lists the generation history, newest first.
func historyHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := deps.History.List(r.Context())
		if err != nil {
			deps.Logger.Error("history list failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "could not read history")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
	}
}
