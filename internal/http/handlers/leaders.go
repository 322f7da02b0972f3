package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nfl-stats-service/internal/app/leaders"
	"github.com/preston-bernstein/nfl-stats-service/internal/logging"
)

const leadersCacheControl = "public, max-age=300"

// Leaders serves the ranked leader list for one stat type.
func (h *Handler) Leaders(w nethttp.ResponseWriter, r *nethttp.Request) {
	statType := chi.URLParam(r, "stat_type")

	// Unparseable n falls through to the service default.
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	resp, err := h.leaders.Leaders(r.Context(), statType, n)
	if errors.Is(err, leaders.ErrUnknownCategory) {
		writeStatusMessage(w, nethttp.StatusNotFound, fmt.Sprintf("Stat type '%s' not found.", statType), h.logger)
		return
	}
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "leaders lookup failed", err,
			slog.String(logging.FieldStatType, statType),
		)
		writeStatusMessage(w, nethttp.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	w.Header().Set("Cache-Control", leadersCacheControl)
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}
