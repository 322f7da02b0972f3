package handlers

import (
	"bytes"
	"html/template"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nfl-stats-service/internal/logging"
	"github.com/preston-bernstein/nfl-stats-service/internal/statspanel"
)

const (
	defaultDashboardStat = "passing_yards"
	resultsElementID     = "results"
	liveWriteWait        = 10 * time.Second
)

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>NFL Stats Dashboard</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
nav a { margin-right: .75rem; }
nav a.active { font-weight: bold; }
table { border-collapse: collapse; margin-top: 1rem; }
th, td { border: 1px solid #ccc; padding: .3rem .6rem; text-align: left; }
</style>
</head>
<body>
<h1>NFL {{.Title}} Leaders</h1>
<nav>{{range .Categories}}<a href="/dashboard?stat={{.Key}}"{{if eq .Key $.Selected}} class="active"{{end}}>{{.Key}}</a>{{end}}</nav>
<div id="{{.ElementID}}" data-stat="{{.Selected}}">{{.Content}}</div>
<button id="refresh" type="button">Refresh</button>
<script>
(function () {
  var results = document.getElementById({{.ElementID}});
  document.getElementById("refresh").addEventListener("click", function () {
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(scheme + location.host + "/dashboard/live?stat=" + encodeURIComponent(results.dataset.stat));
    ws.onmessage = function (ev) { results.innerHTML = ev.data; };
  });
})();
</script>
</body>
</html>
`))

type dashboardPage struct {
	Title      string
	Selected   string
	ElementID  string
	Categories []stats.Category
	Content    any
}

// Dashboard runs one panel cycle against the leaders API and serves the page
// embedding the results element's final content.
func (h *Handler) Dashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	cat, ok := h.dashboardCategory(w, r)
	if !ok {
		return
	}

	el := statspanel.NewElement(resultsElementID, nil)
	ctrl := h.panel(el, cat)
	err := ctrl.LoadAndRender(r.Context())

	var content any = template.HTML(el.Content())
	if err != nil {
		// Failure text is plain; escape it on the way into the page.
		content = el.Content()
	}

	var buf bytes.Buffer
	page := dashboardPage{
		Title:      strings.ReplaceAll(cat.Key, "_", " "),
		Selected:   cat.Key,
		ElementID:  resultsElementID,
		Categories: h.leaders.Catalog().Categories(),
		Content:    content,
	}
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "dashboard render failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "dashboard render failed", h.logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// DashboardLive upgrades to a websocket and streams each panel write as a text message.
func (h *Handler) DashboardLive(w nethttp.ResponseWriter, r *nethttp.Request) {
	cat, ok := h.dashboardCategory(w, r)
	if !ok {
		return
	}

	logger := loggerFromContext(r, h.logger)
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		logging.Warn(logger, "dashboard upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	var writeErr error
	target := statspanel.TargetFunc(func(content string) {
		if writeErr != nil {
			return
		}
		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		writeErr = conn.WriteMessage(websocket.TextMessage, []byte(content))
	})

	_ = h.panel(target, cat).LoadAndRender(r.Context())
	if writeErr != nil {
		logging.Warn(logger, "dashboard live write failed",
			slog.String(logging.FieldStatType, cat.Key),
			"error", writeErr,
		)
		return
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(liveWriteWait))
}

func (h *Handler) dashboardCategory(w nethttp.ResponseWriter, r *nethttp.Request) (stats.Category, bool) {
	if h.dashboard.APIBaseURL == "" {
		writeError(w, r, nethttp.StatusNotFound, "dashboard disabled", h.logger)
		return stats.Category{}, false
	}
	key := r.URL.Query().Get("stat")
	if key == "" {
		key = defaultDashboardStat
	}
	cat, ok := h.leaders.Catalog().Lookup(key)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "stat type '"+key+"' not found", h.logger)
		return stats.Category{}, false
	}
	return cat, true
}

func (h *Handler) panel(target statspanel.Target, cat stats.Category) *statspanel.Controller {
	return statspanel.New(target, statspanel.Config{
		BaseURL:     h.dashboard.APIBaseURL,
		Path:        "/api/" + cat.Key,
		LoadingText: "Loading NFL " + strings.ReplaceAll(cat.Key, "_", " ") + " stats...",
		StatLabel:   cat.Label,
		HTTPClient:  h.dashboard.HTTPClient,
	}, h.logger, h.metrics)
}
