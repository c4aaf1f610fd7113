package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/metrics"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/tools"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type resultResponse struct {
	Tool   string      `json:"tool"`
	Result interface{} `json:"result"`
}

// Handler HTTP-транспорт для инструментов
type Handler struct {
	registry map[string]tools.ToolHandler
	logger   *slog.Logger
}

// NewHandler создает транспорт поверх набора инструментов
func NewHandler(registry map[string]tools.ToolHandler, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{registry: registry, logger: logger}
}

// Routes регистрирует маршруты; limiter может быть nil
func (h *Handler) Routes(limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()

	var call http.Handler = http.HandlerFunc(h.CallTool)
	if limiter != nil {
		call = RateLimitMiddleware(limiter, call)
	}

	mux.Handle("POST /tools/{name}", call)
	mux.HandleFunc("GET /tools", h.ListTools)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

// ListTools возвращает имена доступных инструментов
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"tools": tools.Names(h.registry)})
}

// CallTool вызывает инструмент с параметрами из JSON-тела
func (h *Handler) CallTool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	handler, ok := h.registry[name]
	if !ok {
		metrics.APICalls.WithLabelValues("http", name, "not_found").Inc()
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown tool: " + name})
		return
	}

	params := map[string]interface{}{}
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	start := time.Now()
	result, err := handler(r.Context(), params)
	if err != nil {
		kind := tools.ErrorKind(err)
		status := statusFor(kind)
		if status >= http.StatusInternalServerError {
			h.logger.Error("tool call failed", "tool", name, "error", err)
		} else {
			h.logger.Debug("tool call rejected", "tool", name, "kind", kind, "error", err)
		}
		metrics.APICalls.WithLabelValues("http", name, "error").Inc()
		writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
		return
	}

	h.logger.Debug("tool call", "tool", name, "duration", time.Since(start))
	metrics.APICalls.WithLabelValues("http", name, "success").Inc()
	writeJSON(w, http.StatusOK, resultResponse{Tool: name, Result: result})
}

func statusFor(kind string) int {
	switch kind {
	case "validation":
		return http.StatusBadRequest
	case "not_found":
		return http.StatusNotFound
	case "rejected":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
