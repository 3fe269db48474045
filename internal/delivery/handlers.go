package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/dub_pipeline/internal/pipeline"
)

type progressSource interface {
	Snapshot() pipeline.Snapshot
}

type StatusHandler struct {
	progress progressSource
	log      *logger.ZapLogger
}

func NewStatusHandler(progress progressSource, log *logger.ZapLogger) *StatusHandler {
	return &StatusHandler{
		progress: progress,
		log:      log,
	}
}

func (h *StatusHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

// Status: снимок текущего прогона
func (h *StatusHandler) Status(w http.ResponseWriter, _ *http.Request) {
	snap := h.progress.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil && h.log != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "encode status", Error: err})
	}
}
