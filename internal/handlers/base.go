package handlers

import (
	"log/slog"

	"sbcatalog/internal/config"
	"sbcatalog/internal/metrics"
)

// BaseHandler carries the dependencies shared by every handler.
type BaseHandler struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

func NewBaseHandler(cfg *config.Config, logger *slog.Logger, recorder *metrics.Recorder) *BaseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BaseHandler{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: recorder,
	}
}
