package handler

import (
	"github.com/emzola/sdmagic/config"
	"github.com/emzola/sdmagic/internal/jsonlog"
	"github.com/emzola/sdmagic/internal/spa"
	"github.com/emzola/sdmagic/service"
)

// Handler defines Handler layer.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	views   *spa.Loader
	service service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, views *spa.Loader, service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		views:   views,
		service: service,
	}
}
