package bootstrap

import (
	"context"

	"github.com/osse101/battlesim/internal/event"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
	Maintenance        *Maintenance
}

// GracefulShutdown stops the HTTP server first so no new battle can publish,
// then flushes pending events. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Maintenance != nil {
		logger.Info(LogMsgStoppingMaintenance)
		components.Maintenance.Stop()
	}

	if components.ResilientPublisher != nil {
		logger.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			logger.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	logger.Info(LogMsgServerStopped)
}
