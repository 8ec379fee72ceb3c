// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Names of the global pipeline stages, in execution order.
const (
	stageRecoverer     = "recoverer"
	stageTraceID       = "trace_id"
	stageAccessLog     = "access_log"
	stageTimeout       = "timeout"
	stageCompress      = "compress"
	stageCORS          = "cors"
	stageStaticFiles   = "static_files"
	stageTokenExchange = "token_exchange"
)

// stage is a named middleware of the global pipeline.
type stage struct {
	name       string
	middleware func(http.Handler) http.Handler
}

// pipeline returns the global stages in the order they wrap a request.
//
// token_exchange must stay after cors and static_files and is the last global
// stage: authentication is attached per route and consumes its output.
func (h *Handler) pipeline() []stage {
	stages := []stage{
		{name: stageRecoverer, middleware: middleware.Recoverer},
		{name: stageTraceID, middleware: h.withTraceID},
		{name: stageAccessLog, middleware: h.withLogging},
	}

	if h.cfg.RequestTimeout > 0 {
		stages = append(stages, stage{name: stageTimeout, middleware: middleware.Timeout(h.cfg.RequestTimeout)})
	}

	stages = append(stages,
		stage{name: stageCompress, middleware: middleware.Compress(5)},
		stage{name: stageCORS, middleware: h.withCORS()},
		stage{name: stageStaticFiles, middleware: h.withStaticFiles},
	)

	if h.gate != nil {
		stages = append(stages, stage{name: stageTokenExchange, middleware: h.gate.Middleware})
	}

	return stages
}
