package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/scorepipe/cleanse"
	"github.com/kbukum/scorepipe/decode"
	"github.com/kbukum/scorepipe/logger"
	"github.com/kbukum/scorepipe/observability"
	"github.com/kbukum/scorepipe/report"
	"github.com/kbukum/scorepipe/version"
)

// handleCleanse ingests a raw JSON record array, runs the selected strategy,
// and returns the validated records with a run summary.
func (s *Server) handleCleanse(c *gin.Context) {
	strategy, err := cleanse.ParseStrategy(c.Query("strategy"))
	if err != nil {
		RespondWithError(c, err)
		return
	}

	records, err := decode.Decode(c.Request.Body)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanCleanseRun)
	defer span.End()
	span.SetAttributes(
		attribute.String(observability.AttrStrategy, string(strategy)),
		attribute.Int(observability.AttrTotal, len(records)),
	)

	start := time.Now()
	valid, err := cleanse.Run(ctx, strategy, records)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	elapsed := time.Since(start)
	span.SetAttributes(attribute.Int(observability.AttrAccepted, len(valid)))

	if s.metrics != nil {
		s.metrics.RecordRun(ctx, string(strategy), len(records), len(valid), elapsed)
	}
	s.log.Info("cleanse run complete", logger.Fields(
		logger.FieldStrategy, string(strategy),
		"total", len(records),
		"accepted", len(valid),
		logger.FieldDuration, elapsed.Milliseconds(),
	))

	summary := report.Summarize(valid, len(records))
	RespondOKWithMeta(c, valid, &summary)
}

// handleHealth reports liveness and build version.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Get(),
	})
}
