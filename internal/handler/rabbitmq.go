package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MichalMitros/parts-enricher/internal/platform/rabbitmq"
	"github.com/MichalMitros/parts-enricher/internal/processor"
	"github.com/MichalMitros/parts-enricher/pkg/v1/commander"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate mockery --name BatchProcessor --filename batch_processor.go
//go:generate mockery --name Consumer --filename consumer.go

var errMissingBatchID = errors.New("missing batch id")

// BatchProcessor processes pending products of import batch.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context, batchID uuid.UUID) (*processor.Summary, error)
}

// Consumer consumes messages from queue.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	consumer  Consumer
	processor BatchProcessor
	logger    *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(consumer Consumer, processor BatchProcessor, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		consumer:  consumer,
		processor: processor,
		logger:    logger,
	}
}

// Start starts consuming and handling process batch commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.HandleMessage)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// HandleMessage decodes process batch command and processes batch.
func (h *RMQHandler) HandleMessage(ctx context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Str("batchId", cmd.BatchID.String()).
		Msg("batch processing started")

	summary, err := h.processor.ProcessBatch(ctx, cmd.BatchID)
	if err != nil {
		return fmt.Errorf("processing batch %s failed: %w", cmd.BatchID, err)
	}

	h.logger.Debug().
		Str("batchId", cmd.BatchID.String()).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Int("remaining", summary.Remaining).
		Bool("stoppedEarly", summary.StoppedEarly).
		Msg("batch processing finished")

	return nil
}

func decodeMessage(msg []byte) (*commander.ProcessBatchCommand, error) {
	var cmd commander.ProcessBatchCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode process batch command: %w", err)
	}

	if cmd.BatchID == uuid.Nil {
		return nil, fmt.Errorf("can't decode process batch command: %w", errMissingBatchID)
	}

	return &cmd, nil
}
