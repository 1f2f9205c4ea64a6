package commander

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// ProcessBatchCommand requests processing of pending products of import batch.
type ProcessBatchCommand struct {
	BatchID uuid.UUID `json:"batchId"`
}

// ProcessBatchCommander sends process batch commands.
type ProcessBatchCommander struct {
	sender Sender
}

// NewProcessBatchCommander returns new ProcessBatchCommander using provided sender for sending messages.
func NewProcessBatchCommander(sender Sender) ProcessBatchCommander {
	return ProcessBatchCommander{
		sender: sender,
	}
}

// SendProcessBatchCommand sends process batch command for provided batch.
func (c ProcessBatchCommander) SendProcessBatchCommand(ctx context.Context, batchID uuid.UUID) error {
	cmd := ProcessBatchCommand{
		BatchID: batchID,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal process batch command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
