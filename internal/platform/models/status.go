package models

import (
	"fmt"

	"github.com/MichalMitros/parts-enricher/internal/platform"
	"github.com/samber/lo"
)

// BatchStatus is import batch lifecycle status.
type BatchStatus string

const (
	BatchPending    BatchStatus = "pending"
	BatchProcessing BatchStatus = "processing"
	BatchCompleted  BatchStatus = "completed"
	BatchFailed     BatchStatus = "failed"
)

// ScrapingStatus is product enrichment lifecycle status.
type ScrapingStatus string

const (
	ScrapingPending   ScrapingStatus = "pending"
	ScrapingCompleted ScrapingStatus = "completed"
	ScrapingScraped   ScrapingStatus = "scraped"
	ScrapingNoResults ScrapingStatus = "no_results"
	ScrapingFailed    ScrapingStatus = "failed"
)

// AIContentStatus is product content generation lifecycle status.
type AIContentStatus string

const (
	AIContentPending   AIContentStatus = "pending"
	AIContentGenerated AIContentStatus = "generated"
	AIContentFailed    AIContentStatus = "failed"
)

var batchTransitions = map[BatchStatus][]BatchStatus{
	BatchPending:    {BatchProcessing, BatchCompleted, BatchFailed},
	BatchProcessing: {BatchCompleted, BatchFailed, BatchPending},
	BatchCompleted:  {BatchPending, BatchProcessing},
	BatchFailed:     {BatchPending, BatchProcessing},
}

// Products never move back to pending.
var scrapingTransitions = map[ScrapingStatus][]ScrapingStatus{
	ScrapingPending:   {ScrapingCompleted, ScrapingScraped, ScrapingNoResults, ScrapingFailed},
	ScrapingCompleted: {ScrapingCompleted, ScrapingScraped, ScrapingNoResults, ScrapingFailed},
	ScrapingNoResults: {ScrapingCompleted, ScrapingScraped, ScrapingNoResults, ScrapingFailed},
	ScrapingScraped:   {ScrapingCompleted, ScrapingScraped, ScrapingFailed},
	ScrapingFailed:    {ScrapingCompleted, ScrapingScraped, ScrapingNoResults, ScrapingFailed},
}

var aiContentTransitions = map[AIContentStatus][]AIContentStatus{
	AIContentPending:   {AIContentGenerated, AIContentFailed},
	AIContentFailed:    {AIContentGenerated, AIContentFailed},
	AIContentGenerated: {AIContentGenerated, AIContentFailed},
}

// CanTransitionTo returns true if batch can move from s to next.
func (s BatchStatus) CanTransitionTo(next BatchStatus) bool {
	return lo.Contains(batchTransitions[s], next)
}

// CanTransitionTo returns true if product scraping status can move from s to next.
func (s ScrapingStatus) CanTransitionTo(next ScrapingStatus) bool {
	return lo.Contains(scrapingTransitions[s], next)
}

// CanTransitionTo returns true if product content status can move from s to next.
func (s AIContentStatus) CanTransitionTo(next AIContentStatus) bool {
	return lo.Contains(aiContentTransitions[s], next)
}

// Valid returns true for known batch statuses.
func (s BatchStatus) Valid() bool {
	_, ok := batchTransitions[s]
	return ok
}

// Valid returns true for known scraping statuses.
func (s ScrapingStatus) Valid() bool {
	_, ok := scrapingTransitions[s]
	return ok
}

// Valid returns true for known content statuses.
func (s AIContentStatus) Valid() bool {
	_, ok := aiContentTransitions[s]
	return ok
}

// Transition is the single place deciding whether status may change.
// It returns wrapped platform.ErrInvalidTransition when the move isn't allowed.
func Transition[S interface {
	~string
	CanTransitionTo(S) bool
}](from, to S) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", platform.ErrInvalidTransition, from, to)
	}
	return nil
}
