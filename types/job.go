package types

import (
	"time"

	"github.com/google/uuid"
)

// JobState is the current state of one conversion invocation.
type JobState string

const (
	StateIdle       JobState = "idle"
	StateSplitting  JobState = "splitting"
	StateExtracting JobState = "extracting"
	StateAssembling JobState = "assembling"
	StateDone       JobState = "done"
	StateFailed     JobState = "failed"
)

// ConversionJob tracks a single pipeline invocation. Jobs are transient;
// nothing about them survives the request.
type ConversionJob struct {
	ID             string    `json:"id"`
	FileName       string    `json:"file_name"`
	State          JobState  `json:"state"`
	ProcessedPages int       `json:"processed_pages"`
	TotalPages     int       `json:"total_pages"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewConversionJob(fileName string) *ConversionJob {
	now := time.Now()
	return &ConversionJob{
		ID:        uuid.NewString(),
		FileName:  fileName,
		State:     StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
