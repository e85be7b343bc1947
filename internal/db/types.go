package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a single resume parse run
type Run struct {
	ID          uuid.UUID  `json:"id"`
	SourceFile  string     `json:"source_file"`
	Variant     string     `json:"variant"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ArtifactStep constants for known artifact types
const (
	StepSourceText = "source_text"
	StepProfile    = "profile"
	StepScript     = "script"
)

// Artifact category constants group steps by pipeline stage
const (
	CategoryIngestion  = "ingestion"
	CategoryParsing    = "parsing"
	CategoryGeneration = "generation"
)
