package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a tailoring run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Company     string     `json:"company"`
	RoleTitle   string     `json:"role_title"`
	JobURL      string     `json:"job_url,omitempty"`
	MatchScore  float64    `json:"match_score"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusDegraded  = "degraded" // completed via a stage fallback
	RunStatusFailed    = "failed"
)

// ArtifactStep constants for known artifact types
const (
	StepResumeText      = "resume_text"
	StepJobText         = "job_text"
	StepProfile         = "profile"
	StepJobPosting      = "job_posting"
	StepMatchResult     = "match_result"
	StepReorderedSkills = "reordered_skills"
	StepExplanation     = "explanation"
	StepResult          = "result"
)

// Artifact categories group steps by pipeline stage
const (
	CategoryIngestion = "ingestion"
	CategoryParsing   = "parsing"
	CategoryMatching  = "matching"
	CategoryRewriting = "rewriting"
	CategoryExplain   = "explaining"
	CategoryResult    = "result"
)

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
