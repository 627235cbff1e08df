package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/server/middleware"
	"github.com/jonathan/resume-tailor/internal/types"
)

// TailorRequest is the body of POST /tailor.
type TailorRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	JobText    string `json:"job_text" validate:"required"`
}

// TailorResponse wraps a tailoring result with its persisted run ID, when a
// database is configured.
type TailorResponse struct {
	RunID  string                 `json:"run_id,omitempty"`
	Result *types.TailoringResult `json:"result"`
}

// UpdateSuggestionRequest is the body of PATCH /suggestions/{id}.
type UpdateSuggestionRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted edited dismissed"`
}

// RunResponse is the body of GET /runs/{id}.
type RunResponse struct {
	Run         *db.Run               `json:"run"`
	Artifacts   []db.ArtifactSummary  `json:"artifacts"`
	Suggestions []db.StoredSuggestion `json:"suggestions"`
}

// handleTailor runs the full tailoring pipeline on the posted resume and job
// text. When a database is configured the run, its artifacts, and its
// suggestions are persisted and the stored suggestion IDs are reflected in
// the response.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validator.New().Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := pipeline.New().Run(req.ResumeText, req.JobText)
	if err != nil {
		var inputErr *pipeline.InputError
		if errors.As(err, &inputErr) {
			s.errorResponse(w, http.StatusBadRequest, inputErr.Error())
			return
		}
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	response := TailorResponse{Result: result}

	if s.db != nil {
		userID, _ := middleware.GetUserID(r)
		runID, err := s.persistRun(r.Context(), userID, req, result)
		if err != nil {
			// Persistence failure does not invalidate the tailoring result.
			log.Printf("Failed to persist run: %v", err)
		} else {
			response.RunID = runID.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// persistRun stores a completed tailoring run with its artifacts and
// suggestions, and copies the assigned suggestion IDs back into the result.
func (s *Server) persistRun(ctx context.Context, userID uuid.UUID, req TailorRequest, result *types.TailoringResult) (uuid.UUID, error) {
	var userRef *uuid.UUID
	if userID != uuid.Nil {
		userRef = &userID
	}

	company, roleTitle := "", ""
	if result.JobPosting != nil {
		company = result.JobPosting.Company
		roleTitle = result.JobPosting.Title
	}

	runID, err := s.db.CreateRun(ctx, userRef, company, roleTitle, "")
	if err != nil {
		return uuid.Nil, err
	}

	saveErr := func(err error) {
		if err != nil {
			log.Printf("Failed to save artifact for run %s: %v", runID, err)
		}
	}
	saveErr(s.db.SaveTextArtifact(ctx, runID, db.StepResumeText, db.CategoryIngestion, req.ResumeText))
	saveErr(s.db.SaveTextArtifact(ctx, runID, db.StepJobText, db.CategoryIngestion, req.JobText))
	saveErr(s.db.SaveArtifact(ctx, runID, db.StepProfile, db.CategoryParsing, result.Profile))
	saveErr(s.db.SaveArtifact(ctx, runID, db.StepJobPosting, db.CategoryParsing, result.JobPosting))
	saveErr(s.db.SaveArtifact(ctx, runID, db.StepMatchResult, db.CategoryMatching, result.MatchResult))
	saveErr(s.db.SaveArtifact(ctx, runID, db.StepReorderedSkills, db.CategoryRewriting, result.ReorderedSkills))
	saveErr(s.db.SaveArtifact(ctx, runID, db.StepExplanation, db.CategoryExplain, result.Explanation))
	saveErr(s.db.SaveArtifact(ctx, runID, db.StepResult, db.CategoryResult, result))

	stored, err := s.db.SaveSuggestions(ctx, runID, result.Suggestions)
	if err != nil {
		log.Printf("Failed to save suggestions for run %s: %v", runID, err)
	} else {
		for i := range stored {
			result.Suggestions[i].ID = stored[i].ID.String()
		}
	}

	status := db.RunStatusCompleted
	if !result.Complete {
		status = db.RunStatusDegraded
	}
	matchScore := 0.0
	if result.MatchResult != nil {
		matchScore = result.MatchResult.MatchScore
	}
	if err := s.db.CompleteRun(ctx, runID, status, matchScore); err != nil {
		log.Printf("Failed to mark run %s complete: %v", runID, err)
	}

	return runID, nil
}

// handleGetRun returns a stored run with its artifact summaries and
// suggestions.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database not configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID")
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get run")
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "Run not found")
		return
	}

	artifacts, err := s.db.ListArtifacts(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list artifacts")
		return
	}

	suggestions, err := s.db.ListSuggestions(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list suggestions")
		return
	}

	s.jsonResponse(w, http.StatusOK, RunResponse{
		Run:         run,
		Artifacts:   artifacts,
		Suggestions: suggestions,
	})
}

// handleUpdateSuggestion records a review decision for one suggestion.
// A reviewed suggestion never returns to pending, so the request status is
// restricted to the terminal review states.
func (s *Server) handleUpdateSuggestion(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database not configured")
		return
	}

	suggestionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid suggestion ID")
		return
	}

	var req UpdateSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.db.UpdateSuggestionStatus(r.Context(), suggestionID, types.SuggestionStatus(req.Status)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, "Suggestion not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update suggestion")
		return
	}

	suggestion, err := s.db.GetSuggestion(r.Context(), suggestionID)
	if err != nil || suggestion == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get suggestion")
		return
	}

	s.jsonResponse(w, http.StatusOK, suggestion)
}
