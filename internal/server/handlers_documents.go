package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-engine/internal/resume"
)

var requestValidator = validator.New()

func (s *Server) handleValidateVersion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	versionID, ok := s.versionID(w, r)
	if !ok {
		return
	}

	result, err := s.service.Validate(r.Context(), ownerID, versionID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	versionID, ok := s.versionID(w, r)
	if !ok {
		return
	}

	pdf, err := s.service.Generate(r.Context(), ownerID, versionID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	versionID, ok := s.versionID(w, r)
	if !ok {
		return
	}

	format := resume.ExportFormat(r.URL.Query().Get("format"))
	switch format {
	case "", resume.FormatPDF:
		format = resume.FormatPDF
	case resume.FormatTeX:
	default:
		s.errorResponse(w, http.StatusBadRequest, "format must be pdf or tex")
		return
	}

	data, filename, err := s.service.Export(r.Context(), ownerID, versionID, format)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	contentType := "application/pdf"
	if format == resume.FormatTeX {
		contentType = "application/x-tex"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// CreateDraftRequest names a new draft and optionally the version to clone.
type CreateDraftRequest struct {
	DraftName string `json:"draft_name" validate:"required"`
	SourceID  string `json:"source_id,omitempty" validate:"omitempty,uuid"`
}

func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	var req CreateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := requestValidator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var sourceID *uuid.UUID
	if req.SourceID != "" {
		id, err := uuid.Parse(req.SourceID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid source ID")
			return
		}
		sourceID = &id
	}

	draft, err := s.service.CreateDraft(r.Context(), ownerID, req.DraftName, sourceID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, draft)
}

// TailorHTTPRequest carries a job description as inline text or a URL.
type TailorHTTPRequest struct {
	DraftName      string `json:"draft_name,omitempty"`
	JobDescription string `json:"job_description,omitempty" validate:"required_without=JobURL"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
	SourceID       string `json:"source_id,omitempty" validate:"omitempty,uuid"`
}

func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	var req TailorHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := requestValidator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var sourceID *uuid.UUID
	if req.SourceID != "" {
		id, err := uuid.Parse(req.SourceID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid source ID")
			return
		}
		sourceID = &id
	}

	result, err := s.service.Tailor(r.Context(), ownerID, resume.TailorRequest{
		DraftName:      req.DraftName,
		JobDescription: req.JobDescription,
		JobURL:         req.JobURL,
		SourceID:       sourceID,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"version":          result.Version,
		"match_score":      result.Match.Score,
		"matched_skills":   result.Match.MatchedSkills,
		"missing_skills":   result.Match.MissingSkills,
		"tailored_summary": result.TailoredSummary,
		"suggestions":      result.Suggestions,
	})
}
