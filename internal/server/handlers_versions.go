package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-engine/internal/schemas"
	"github.com/jonathan/resume-engine/internal/types"
)

// versionPayload is the client-supplied portion of a version: the draft name
// and section content. Identity and lifecycle fields are server-assigned.
type versionPayload struct {
	DraftName       string                       `json:"draft_name,omitempty"`
	Summary         string                       `json:"summary,omitempty"`
	Contact         *types.ContactInfo           `json:"contact_info,omitempty"`
	Coursework      types.StringList             `json:"coursework_section,omitempty"`
	Education       []types.EducationEntry       `json:"education_section,omitempty"`
	Experience      []types.ExperienceEntry      `json:"experience_section,omitempty"`
	Projects        []types.ProjectEntry         `json:"projects_section,omitempty"`
	Certifications  []types.CertificationEntry   `json:"certifications_section,omitempty"`
	Extracurricular []types.ExtracurricularEntry `json:"extracurricular_section,omitempty"`
	TechnicalSkills *types.TechnicalSkills       `json:"technical_skills_section,omitempty"`
}

func (p *versionPayload) apply(version *types.ResumeVersion) {
	version.DraftName = p.DraftName
	version.Summary = p.Summary
	version.Contact = p.Contact
	version.Coursework = p.Coursework
	version.Education = p.Education
	version.Experience = p.Experience
	version.Projects = p.Projects
	version.Certifications = p.Certifications
	version.Extracurricular = p.Extracurricular
	version.TechnicalSkills = p.TechnicalSkills
}

// decodeVersionPayload schema-validates and decodes a version payload body.
func (s *Server) decodeVersionPayload(w http.ResponseWriter, r *http.Request) (*versionPayload, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}

	if err := schemas.ValidateVersionPayload(body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	var payload versionPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &payload, true
}

func (s *Server) ownerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	ownerID, err := uuid.Parse(r.PathValue("owner_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid owner ID")
		return uuid.Nil, false
	}
	return ownerID, true
}

func (s *Server) versionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	versionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid version ID")
		return uuid.Nil, false
	}
	return versionID, true
}

func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	list, err := s.service.Versions.List(r.Context(), ownerID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if list == nil {
		list = []*types.ResumeVersion{}
	}
	s.jsonResponse(w, http.StatusOK, list)
}

func (s *Server) handleCreateVersion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	payload, ok := s.decodeVersionPayload(w, r)
	if !ok {
		return
	}

	version := &types.ResumeVersion{OwnerID: ownerID}
	payload.apply(version)

	created, err := s.service.Versions.Create(r.Context(), version)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	versionID, ok := s.versionID(w, r)
	if !ok {
		return
	}

	version, err := s.service.Versions.Get(r.Context(), ownerID, versionID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, version)
}

func (s *Server) handleUpdateVersion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	versionID, ok := s.versionID(w, r)
	if !ok {
		return
	}
	payload, ok := s.decodeVersionPayload(w, r)
	if !ok {
		return
	}

	version := &types.ResumeVersion{ID: versionID, OwnerID: ownerID}
	payload.apply(version)

	updated, err := s.service.Versions.Update(r.Context(), ownerID, version)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteVersion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	versionID, ok := s.versionID(w, r)
	if !ok {
		return
	}

	if err := s.service.Versions.Delete(r.Context(), ownerID, versionID); err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleActivateVersion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	versionID, ok := s.versionID(w, r)
	if !ok {
		return
	}

	version, err := s.service.Versions.Activate(r.Context(), ownerID, versionID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, version)
}
