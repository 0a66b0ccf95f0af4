package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxUploadBytes caps the multipart form size for resume uploads.
const maxUploadBytes = 10 << 20 // 10 MB

// MatchResponse is the response body for POST /match.
type MatchResponse struct {
	RunID           string              `json:"run_id"`
	Score           float64             `json:"score"`
	ResumeSkills    []string            `json:"resume_skills"`
	JDSkills        []string            `json:"jd_skills"`
	PersonalInfo    *types.PersonalInfo `json:"personal_info"`
	PersonalInfoRaw string              `json:"personal_info_raw,omitempty"`
}

// ParseResumeResponse is the response body for POST /resume/parse.
// PersonalInfoError carries the isolated personal-info failure, if any;
// a failed personal-info extraction does not fail the request.
type ParseResumeResponse struct {
	RunID             string              `json:"run_id"`
	Skills            []string            `json:"skills"`
	PersonalInfo      *types.PersonalInfo `json:"personal_info"`
	PersonalInfoRaw   string              `json:"personal_info_raw,omitempty"`
	PersonalInfoError string              `json:"personal_info_error,omitempty"`
}

// handleMatch scores an uploaded resume against job description text.
// Expects multipart form data with a "resume" file and a "jd_text" field.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if s.pipeline == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "model credentials are not configured")
		return
	}

	filename, data, ok := s.readResumeUpload(w, r)
	if !ok {
		return
	}

	opts := types.MatchOptions{JDText: r.FormValue("jd_text")}
	if err := opts.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "jd_text is required")
		return
	}

	runID := uuid.New().String()

	result, err := s.pipeline.Run(r.Context(), pipeline.RunOptions{
		ResumeFilename: filename,
		ResumeData:     data,
		JDText:         opts.JDText,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := MatchResponse{
		RunID:        runID,
		Score:        result.Score,
		ResumeSkills: result.ResumeSkills,
		JDSkills:     result.JDSkills,
		PersonalInfo: result.PersonalInfo,
	}
	// Expose the raw reply only when structured decoding failed.
	if result.PersonalInfo == nil {
		resp.PersonalInfoRaw = result.PersonalInfoRaw
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleParseResume extracts skills and personal info from an uploaded
// resume without scoring it. Skills extraction failure fails the request;
// personal-info extraction failure is reported inside a 200 response.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "model credentials are not configured")
		return
	}

	filename, data, ok := s.readResumeUpload(w, r)
	if !ok {
		return
	}

	resumeText, err := ingestion.ExtractDocumentBytes(filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := ParseResumeResponse{RunID: uuid.New().String()}

	var skillsText string
	var infoErr error
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		skillsText, err = s.extractor.ExtractSkills(gctx, resumeText)
		return err
	})
	g.Go(func() error {
		// Personal info is best-effort; its failure is carried in the
		// response instead of aborting the request.
		raw, err := s.extractor.ExtractPersonalInfo(gctx, resumeText)
		if err != nil {
			infoErr = err
			return nil
		}
		resp.PersonalInfoRaw = raw
		return nil
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp.Skills = extraction.ParseSkills(skillsText)
	if infoErr != nil {
		resp.PersonalInfoError = infoErr.Error()
	} else if info, err := extraction.DecodePersonalInfo(resp.PersonalInfoRaw); err == nil {
		resp.PersonalInfo = info
		resp.PersonalInfoRaw = ""
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSaveJD persists pasted job description text for later runs.
func (s *Server) handleSaveJD(w http.ResponseWriter, r *http.Request) {
	var req types.SaveJDRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	path, err := ingestion.SaveJD(s.jdDir, req.Text)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("failed to save job description: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"path": path})
}

// handleListJDs lists saved job description files.
func (s *Server) handleListJDs(w http.ResponseWriter, _ *http.Request) {
	files, err := ingestion.ListSavedJDs(s.jdDir)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("failed to list job descriptions: %v", err))
		return
	}
	if files == nil {
		files = []string{}
	}

	s.jsonResponse(w, http.StatusOK, map[string][]string{"files": files})
}

// readResumeUpload reads the "resume" file from a multipart form.
// Writes the error response itself and returns ok=false on failure.
func (s *Server) readResumeUpload(w http.ResponseWriter, r *http.Request) (filename string, data []byte, ok bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "expected multipart form data with a 'resume' file")
		return "", nil, false
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file upload")
		return "", nil, false
	}
	defer file.Close() //nolint:errcheck

	if !ingestion.IsSupportedDocument(header.Filename) {
		s.errorResponse(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("unsupported resume type %q: only .pdf and .docx are accepted", header.Filename))
		return "", nil, false
	}

	data, err = io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded resume")
		return "", nil, false
	}

	return header.Filename, data, true
}

// decodeJSON decodes a JSON request body, writing a 400 response on failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON request body")
		return false
	}
	return true
}
