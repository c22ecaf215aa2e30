package server

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Aditya57958/AgenticHire/internal/ats"
	"github.com/Aditya57958/AgenticHire/internal/extract"
	"github.com/Aditya57958/AgenticHire/internal/pipeline"
	"github.com/Aditya57958/AgenticHire/internal/rendering"
	"github.com/Aditya57958/AgenticHire/internal/scrape"
)

// Process steps accepted by the API.
const (
	StepAnalysis     = "ats_analysis"
	StepOptimization = "resume_optimization"
	StepTemplates    = "ats_templates"
	StepFullProcess  = "full_process"
)

// maxUploadBytes bounds the multipart form, resume file included.
const maxUploadBytes = 32 << 20

// stepDisplayNames maps steps that require inputs to the name used in the
// missing-inputs client message.
var stepDisplayNames = map[string]string{
	StepAnalysis:     "ATS Analysis",
	StepOptimization: "Resume Optimization",
	StepFullProcess:  "Full Process",
}

// ProcessRequest is the parsed multipart form for POST /process.
type ProcessRequest struct {
	Step          string `validate:"required,oneof=ats_analysis resume_optimization ats_templates full_process"`
	ResumeText    string
	JobLink       string
	ApplicantName string
	UseCrew       bool
}

// Validate validates the ProcessRequest using the validator.
func (r *ProcessRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &ErrInvalidStep{}
	}
	return nil
}

type analysisResponse struct {
	ATSScore        string   `json:"ats_score"`
	Summary         string   `json:"summary"`
	KeywordMatch    string   `json:"keyword_match"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Options         []string `json:"options,omitempty"`
}

type optimizationResponse struct {
	UpdatedATSScore        string           `json:"updated_ats_score"`
	MissingKeywords        []string         `json:"missing_keywords"`
	MissingTechnicalSkills []string         `json:"missing_technical_skills"`
	MissingSoftSkills      []string         `json:"missing_soft_skills"`
	AchievementSuggestions []string         `json:"achievement_suggestions"`
	SectionRatings         map[string]int   `json:"section_ratings"`
	OriginalATSData        analysisResponse `json:"original_ats_data"`
}

type templatesResponse struct {
	Templates []ats.Template `json:"templates"`
	Note      string         `json:"note"`
}

type fullProcessResponse struct {
	Email                   string   `json:"email"`
	Questions               []string `json:"questions"`
	ModifiedResumeText      string   `json:"modified_resume_text"`
	ModifiedResumePDFBase64 string   `json:"modified_resume_pdf_base64"`
	Warning                 *string  `json:"warning"`
}

// handleProcess dispatches a multipart process request to one of the steps.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form data.")
		return
	}

	req := ProcessRequest{
		Step:          r.FormValue("step"),
		ResumeText:    r.FormValue("resume_text"),
		JobLink:       r.FormValue("job_link"),
		ApplicantName: r.FormValue("applicant_name"),
		UseCrew:       parseFlag(r.FormValue("use_crewai")),
	}
	if req.ApplicantName == "" {
		req.ApplicantName = "Applicant"
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if req.Step == StepTemplates {
		s.jsonResponse(w, http.StatusOK, templatesResponse{
			Templates: ats.Templates(),
			Note:      ats.TemplatesNote,
		})
		return
	}

	resumeContent, hasResume, err := s.resumeContent(r, req.ResumeText)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.JobLink == "" || !hasResume {
		missingErr := &ErrMissingInputs{Step: stepDisplayNames[req.Step]}
		s.errorResponse(w, HTTPStatus(missingErr), missingErr.Error())
		return
	}

	jdText := scrape.JobDescription(r.Context(), req.JobLink, s.scrapeOpts)

	switch req.Step {
	case StepAnalysis:
		s.processAnalysis(w, resumeContent, jdText)
	case StepOptimization:
		s.processOptimization(w, resumeContent, jdText)
	case StepFullProcess:
		s.processFull(w, r, req, resumeContent, jdText)
	}
}

func (s *Server) processAnalysis(w http.ResponseWriter, resumeContent, jdText string) {
	analysis, err := ats.ComputeOverlap(resumeContent, jdText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	payload := analysisPayload(analysis)
	payload.Options = []string{"Resume Optimization", "Mail for HR"}
	s.jsonResponse(w, http.StatusOK, payload)
}

func (s *Server) processOptimization(w http.ResponseWriter, resumeContent, jdText string) {
	opt, err := ats.ComputeOptimization(resumeContent, jdText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, optimizationResponse{
		UpdatedATSScore:        fmt.Sprintf("%d/100", opt.UpdatedScore),
		MissingKeywords:        emptyIfNil(opt.Analysis.Missing),
		MissingTechnicalSkills: emptyIfNil(opt.MissingTechnical),
		MissingSoftSkills:      emptyIfNil(opt.MissingSoft),
		AchievementSuggestions: emptyIfNil(opt.Suggestions),
		SectionRatings:         opt.SectionRatings,
		OriginalATSData:        analysisPayload(opt.Analysis),
	})
}

func (s *Server) processFull(w http.ResponseWriter, r *http.Request, req ProcessRequest, resumeContent, jdText string) {
	out := pipeline.FullProcess(r.Context(), s.llmClient, pipeline.Inputs{
		ApplicantName: req.ApplicantName,
		ResumeText:    resumeContent,
		JobText:       jdText,
		UseCrew:       req.UseCrew,
	})

	pdfBytes, err := rendering.TextPDF(out.ModifiedResume)
	if err != nil {
		log.Printf("[server] resume PDF rendering failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render resume PDF.")
		return
	}

	var warning *string
	if out.Warning != "" {
		warning = &out.Warning
	}
	s.jsonResponse(w, http.StatusOK, fullProcessResponse{
		Email:                   out.Email,
		Questions:               emptyIfNil(out.Questions),
		ModifiedResumeText:      out.ModifiedResume,
		ModifiedResumePDFBase64: base64.StdEncoding.EncodeToString(pdfBytes),
		Warning:                 warning,
	})
}

// resumeContent resolves the resume text from the uploaded file or the
// resume_text field. The file wins when both are present.
func (s *Server) resumeContent(r *http.Request, resumeText string) (content string, hasResume bool, err error) {
	file, header, err := r.FormFile("resume")
	if err == http.ErrMissingFile {
		return resumeText, resumeText != "", nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read resume upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", false, fmt.Errorf("failed to read resume upload: %w", err)
	}
	return extract.ResumeText(header.Filename, data), true, nil
}

func analysisPayload(analysis *ats.Analysis) analysisResponse {
	return analysisResponse{
		ATSScore:        fmt.Sprintf("%d/100", analysis.Score),
		Summary:         analysis.Summary,
		KeywordMatch:    fmt.Sprintf("%d%%", analysis.MatchPercent),
		MatchedKeywords: emptyIfNil(analysis.Matched),
		MissingKeywords: emptyIfNil(analysis.Missing),
	}
}

// parseFlag reports whether a form flag is set. Accepts 1/true/yes in any
// case.
func parseFlag(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// emptyIfNil keeps empty lists serialized as [] instead of null.
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
