// Package pipeline provides the high-level orchestration for one
// resume-to-job-description matching run.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds the inputs for one matching run. Exactly one resume
// source (path or uploaded bytes) and one JD source (path or pasted text)
// must be set.
type RunOptions struct {
	ResumePath string
	// ResumeFilename/ResumeData carry an uploaded resume; the filename is
	// only used to determine the document format.
	ResumeFilename string
	ResumeData     []byte
	// ResumeText carries already-extracted resume text and takes precedence
	// over the document sources.
	ResumeText string

	JDPath string
	JDText string

	OnProgress ProgressCallback
}

// Pipeline wires the extractor and matcher into a single sequential run.
// Both collaborators hold expensive provider clients created once at startup
// and shared across runs; the pipeline itself is stateless, so concurrent
// runs are independent.
type Pipeline struct {
	extractor *extraction.Extractor
	matcher   *matching.Matcher
}

// New creates a Pipeline from its collaborators.
func New(extractor *extraction.Extractor, matcher *matching.Matcher) *Pipeline {
	return &Pipeline{extractor: extractor, matcher: matcher}
}

func emitProgress(opts *RunOptions, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}

// Run executes the full matching pipeline: document extraction, skills and
// personal-info extraction, embedding, and scoring. Any stage failure aborts
// the run; the HTTP surface isolates failures per extraction instead by
// calling the stages directly.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (*types.MatchResult, error) {
	resumeText, err := p.resumeText(opts)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, "extract", "resume text extracted")

	jdText, err := p.jdText(opts)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, "extract", "job description loaded")

	result := &types.MatchResult{}

	// The three model calls are mutually independent: only scoring needs
	// both skill texts, and personal info feeds display only.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		skillsText, err := p.extractor.ExtractSkills(gctx, resumeText)
		if err != nil {
			return fmt.Errorf("resume skills: %w", err)
		}
		result.ResumeSkillsText = skillsText
		return nil
	})
	g.Go(func() error {
		skillsText, err := p.extractor.ExtractSkills(gctx, jdText)
		if err != nil {
			return fmt.Errorf("JD skills: %w", err)
		}
		result.JDSkillsText = skillsText
		return nil
	})
	g.Go(func() error {
		raw, err := p.extractor.ExtractPersonalInfo(gctx, resumeText)
		if err != nil {
			return fmt.Errorf("personal info: %w", err)
		}
		result.PersonalInfoRaw = raw
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	emitProgress(&opts, "llm", "skills and personal info extracted")

	// Canonicalize parsed names for display and dedupe; scoring uses the
	// raw skills text, so normalization never changes the score.
	result.ResumeSkills = extraction.NormalizeSkills(extraction.ParseSkills(result.ResumeSkillsText))
	result.JDSkills = extraction.NormalizeSkills(extraction.ParseSkills(result.JDSkillsText))

	// Best-effort decode; the raw reply stays available for display when
	// the model's JSON drifts from the contract.
	if info, err := extraction.DecodePersonalInfo(result.PersonalInfoRaw); err == nil {
		result.PersonalInfo = info
	}

	score, err := p.matcher.Score(ctx, result.JDSkillsText, result.ResumeSkillsText)
	if err != nil {
		return nil, fmt.Errorf("scoring: %w", err)
	}
	result.Score = score
	emitProgress(&opts, "score", fmt.Sprintf("match score %.2f%%", score))

	return result, nil
}

func (p *Pipeline) resumeText(opts RunOptions) (string, error) {
	switch {
	case strings.TrimSpace(opts.ResumeText) != "":
		return opts.ResumeText, nil
	case len(opts.ResumeData) > 0:
		return ingestion.ExtractDocumentBytes(opts.ResumeFilename, opts.ResumeData)
	case opts.ResumePath != "":
		return ingestion.ExtractDocumentText(opts.ResumePath)
	default:
		return "", fmt.Errorf("no resume provided: set ResumePath or ResumeData")
	}
}

func (p *Pipeline) jdText(opts RunOptions) (string, error) {
	if strings.TrimSpace(opts.JDText) != "" {
		return opts.JDText, nil
	}
	if opts.JDPath != "" {
		return ingestion.LoadTextFile(opts.JDPath)
	}
	return "", fmt.Errorf("no job description provided: set JDPath or JDText")
}
