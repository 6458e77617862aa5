package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

// handleAnalyze scores a resume against a job description using only the
// local keyword pipeline.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	resumeText, jdText, err := s.resolveDocuments(r.Context(), req)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch document: "+err.Error())
		return
	}

	result := s.analyzer.AnalyzeLocally(resumeText, jdText)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeEnhanced scores a resume locally, then enriches the result
// with AI-generated feedback. Augmentation failure degrades to the local
// result rather than failing the request.
func (s *Server) handleAnalyzeEnhanced(w http.ResponseWriter, r *http.Request) {
	if s.enhancer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI enhancement is not configured (missing API key)")
		return
	}

	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	resumeText, jdText, err := s.resolveDocuments(r.Context(), req)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch document: "+err.Error())
		return
	}

	local := s.analyzer.AnalyzeLocally(resumeText, jdText)

	aug, err := s.enhancer.Enhance(r.Context(), resumeText, jdText, local)
	if err != nil {
		// Best effort: fall back to local analysis
		log.Printf("Augmentation failed, returning local analysis: %v", err)
		aug = &types.Augmentation{Error: err.Error()}
	}

	result := analysis.Assemble(local, aug)
	s.jsonResponse(w, http.StatusOK, result)
}

// decodeAnalyzeRequest decodes and validates the request body, writing an
// error response and returning ok=false when the request is unusable.
func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (*types.AnalyzeRequest, bool) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return nil, false
	}

	return &req, true
}

// resolveDocuments produces the resume and job-description texts, fetching
// any URL-referenced documents concurrently. Inline text wins over a URL.
func (s *Server) resolveDocuments(ctx context.Context, req *types.AnalyzeRequest) (string, string, error) {
	resumeText := req.ResumeText
	jdText := req.JobText

	g, gctx := errgroup.WithContext(ctx)

	if resumeText == "" && req.ResumeURL != "" {
		g.Go(func() error {
			text, _, err := ingestion.IngestFromURL(gctx, req.ResumeURL, s.useBrowser, s.verbose)
			if err != nil {
				return err
			}
			resumeText = text
			return nil
		})
	}

	if jdText == "" && req.JobURL != "" {
		g.Go(func() error {
			text, _, err := ingestion.IngestFromURL(gctx, req.JobURL, s.useBrowser, s.verbose)
			if err != nil {
				return err
			}
			jdText = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", "", err
	}

	return resumeText, jdText, nil
}
