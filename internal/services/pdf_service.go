package services

import (
	"context"
	"fmt"
	"log"

	"bmaBack/internal/models"
	"bmaBack/internal/render"
)

// Converter turns rendered HTML into PDF bytes.
type Converter interface {
	Convert(ctx context.Context, html string, opts render.Options) ([]byte, error)
}

// ArtifactCache holds finished PDFs keyed by job card and document kind.
// A nil cache disables caching.
type ArtifactCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, pdf []byte) error
}

// ArchiveStore keeps a durable copy of every generated document.
// A nil archive disables archiving.
type ArchiveStore interface {
	Upload(pdf []byte, fileName string) (string, error)
}

type PDFService struct {
	Documents *DocumentService
	Converter Converter
	Cache     ArtifactCache
	Archive   ArchiveStore
	Branding  render.Branding
	Options   render.Options
	InfoLog   *log.Logger
	ErrorLog  *log.Logger
}

// GeneratePDF assembles the document for a job card and returns it alongside
// the PDF bytes. The document model is always rebuilt so the caller gets the
// correct file name and a not-found error surfaces even on a cache hit.
func (s *PDFService) GeneratePDF(ctx context.Context, jobID int, kind models.DocumentKind) (models.RenderableDocument, []byte, error) {
	doc, err := s.Documents.BuildDocument(ctx, jobID, kind)
	if err != nil {
		return models.RenderableDocument{}, nil, err
	}

	key := fmt.Sprintf("document:%d:%s", jobID, kind)
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key)
		if err != nil {
			s.ErrorLog.Printf("pdf cache lookup failed for %s: %v", key, err)
		} else if cached != nil {
			return doc, cached, nil
		}
	}

	html, err := render.Document(doc, s.Branding)
	if err != nil {
		return models.RenderableDocument{}, nil, err
	}

	pdf, err := s.Converter.Convert(ctx, html, s.Options)
	if err != nil {
		return models.RenderableDocument{}, nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, pdf); err != nil {
			s.ErrorLog.Printf("pdf cache store failed for %s: %v", key, err)
		}
	}
	if s.Archive != nil {
		url, err := s.Archive.Upload(pdf, doc.FileName+".pdf")
		if err != nil {
			s.ErrorLog.Printf("archive upload failed for %s: %v", doc.FileName, err)
		} else {
			s.InfoLog.Printf("archived %s as %s", doc.FileName, url)
		}
	}
	return doc, pdf, nil
}
