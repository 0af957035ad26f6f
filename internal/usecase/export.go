package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Hayal27/Cv-generator/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CVStore is the read side of CV persistence the export path depends on.
type CVStore interface {
	GetCV(ctx context.Context, id uuid.UUID) (*domain.CV, error)
}

// PDFRenderer captures a finished HTML document as a paginated PDF.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type ExportFormat string

const (
	FormatPDF  ExportFormat = "pdf"
	FormatDOCX ExportFormat = "docx"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ExportResult is the byte stream plus the response metadata the transport
// layer needs.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Exporter coordinates one export request: load, access check, renderer
// fan-out. It holds no per-request state; concurrent exports are
// independent.
type Exporter struct {
	cvs      CVStore
	registry *Registry
	pdf      PDFRenderer
}

func NewExporter(cvs CVStore, registry *Registry, pdf PDFRenderer) *Exporter {
	return &Exporter{cvs: cvs, registry: registry, pdf: pdf}
}

// CanView reports whether requester may read or export the CV: the owner
// always, anyone when the CV is public. Export and read share one rule.
func CanView(cv *domain.CV, requester uuid.UUID) bool {
	if cv == nil {
		return false
	}
	return cv.IsPublic || (requester != uuid.Nil && requester == cv.UserID)
}

// Export produces the requested document for cvID. Errors are the taxonomy
// the API exposes: domain.ErrNotFound, domain.ErrNotPermitted, or
// domain.ErrExportFailed with the cause logged for operators only.
func (e *Exporter) Export(ctx context.Context, requester, cvID uuid.UUID, format ExportFormat) (*ExportResult, error) {
	cv, err := e.cvs.GetCV(ctx, cvID)
	if err != nil {
		return nil, err
	}
	if !CanView(cv, requester) {
		return nil, domain.ErrNotPermitted
	}

	switch format {
	case FormatPDF:
		tpl, err := e.registry.Get(ctx, cv.TemplateID)
		if err != nil {
			return nil, err
		}
		html, err := RenderHTML(cv, tpl)
		if err != nil {
			log.Error().Err(err).Str("cv_id", cvID.String()).Str("format", "pdf").Msg("html render failed")
			return nil, domain.ErrExportFailed
		}
		pdf, err := e.pdf.RenderHTMLToPDF(ctx, html)
		if err != nil {
			log.Error().Err(err).Str("cv_id", cvID.String()).Str("format", "pdf").Msg("pdf capture failed")
			return nil, domain.ErrExportFailed
		}
		e.registry.NoteUse(ctx, tpl.ID)
		return &ExportResult{Data: pdf, ContentType: ContentTypePDF, Filename: exportFilename(cv.Title, "pdf")}, nil

	case FormatDOCX:
		docx, err := RenderDOCX(cv)
		if err != nil {
			log.Error().Err(err).Str("cv_id", cvID.String()).Str("format", "docx").Msg("docx assembly failed")
			return nil, domain.ErrExportFailed
		}
		return &ExportResult{Data: docx, ContentType: ContentTypeDOCX, Filename: exportFilename(cv.Title, "docx")}, nil

	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// exportFilename derives a download filename from the CV title.
func exportFilename(title, ext string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "CV"
	}
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "CV"
	}
	return name + "." + ext
}
