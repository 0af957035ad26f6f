package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Hayal27/Cv-generator/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCVStore struct {
	cvs map[uuid.UUID]*domain.CV
}

func (s *stubCVStore) GetCV(ctx context.Context, id uuid.UUID) (*domain.CV, error) {
	if cv, ok := s.cvs[id]; ok {
		snapshot := *cv
		return &snapshot, nil
	}
	return nil, fmt.Errorf("cv %s: %w", id, domain.ErrNotFound)
}

type stubPDFRenderer struct {
	out []byte
	err error
}

func (s *stubPDFRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return s.out, s.err
}

func newTestExporter(cv *domain.CV, pdf *stubPDFRenderer) *Exporter {
	store := &stubCVStore{cvs: map[uuid.UUID]*domain.CV{}}
	if cv != nil {
		store.cvs[cv.ID] = cv
	}
	return NewExporter(store, NewRegistry(nil, nil), pdf)
}

func ownedCV(owner uuid.UUID) *domain.CV {
	cv := fullCV()
	cv.ID = uuid.New()
	cv.UserID = owner
	return cv
}

func TestExportPDF(t *testing.T) {
	owner := uuid.New()
	cv := ownedCV(owner)
	exp := newTestExporter(cv, &stubPDFRenderer{out: []byte("%PDF-1.4 fake")})

	res, err := exp.Export(context.Background(), owner, cv.ID, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, ContentTypePDF, res.ContentType)
	assert.Equal(t, "Senior_Engineer_CV.pdf", res.Filename)
	assert.NotEmpty(t, res.Data)
}

func TestExportDOCX(t *testing.T) {
	owner := uuid.New()
	cv := ownedCV(owner)
	exp := newTestExporter(cv, &stubPDFRenderer{})

	res, err := exp.Export(context.Background(), owner, cv.ID, FormatDOCX)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeDOCX, res.ContentType)
	assert.Equal(t, "Senior_Engineer_CV.docx", res.Filename)
	assert.NotEmpty(t, res.Data)
}

func TestExportNotFound(t *testing.T) {
	exp := newTestExporter(nil, &stubPDFRenderer{})
	_, err := exp.Export(context.Background(), uuid.New(), uuid.New(), FormatPDF)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportPrivateCVDeniedToOthers(t *testing.T) {
	owner := uuid.New()
	cv := ownedCV(owner)
	cv.IsPublic = false
	exp := newTestExporter(cv, &stubPDFRenderer{out: []byte("%PDF")})

	_, err := exp.Export(context.Background(), uuid.New(), cv.ID, FormatPDF)
	assert.ErrorIs(t, err, domain.ErrNotPermitted)

	// anonymous requester is also refused
	_, err = exp.Export(context.Background(), uuid.Nil, cv.ID, FormatPDF)
	assert.ErrorIs(t, err, domain.ErrNotPermitted)
}

func TestExportPublicCVAllowedToAnyone(t *testing.T) {
	cv := ownedCV(uuid.New())
	cv.IsPublic = true
	exp := newTestExporter(cv, &stubPDFRenderer{out: []byte("%PDF")})

	_, err := exp.Export(context.Background(), uuid.Nil, cv.ID, FormatDOCX)
	assert.NoError(t, err)
}

func TestExportRendererFailureIsGeneric(t *testing.T) {
	owner := uuid.New()
	cv := ownedCV(owner)
	exp := newTestExporter(cv, &stubPDFRenderer{err: errors.New("chrome crashed: /tmp/render-123")})

	_, err := exp.Export(context.Background(), owner, cv.ID, FormatPDF)
	require.ErrorIs(t, err, domain.ErrExportFailed)
	// the cause must not leak through the returned error
	assert.NotContains(t, err.Error(), "chrome crashed")
}

func TestExportUnsupportedFormat(t *testing.T) {
	owner := uuid.New()
	cv := ownedCV(owner)
	exp := newTestExporter(cv, &stubPDFRenderer{})

	_, err := exp.Export(context.Background(), owner, cv.ID, ExportFormat("odt"))
	assert.Error(t, err)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "My_CV_2024.pdf", exportFilename("My CV 2024", "pdf"))
	assert.Equal(t, "CV.pdf", exportFilename("", "pdf"))
	assert.Equal(t, "CV.docx", exportFilename("///", "docx"))
	assert.Equal(t, "rsum.pdf", exportFilename("résumé", "pdf"))
}
