package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hayal27/Cv-generator/internal/adapter/repository"
	"github.com/Hayal27/Cv-generator/internal/domain"
	"github.com/Hayal27/Cv-generator/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := Claims{
		UserID:    userID,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

type memCVStore struct {
	cvs map[uuid.UUID]*domain.CV
}

func newMemCVStore() *memCVStore {
	return &memCVStore{cvs: map[uuid.UUID]*domain.CV{}}
}

func (s *memCVStore) Create(ctx context.Context, cv *domain.CV) error {
	snapshot := *cv
	s.cvs[cv.ID] = &snapshot
	return nil
}

func (s *memCVStore) Update(ctx context.Context, cv *domain.CV) error {
	existing, ok := s.cvs[cv.ID]
	if !ok || existing.UserID != cv.UserID {
		return domain.ErrNotFound
	}
	snapshot := *cv
	s.cvs[cv.ID] = &snapshot
	return nil
}

func (s *memCVStore) GetCV(ctx context.Context, id uuid.UUID) (*domain.CV, error) {
	cv, ok := s.cvs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	snapshot := *cv
	return &snapshot, nil
}

func (s *memCVStore) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]repository.CVSummary, int, error) {
	out := []repository.CVSummary{}
	for _, cv := range s.cvs {
		if cv.UserID == userID {
			out = append(out, repository.CVSummary{ID: cv.ID, Title: cv.Title})
		}
	}
	return out, len(out), nil
}

func (s *memCVStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	cv, ok := s.cvs[id]
	if !ok || cv.UserID != userID {
		return domain.ErrNotFound
	}
	delete(s.cvs, id)
	return nil
}

func (s *memCVStore) SetVisibility(ctx context.Context, id, userID uuid.UUID, isPublic bool) error {
	cv, ok := s.cvs[id]
	if !ok || cv.UserID != userID {
		return domain.ErrNotFound
	}
	cv.IsPublic = isPublic
	return nil
}

type stubPDF struct{}

func (stubPDF) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

func newTestApp(t *testing.T) (*fiber.App, *memCVStore) {
	t.Helper()
	store := newMemCVStore()
	registry := usecase.NewRegistry(nil, nil)
	exporter := usecase.NewExporter(store, registry, stubPDF{})

	app := fiber.New()
	NewHandler(store, exporter, registry).Register(app, testSecret)
	return app, store
}

type testResponse struct {
	Code   int
	Header nethttp.Header
	Body   []byte
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) testResponse {
	t.Helper()
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return testResponse{Code: resp.StatusCode, Header: resp.Header, Body: data}
}

func cvPayload() map[string]any {
	return map[string]any{
		"title": "My CV",
		"personalInfo": map[string]any{
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"email":     "ada@example.com",
		},
	}
}

func TestCreateCV(t *testing.T) {
	app, store := newTestApp(t)
	owner := uuid.New()
	token := signToken(t, owner)

	rec := doJSON(t, app, "POST", "/api/cvs/", token, cvPayload())
	require.Equal(t, fiber.StatusCreated, rec.Code, string(rec.Body))

	var created domain.CV
	require.NoError(t, json.Unmarshal(rec.Body, &created))
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, domain.DefaultTemplateID, created.TemplateID)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Len(t, store.cvs, 1)
}

func TestCreateCVRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)
	rec := doJSON(t, app, "POST", "/api/cvs/", "", cvPayload())
	assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
}

func TestCreateCVValidates(t *testing.T) {
	app, _ := newTestApp(t)
	token := signToken(t, uuid.New())

	bad := cvPayload()
	bad["title"] = "ab"
	rec := doJSON(t, app, "POST", "/api/cvs/", token, bad)
	assert.Equal(t, fiber.StatusBadRequest, rec.Code)
}

func TestCreateCVIgnoresClientIdentity(t *testing.T) {
	app, store := newTestApp(t)
	owner := uuid.New()
	token := signToken(t, owner)

	p := cvPayload()
	p["userId"] = uuid.New().String()
	rec := doJSON(t, app, "POST", "/api/cvs/", token, p)
	require.Equal(t, fiber.StatusCreated, rec.Code)

	for _, cv := range store.cvs {
		assert.Equal(t, owner, cv.UserID)
	}
}

func seedCV(store *memCVStore, owner uuid.UUID, public bool) *domain.CV {
	cv := &domain.CV{
		ID:         uuid.New(),
		UserID:     owner,
		Title:      "Seeded CV",
		TemplateID: domain.DefaultTemplateID,
		IsPublic:   public,
		PersonalInfo: domain.PersonalInfo{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		},
	}
	cv.Normalize()
	store.cvs[cv.ID] = cv
	return cv
}

func TestGetCVVisibility(t *testing.T) {
	app, store := newTestApp(t)
	owner := uuid.New()
	private := seedCV(store, owner, false)
	public := seedCV(store, owner, true)

	// owner reads private
	rec := doJSON(t, app, "GET", "/api/cvs/"+private.ID.String(), signToken(t, owner), nil)
	assert.Equal(t, fiber.StatusOK, rec.Code)

	// stranger gets 403 on private, not 404
	rec = doJSON(t, app, "GET", "/api/cvs/"+private.ID.String(), signToken(t, uuid.New()), nil)
	assert.Equal(t, fiber.StatusForbidden, rec.Code)

	// anonymous reads public
	rec = doJSON(t, app, "GET", "/api/cvs/"+public.ID.String(), "", nil)
	assert.Equal(t, fiber.StatusOK, rec.Code)

	// unknown id is 404
	rec = doJSON(t, app, "GET", "/api/cvs/"+uuid.New().String(), "", nil)
	assert.Equal(t, fiber.StatusNotFound, rec.Code)
}

func TestUpdateCVOwnerOnly(t *testing.T) {
	app, store := newTestApp(t)
	owner := uuid.New()
	cv := seedCV(store, owner, false)

	p := cvPayload()
	p["title"] = "Updated Title"

	rec := doJSON(t, app, "PUT", "/api/cvs/"+cv.ID.String(), signToken(t, uuid.New()), p)
	assert.Equal(t, fiber.StatusNotFound, rec.Code)

	rec = doJSON(t, app, "PUT", "/api/cvs/"+cv.ID.String(), signToken(t, owner), p)
	require.Equal(t, fiber.StatusOK, rec.Code)
	assert.Equal(t, "Updated Title", store.cvs[cv.ID].Title)
}

func TestDeleteCV(t *testing.T) {
	app, store := newTestApp(t)
	owner := uuid.New()
	cv := seedCV(store, owner, false)

	rec := doJSON(t, app, "DELETE", "/api/cvs/"+cv.ID.String(), signToken(t, owner), nil)
	assert.Equal(t, fiber.StatusOK, rec.Code)
	assert.Empty(t, store.cvs)
}

func TestSetVisibility(t *testing.T) {
	app, store := newTestApp(t)
	owner := uuid.New()
	cv := seedCV(store, owner, false)

	rec := doJSON(t, app, "PATCH", "/api/cvs/"+cv.ID.String()+"/visibility", signToken(t, owner),
		map[string]any{"isPublic": true})
	require.Equal(t, fiber.StatusOK, rec.Code)
	assert.True(t, store.cvs[cv.ID].IsPublic)

	rec = doJSON(t, app, "PATCH", "/api/cvs/"+cv.ID.String()+"/visibility", signToken(t, owner),
		map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, rec.Code)
}

func TestMyCVs(t *testing.T) {
	app, store := newTestApp(t)
	owner := uuid.New()
	seedCV(store, owner, false)
	seedCV(store, owner, true)
	seedCV(store, uuid.New(), true)

	rec := doJSON(t, app, "GET", "/api/cvs/my-cvs", signToken(t, owner), nil)
	require.Equal(t, fiber.StatusOK, rec.Code)

	var out struct {
		CVs        []json.RawMessage `json:"cvs"`
		Pagination struct {
			TotalItems int `json:"totalItems"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body, &out))
	assert.Len(t, out.CVs, 2)
	assert.Equal(t, 2, out.Pagination.TotalItems)
}

func TestExportEndpoint(t *testing.T) {
	app, store := newTestApp(t)
	owner := uuid.New()
	cv := seedCV(store, owner, false)
	token := signToken(t, owner)

	for _, tc := range []struct {
		format      string
		contentType string
	}{
		{"pdf", usecase.ContentTypePDF},
		{"docx", usecase.ContentTypeDOCX},
	} {
		rec := doJSON(t, app, "POST", fmt.Sprintf("/api/cvs/%s/export/%s", cv.ID, tc.format), token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code, tc.format)
		assert.Equal(t, tc.contentType, rec.Header.Get("Content-Type"), tc.format)
		assert.Contains(t, rec.Header.Get("Content-Disposition"), "attachment", tc.format)
		assert.NotEmpty(t, rec.Body, tc.format)
	}

	// stranger exporting a private CV gets 403
	rec := doJSON(t, app, "POST", fmt.Sprintf("/api/cvs/%s/export/pdf", cv.ID), signToken(t, uuid.New()), nil)
	assert.Equal(t, fiber.StatusForbidden, rec.Code)

	// unknown format is a client error
	rec = doJSON(t, app, "POST", fmt.Sprintf("/api/cvs/%s/export/odt", cv.ID), token, nil)
	assert.Equal(t, fiber.StatusBadRequest, rec.Code)
}

func TestListTemplates(t *testing.T) {
	app, _ := newTestApp(t)
	rec := doJSON(t, app, "GET", "/api/templates", "", nil)
	require.Equal(t, fiber.StatusOK, rec.Code)

	var out struct {
		Templates []struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			HTMLTemplate string `json:"htmlTemplate"`
		} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body, &out))
	assert.Len(t, out.Templates, 5)
	for _, tpl := range out.Templates {
		assert.NotEmpty(t, tpl.ID)
		// metadata only, no markup in the listing
		assert.Empty(t, tpl.HTMLTemplate)
	}
}
