package http

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Hayal27/Cv-generator/internal/adapter/repository"
	"github.com/Hayal27/Cv-generator/internal/domain"
	"github.com/Hayal27/Cv-generator/internal/model"
	"github.com/Hayal27/Cv-generator/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CVStore is what the transport layer needs from CV persistence.
type CVStore interface {
	Create(ctx context.Context, cv *domain.CV) error
	Update(ctx context.Context, cv *domain.CV) error
	GetCV(ctx context.Context, id uuid.UUID) (*domain.CV, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]repository.CVSummary, int, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	SetVisibility(ctx context.Context, id, userID uuid.UUID, isPublic bool) error
}

// Exporter produces a document for one CV in one format.
type Exporter interface {
	Export(ctx context.Context, requester, cvID uuid.UUID, format usecase.ExportFormat) (*usecase.ExportResult, error)
}

// TemplateLister exposes the active template set for the picker UI.
type TemplateLister interface {
	List(ctx context.Context) ([]domain.Template, error)
}

type Handler struct {
	cvs       CVStore
	exporter  Exporter
	templates TemplateLister
}

func NewHandler(cvs CVStore, exporter Exporter, templates TemplateLister) *Handler {
	return &Handler{cvs: cvs, exporter: exporter, templates: templates}
}

// Register mounts all routes. There is deliberately a single creation
// endpoint.
func (h *Handler) Register(app *fiber.App, jwtSecret string) {
	api := app.Group("/api")

	api.Get("/templates", h.ListTemplates)

	cvs := api.Group("/cvs")
	cvs.Post("/", AuthRequired(jwtSecret), h.CreateCV)
	cvs.Get("/my-cvs", AuthRequired(jwtSecret), h.MyCVs)
	cvs.Get("/:id", AuthOptional(jwtSecret), h.GetCV)
	cvs.Put("/:id", AuthRequired(jwtSecret), h.UpdateCV)
	cvs.Delete("/:id", AuthRequired(jwtSecret), h.DeleteCV)
	cvs.Patch("/:id/visibility", AuthRequired(jwtSecret), h.SetVisibility)
	cvs.Post("/:id/export/:format", AuthOptional(jwtSecret), h.Export)
}

func parseCVID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// decodeCV validates and decodes a create/update body, ignoring any
// identity fields the client may have sent.
func decodeCV(c *fiber.Ctx) (*domain.CV, error) {
	body := c.Body()
	if err := model.ValidatePayload(body); err != nil {
		return nil, err
	}
	var cv domain.CV
	if err := json.Unmarshal(body, &cv); err != nil {
		return nil, err
	}
	cv.ID = uuid.Nil
	cv.UserID = uuid.Nil
	if cv.TemplateID == "" {
		cv.TemplateID = domain.DefaultTemplateID
	}
	model.SanitizeCV(&cv)
	cv.Normalize()
	return &cv, nil
}

func (h *Handler) CreateCV(c *fiber.Ctx) error {
	cv, err := decodeCV(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation error", "details": err.Error()})
	}
	cv.ID = uuid.New()
	cv.UserID = requesterID(c)

	if err := h.cvs.Create(c.UserContext(), cv); err != nil {
		log.Error().Err(err).Msg("cv create failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create CV"})
	}
	return c.Status(fiber.StatusCreated).JSON(cv)
}

func (h *Handler) MyCVs(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	items, total, err := h.cvs.ListByUser(c.UserContext(), requesterID(c), page, limit)
	if err != nil {
		log.Error().Err(err).Msg("cv list failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch CVs"})
	}
	if limit < 1 {
		limit = 10
	}
	totalPages := (total + limit - 1) / limit
	return c.JSON(fiber.Map{
		"cvs": items,
		"pagination": fiber.Map{
			"currentPage":  page,
			"totalPages":   totalPages,
			"totalItems":   total,
			"itemsPerPage": limit,
		},
	})
}

func (h *Handler) GetCV(c *fiber.Ctx) error {
	id, err := parseCVID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid CV id"})
	}
	cv, err := h.cvs.GetCV(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CV not found"})
		}
		log.Error().Err(err).Msg("cv fetch failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch CV"})
	}
	if !usecase.CanView(cv, requesterID(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
	}
	return c.JSON(cv)
}

func (h *Handler) UpdateCV(c *fiber.Ctx) error {
	id, err := parseCVID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid CV id"})
	}
	cv, err := decodeCV(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation error", "details": err.Error()})
	}
	cv.ID = id
	cv.UserID = requesterID(c)

	if err := h.cvs.Update(c.UserContext(), cv); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CV not found or access denied"})
		}
		log.Error().Err(err).Msg("cv update failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update CV"})
	}
	return c.JSON(cv)
}

func (h *Handler) DeleteCV(c *fiber.Ctx) error {
	id, err := parseCVID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid CV id"})
	}
	if err := h.cvs.Delete(c.UserContext(), id, requesterID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CV not found or access denied"})
		}
		log.Error().Err(err).Msg("cv delete failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete CV"})
	}
	return c.JSON(fiber.Map{"message": "CV deleted"})
}

type visibilityReq struct {
	IsPublic *bool `json:"isPublic"`
}

func (h *Handler) SetVisibility(c *fiber.Ctx) error {
	id, err := parseCVID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid CV id"})
	}
	var req visibilityReq
	if err := c.BodyParser(&req); err != nil || req.IsPublic == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "isPublic must be a boolean"})
	}
	if err := h.cvs.SetVisibility(c.UserContext(), id, requesterID(c), *req.IsPublic); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CV not found or access denied"})
		}
		log.Error().Err(err).Msg("cv visibility update failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update visibility"})
	}
	return c.JSON(fiber.Map{"isPublic": *req.IsPublic})
}

// Export streams the requested document. Exporter-internal failures come
// back as a generic message; the cause is only in the server log.
func (h *Handler) Export(c *fiber.Ctx) error {
	id, err := parseCVID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid CV id"})
	}
	format := usecase.ExportFormat(c.Params("format"))
	if format != usecase.FormatPDF && format != usecase.FormatDOCX {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported export format"})
	}

	res, err := h.exporter.Export(c.UserContext(), requesterID(c), id, format)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CV not found"})
		case errors.Is(err, domain.ErrNotPermitted):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
		}
	}

	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.Data)
}

type templateInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category"`
	PreviewImage string `json:"previewImage,omitempty"`
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	ts, err := h.templates.List(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("template list failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch templates"})
	}
	out := make([]templateInfo, 0, len(ts))
	for _, t := range ts {
		out = append(out, templateInfo{
			ID: t.ID, Name: t.Name, Description: t.Description,
			Category: t.Category, PreviewImage: t.PreviewImage,
		})
	}
	return c.JSON(fiber.Map{"templates": out})
}
