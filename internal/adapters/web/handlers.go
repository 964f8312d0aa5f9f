package web

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"pulse-share/internal/adapters/remote"
	"pulse-share/internal/catalog"
	"pulse-share/internal/domain"
	"pulse-share/internal/usecases"
	"pulse-share/pkg/log"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// requestTimeout bounds a whole share request, remote attempt included.
const requestTimeout = 30 * time.Second

// Handlers contains the HTTP handlers for the share API.
type Handlers struct {
	getShare *usecases.GetShareUseCase
	generate *usecases.GenerateShareUseCase
	apiToken string
}

// NewHandlers creates a new Handlers instance.
// A non-empty apiToken gates the compatible generation endpoint.
func NewHandlers(getShare *usecases.GetShareUseCase, generate *usecases.GenerateShareUseCase, apiToken string) *Handlers {
	return &Handlers{
		getShare: getShare,
		generate: generate,
		apiToken: apiToken,
	}
}

// ContentTypeView describes one content type for API clients.
type ContentTypeView struct {
	Type      domain.ContentType  `json:"type"`
	Emoji     string              `json:"emoji"`
	Label     string              `json:"label"`
	Known     bool                `json:"known"`
	Platforms []domain.PlatformID `json:"platforms"`
}

// ShareResponse is the body returned by the share endpoint.
type ShareResponse struct {
	ContentType domain.ContentType `json:"content_type"`
	Source      domain.Source      `json:"source"`
	Content     domain.ShareSet    `json:"content"`
}

// render is a helper to render templ components.
func render(c *fiber.Ctx, component templ.Component) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return adaptor.HTTPHandler(templ.Handler(component))(c)
}

// Health reports liveness.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Platforms lists every platform profile in display order.
func (h *Handlers) Platforms(c *fiber.Ctx) error {
	return c.JSON(catalog.Profiles())
}

// ContentTypes lists the known content types.
func (h *Handlers) ContentTypes(c *fiber.Ctx) error {
	types := catalog.ContentTypes()
	views := make([]ContentTypeView, 0, len(types))
	for _, ct := range types {
		views = append(views, contentTypeView(ct))
	}
	return c.JSON(views)
}

// ContentType describes one content type. Unknown types report the fallbacks
// generation would use for them.
func (h *Handlers) ContentType(c *fiber.Ctx) error {
	ct, err := ParseContentType(c.Params("type"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	return c.JSON(contentTypeView(ct))
}

func contentTypeView(ct domain.ContentType) ContentTypeView {
	meta := catalog.DisplayMeta(ct)
	return ContentTypeView{
		Type:      ct,
		Emoji:     meta.Emoji,
		Label:     meta.Label,
		Known:     ct.Known(),
		Platforms: catalog.SupportedPlatforms(ct),
	}
}

// Share generates posts for every platform the content type supports.
// A bearer token, when present, is passed through to the remote generator.
func (h *Handlers) Share(c *fiber.Ctx) error {
	ct, err := ParseContentType(c.Params("type"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	fields, err := parseBodyFields(c)
	if err != nil {
		log.GlobalWarnCtx(c.UserContext(), "invalid share body", "content_type", string(ct), "error", err.Error())
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	set, source, err := h.getShare.Execute(ctx, ct, domain.NewContentItem(ct, fields), BearerToken(c))
	if err != nil {
		log.GlobalErrorCtx(ctx, "share generation failed", "content_type", string(ct), "error", err.Error())
		return errorJSON(c, statusFor(err), err)
	}

	return c.JSON(ShareResponse{ContentType: ct, Source: source, Content: set})
}

// Preview renders the locally generated posts as an HTML page.
func (h *Handlers) Preview(c *fiber.Ctx) error {
	ct, err := ParseContentType(c.Params("type"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	fields, err := parseQueryFields(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	item := domain.NewContentItem(ct, fields)
	set, err := h.generate.GenerateLocal(ct, item)
	if err != nil {
		log.GlobalErrorCtx(c.UserContext(), "preview generation failed", "content_type", string(ct), "error", err.Error())
		return errorJSON(c, statusFor(err), err)
	}

	return render(c, PreviewPage(NewPreviewView(ct, item, set)))
}

// GenerateUniversal serves the remote generator wire contract from local
// templates, so one instance can act as another's remote generator.
func (h *Handlers) GenerateUniversal(c *fiber.Ctx) error {
	if h.apiToken != "" && subtle.ConstantTimeCompare([]byte(BearerToken(c)), []byte(h.apiToken)) != 1 {
		return errorJSON(c, fiber.StatusUnauthorized, domain.ErrUnauthorized)
	}

	var req remote.Request
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, domain.ErrInvalidContent)
	}
	ct, err := ParseContentType(req.ContentType)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	fields := limitFields(req.CustomData)
	if fields.ID == "" {
		fields.ID = req.ContentID
	}
	set, err := h.generate.GenerateLocal(ct, domain.NewContentItem(ct, fields))
	if err != nil {
		return errorJSON(c, statusFor(err), err)
	}

	if len(req.Platforms) > 0 {
		filtered := make(domain.ShareSet, len(req.Platforms))
		for _, p := range req.Platforms {
			if content, ok := set[p]; ok {
				filtered[p] = content
			}
		}
		set = filtered
	}

	return c.JSON(remote.Response{Content: set})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidContent):
		return fiber.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"error": friendlyError(err)})
}

// friendlyError returns a neutral, non-blaming error message.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidContent):
		return "That content couldn't be read. Check the content type and fields and try again."
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	case errors.Is(err, domain.ErrUnauthorized):
		return "A valid API token is required for this endpoint."
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "Generating your posts took too long. Please try again in a moment."
	default:
		return "Unable to generate posts right now. Please try again in a moment."
	}
}
