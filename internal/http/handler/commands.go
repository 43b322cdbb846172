package handler

import (
	"github.com/gofiber/fiber/v2"

	"qrdesk/internal/model"
	"qrdesk/internal/service"
)

// nameRequest is the body of the greet command.
type nameRequest struct {
	Name string `json:"name"`
}

// urlRequest carries a QR payload; the front end names it "url".
type urlRequest struct {
	URL string `json:"url"`
}

// Greet handles POST /commands/greet.
//
// @Summary Greet
// @Accept json
// @Produce json
// @Param body body nameRequest true "name to greet"
// @Success 200 {object} model.Greeting
// @Router /commands/greet [post]
func Greet(svc service.CommandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req nameRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		return c.JSON(model.Greeting{Message: svc.Greet(c.UserContext(), req.Name)})
	}
}

// GenerateQRCode handles POST /commands/generate_qrcode and answers with the SVG itself.
//
// @Summary Generate an SVG QR code
// @Accept json
// @Produce image/svg+xml
// @Param body body urlRequest true "payload to encode"
// @Success 200 {string} string "SVG markup"
// @Failure 413 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /commands/generate_qrcode [post]
func GenerateQRCode(svc service.CommandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req urlRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		markup, err := svc.GenerateQRCode(c.UserContext(), req.URL)
		if err != nil {
			return writeCommandError(c, err)
		}
		c.Set(fiber.HeaderContentType, "image/svg+xml")
		return c.SendString(markup)
	}
}

// GetDownloadsPath handles GET /commands/get_downloads_path.
//
// @Summary Resolve the downloads directory
// @Produce json
// @Success 200 {object} model.DownloadsPath
// @Router /commands/get_downloads_path [get]
func GetDownloadsPath(svc service.CommandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.DownloadsPath{Path: svc.GetDownloadsPath(c.UserContext())})
	}
}

// OpenDownloadsFolder handles POST /commands/open_downloads_folder.
//
// @Summary Open the downloads directory in the file browser
// @Success 204
// @Failure 500 {object} errorPayload
// @Router /commands/open_downloads_folder [post]
func OpenDownloadsFolder(svc service.CommandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.OpenDownloadsFolder(c.UserContext()); err != nil {
			return writeCommandError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ValidateURL handles POST /commands/validate_url.
//
// @Summary Grade a URL before encoding
// @Accept json
// @Produce json
// @Param body body urlRequest true "input to check"
// @Success 200 {object} model.URLCheck
// @Router /commands/validate_url [post]
func ValidateURL(svc service.CommandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req urlRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		return c.JSON(svc.ValidateURL(c.UserContext(), req.URL))
	}
}
