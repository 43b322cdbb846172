package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"qrdesk/internal/service"
)

// ExportQRCode handles POST /exports.
//
// @Summary Save an SVG QR code to the downloads directory
// @Accept json
// @Produce json
// @Param body body urlRequest true "payload to encode"
// @Success 201 {object} model.Export
// @Failure 413 {object} errorPayload
// @Router /exports [post]
func ExportQRCode(svc service.CommandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req urlRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		exp, err := svc.ExportQRCode(c.UserContext(), req.URL)
		if err != nil {
			return writeCommandError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(exp)
	}
}

// ListExports handles GET /exports with limit & offset.
//
// @Summary List exported QR codes
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "page offset" default(0)
// @Success 200 {object} service.ExportListResult
// @Failure 404 {object} errorPayload
// @Router /exports [get]
func ListExports(svc service.CommandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.ListExports(c.UserContext(), limit, offset)
		if err != nil {
			return writeCommandError(c, err)
		}
		return c.JSON(res)
	}
}
