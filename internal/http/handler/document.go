package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gemtrade/internal/service"
)

// ServeUpload handles GET /uploads/:file, streaming a stored verification
// document from object storage.
func ServeUpload(intake service.DocumentIntake) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("file")

		rc, info, err := intake.Open(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, service.ErrDocumentNameRequired) {
				return writeMessage(c, fiber.StatusBadRequest, "Invalid file name")
			}
			return writeMessage(c, fiber.StatusNotFound, "File not found")
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		return c.SendStream(rc, int(info.Size))
	}
}
