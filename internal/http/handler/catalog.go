package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gemtrade/internal/repository"
	"gemtrade/internal/service"
)

// ListGemstones handles GET /api/gemstones with optional filters:
// type, color, min_price, max_price, min_weight, max_weight, show_sold,
// plus limit/offset pagination.
func ListGemstones(catalogSvc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeMessage(c, fiber.StatusBadRequest, "Invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeMessage(c, fiber.StatusBadRequest, "Invalid offset")
		}

		f := repository.GemstoneFilter{
			Type:  c.Query("type"),
			Color: c.Query("color"),
		}
		if f.MinPrice, err = queryFloat(c, "min_price"); err != nil {
			return writeMessage(c, fiber.StatusBadRequest, "Invalid min_price")
		}
		if f.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
			return writeMessage(c, fiber.StatusBadRequest, "Invalid max_price")
		}
		if f.MinWeight, err = queryFloat(c, "min_weight"); err != nil {
			return writeMessage(c, fiber.StatusBadRequest, "Invalid min_weight")
		}
		if f.MaxWeight, err = queryFloat(c, "max_weight"); err != nil {
			return writeMessage(c, fiber.StatusBadRequest, "Invalid max_weight")
		}
		f.ShowSold = c.QueryBool("show_sold", false)

		res, err := catalogSvc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return writeMessage(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(res)
	}
}

// GetGemstone handles GET /api/gemstones/:id.
func GetGemstone(catalogSvc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		g, err := catalogSvc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrIDRequired):
				return writeMessage(c, fiber.StatusBadRequest, "Invalid id")
			case errors.Is(err, service.ErrNotFound):
				return writeMessage(c, fiber.StatusNotFound, "Gemstone not found")
			default:
				return writeMessage(c, fiber.StatusInternalServerError, "Internal server error")
			}
		}
		return c.JSON(g)
	}
}

func queryFloat(c *fiber.Ctx, key string) (float64, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}
