package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/SamuelLeutner/student-risk-dashboard/api/requests"
	"github.com/SamuelLeutner/student-risk-dashboard/dashboard"
	"github.com/SamuelLeutner/student-risk-dashboard/models"
	"github.com/SamuelLeutner/student-risk-dashboard/storage"
)

var validate = validator.New()

// CreateClickHandler dispatches a click on a live page view and returns the
// notifications it produced. A handler failure is reported next to the
// notifications of the handlers that did run.
func CreateClickHandler(store storage.PageStore) fiber.Handler {
	return func(c fiber.Ctx) error {
		page, err := store.Get(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Page view not found",
				"details": err.Error(),
			})
		}

		params := new(requests.ClickRequest)
		if err := c.Bind().Body(params); err != nil {
			log.Printf("Handler: Error parsing click body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"details": err.Error(),
			})
		}
		if err := validate.Struct(params); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"details": err.Error(),
			})
		}

		notifications, clickErr := page.ClickAndDrain(params.Selector, params.Index)
		if errors.Is(clickErr, dashboard.ErrNoSuchElement) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Click target not found",
				"details": clickErr.Error(),
			})
		}

		resp := models.ClickResponse{Notifications: notifications}
		if clickErr != nil {
			log.Printf("Handler: Click on %q[%d] failed: %v", params.Selector, params.Index, clickErr)
			resp.Error = clickErr.Error()
		}
		return c.Status(fiber.StatusOK).JSON(resp)
	}
}
