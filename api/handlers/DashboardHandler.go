package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/SamuelLeutner/student-risk-dashboard/config"
	"github.com/SamuelLeutner/student-risk-dashboard/dashboard"
	"github.com/SamuelLeutner/student-risk-dashboard/models"
	"github.com/SamuelLeutner/student-risk-dashboard/storage"
)

var ErrLoadTimeout = errors.New("dashboard load timed out or was cancelled")

type loadResult struct {
	page *dashboard.Page
	err  error
}

// loadPage runs the pipeline in its own goroutine so a slow records API is
// cut off by RequestTimeout instead of holding the handler. The abandoned
// load finishes on its own; its page is never stored.
func loadPage(c fiber.Ctx, pipeline *dashboard.Pipeline, store storage.PageStore, appConfig *config.Config) (string, *dashboard.Page, error) {
	ctx, cancel := context.WithTimeout(c.Context(), appConfig.RequestTimeout)
	defer cancel()

	log.Println("Handler: Starting dashboard load...")
	resultChan := make(chan loadResult, 1)

	go func() {
		page, err := pipeline.Load(ctx)
		resultChan <- loadResult{page: page, err: err}
	}()

	var result loadResult
	select {
	case <-ctx.Done():
	case result = <-resultChan:
	}
	// A fetch cut off by the deadline still yields a page with the failure
	// notice, so the context is checked whichever branch won.
	if err := ctx.Err(); err != nil {
		log.Printf("Handler: Context done during dashboard load (timeout/client disconnect): %v", err)
		return "", nil, fmt.Errorf("%w: %w", ErrLoadTimeout, err)
	}

	if result.err != nil {
		log.Printf("Handler: Error building dashboard page: %v", result.err)
		return "", nil, result.err
	}

	id, err := store.Save(result.page)
	if err != nil {
		return "", nil, err
	}

	log.Printf("Handler: Dashboard page %s ready with %d students.", id, result.page.Students())
	return id, result.page, nil
}

func CreateLoadPageHandler(pipeline *dashboard.Pipeline, store storage.PageStore, appConfig *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, page, err := loadPage(c, pipeline, store, appConfig)
		if errors.Is(err, ErrLoadTimeout) {
			return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
				"message": "Dashboard load timed out or was cancelled by client",
				"details": err.Error(),
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to build dashboard page",
				"details": err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(models.PageResponse{
			ID:            id,
			Students:      page.Students(),
			Notifications: page.Outbox().Drain(),
		})
	}
}

func CreateDashboardHTMLHandler(pipeline *dashboard.Pipeline, store storage.PageStore, appConfig *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, page, err := loadPage(c, pipeline, store, appConfig)
		if errors.Is(err, ErrLoadTimeout) {
			return fiber.NewError(fiber.StatusRequestTimeout, "Dashboard load timed out")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to build dashboard page")
		}

		markup, err := page.HTML()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to serialize dashboard page")
		}

		c.Set("X-Page-Id", id)
		c.Type("html", "utf-8")
		return c.SendString(markup)
	}
}

func CreateGetPageHandler(store storage.PageStore) fiber.Handler {
	return func(c fiber.Ctx) error {
		page, err := store.Get(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Page view not found",
				"details": err.Error(),
			})
		}

		markup, err := page.HTML()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to serialize page view",
				"details": err.Error(),
			})
		}

		c.Type("html", "utf-8")
		return c.SendString(markup)
	}
}

func CreateDeletePageHandler(store storage.PageStore) fiber.Handler {
	return func(c fiber.Ctx) error {
		if err := store.Delete(c.Params("id")); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Page view not found",
				"details": err.Error(),
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
