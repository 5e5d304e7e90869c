package rest

import (
	"net/http"

	"toolhub/config"
	"toolhub/di"
	"toolhub/internal/csvmap"
	"toolhub/utils/errors"
	"toolhub/utils/logger"

	"github.com/labstack/echo/v4"
)

func registerImportRoutes(admin *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	admin.POST("/tools/import", handleImportTools(container, cfg))
	admin.GET("/tools/import/template", handleImportTemplate())
}

func handleImportTools(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		fileHeader, err := c.FormFile("csv")
		if err != nil {
			return c.JSON(http.StatusBadRequest, ImportFailureResponse{
				Success: false,
				Error:   "No CSV file provided",
			})
		}

		if cfg.Import.MaxUploadBytes > 0 && fileHeader.Size > cfg.Import.MaxUploadBytes {
			return c.JSON(http.StatusBadRequest, ImportFailureResponse{
				Success: false,
				Error:   "CSV file too large",
			})
		}

		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, ImportFailureResponse{
				Success: false,
				Error:   "Failed to read CSV file",
			})
		}
		defer file.Close()

		container.Metrics.RecordImportRun()

		result, err := container.ImportToolsUsecase.Execute(c.Request().Context(), file)
		if err != nil {
			// Request-level failure: nothing was processed
			message := "Failed to process CSV file"
			if appErr, ok := err.(*errors.AppError); ok {
				message = appErr.Message
			}
			logger.SafeErrorContext(c.Request().Context(), "csv import failed", "error", err)
			return c.JSON(http.StatusBadRequest, ImportFailureResponse{
				Success: false,
				Error:   message,
			})
		}

		for i := 0; i < result.Created; i++ {
			container.Metrics.RecordImportRow("created")
		}
		for i := 0; i < result.Updated; i++ {
			container.Metrics.RecordImportRow("updated")
		}
		for range result.Errors {
			container.Metrics.RecordImportRow("error")
		}

		logger.SafeInfoContext(c.Request().Context(), "csv import completed",
			"created", result.Created,
			"updated", result.Updated,
			"errors", len(result.Errors),
		)

		return c.JSON(http.StatusOK, ImportSuccessResponse{
			Success: true,
			Message: result.Summary(),
			Results: result,
		})
	}
}

func handleImportTemplate() echo.HandlerFunc {
	return func(c echo.Context) error {
		template, err := csvmap.Template()
		if err != nil {
			return handleError(c, err, "import_template")
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="tools-import-template.csv"`)
		return c.Blob(http.StatusOK, "text/csv", template)
	}
}
