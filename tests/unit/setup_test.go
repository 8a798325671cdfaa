// setup_test.go
//
// Multi-step job application form state service.
// In-process HTTP tests against an in-memory database.

package unit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/hireflow/formstate/internal/cache"
	"github.com/hireflow/formstate/internal/database"
	"github.com/hireflow/formstate/internal/handlers"
	"github.com/hireflow/formstate/internal/middleware"
	"github.com/hireflow/formstate/internal/services"
	"github.com/hireflow/formstate/internal/utils"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"gorm.io/gorm"
)

// newTestApp builds the API surface against a fresh in-memory database.
// Admin-gated routes are left unregistered; they need a live authorizer
// and belong to the e2e suite.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	zlog := zap.NewNop()
	referenceCache := cache.New(30 * time.Minute)
	referenceService := services.NewReferenceService(db, referenceCache, zlog, 50)

	app := fiber.New()

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	formHandler := &handlers.FormHandler{DB: db, Log: zlog}
	referenceHandler := &handlers.ReferenceHandler{Service: referenceService, Log: zlog}

	form := api.Group("/form")
	form.Post("/save-state", formHandler.SaveState)
	form.Get("/state/:sessionId", formHandler.GetState)
	form.Put("/update-step", formHandler.UpdateStep)
	form.Post("/submit", formHandler.Submit)

	reference := api.Group("/reference")
	reference.Get("/all", referenceHandler.All)
	reference.Get("/categories", referenceHandler.Categories)
	reference.Get("/locations", referenceHandler.Locations)
	reference.Get("/skill-categories", referenceHandler.SkillCategories)
	reference.Post("/roles/search", referenceHandler.SearchRoles)
	reference.Get("/roles/:categoryId?", referenceHandler.Roles)
	reference.Get("/skills/:skillCategoryId?", referenceHandler.Skills)

	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "Resource not found")
	})

	return app, db
}

// doJSON sends a request with a JSON body through the in-process app.
func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, target, err)
	}
	return resp
}

func doGet(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	if err != nil {
		t.Fatalf("Request GET %s failed: %v", target, err)
	}
	return resp
}
