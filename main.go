package main

import (
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/config"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/database"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/ml"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/auth"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/dashboard"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/invites"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/items"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/predict"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/students"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/services"
)

// customErrorHandler renders web errors through the error template and
// API errors as JSON.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("error", fiber.Map{
			"Title":        "Page Not Found - Student Performance Analysis",
			"ErrorCode":    "404",
			"ErrorTitle":   "Page Not Found",
			"ErrorMessage": "The page you are looking for does not exist.",
		})
	case 500:
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Server Error - Student Performance Analysis",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Student Performance Analysis",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Load configuration and connect to the database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Load ML artifacts once. A missing model is not fatal: the predict
	// endpoints keep answering with an explicit model-not-loaded error
	// until the trainer has run.
	predictor := ml.LoadPredictor(config.AppConfig.ArtifactsDir)
	if predictor.Loaded() {
		log.Printf("ML pipeline loaded (test accuracy %s)", predictor.Accuracy())
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
		JSONEncoder:       sonic.Marshal,
		JSONDecoder:       sonic.Unmarshal,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	items.SetupItemsRoutes(app)
	invites.SetupInvitesRoutes(app)
	predict.SetupPredictRoutes(app, predictor)

	port := config.AppConfig.Port
	log.Printf("Listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
