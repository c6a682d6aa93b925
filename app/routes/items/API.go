package items

import (
	"database/sql"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/config"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/database"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/auth"
)

var validate = validator.New()

func SetupItemsRoutes(app *fiber.App) {
	api := app.Group("/api/items")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetItemsAPI)
	api.Get("/:id", GetItemByIDAPI)
	api.Post("/", CreateItemAPI)

	// Form-post variant used by the dashboard page.
	create := app.Group("/create")
	create.Use(auth.AuthMiddleware)
	create.Post("/", CreateItemForm)
}

func GetItemsAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)

	items, err := database.GetItems(config.GetDB(), limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch items"})
	}
	return c.JSON(items)
}

func GetItemByIDAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := database.GetItemByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch item"})
	}
	return c.JSON(item)
}

func CreateItemAPI(c *fiber.Ctx) error {
	var in models.ItemCreate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	item, err := database.CreateItem(config.GetDB(), in)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create item"})
	}
	return c.Status(201).JSON(item)
}

// CreateItemForm handles item creation from a submitted form and
// redirects back to the dashboard.
func CreateItemForm(c *fiber.Ctx) error {
	in := models.ItemCreate{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := database.CreateItem(config.GetDB(), in); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create item"})
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}
