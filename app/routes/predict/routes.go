package predict

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/ml"
	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/routes/auth"
)

// SetupPredictRoutes wires the prediction form around the process-wide
// predictor constructed in main. The predictor is immutable after load, so
// sharing it across handlers is safe.
func SetupPredictRoutes(app *fiber.App, predictor *ml.Predictor) {
	page := app.Group("/predict")
	page.Use(auth.AuthMiddleware)
	page.Get("/", PredictPage(predictor))
	page.Post("/", MakePrediction(predictor))
}

// PredictPage renders the prediction form with model performance context.
func PredictPage(predictor *ml.Predictor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("predict/index", fiber.Map{
			"Title":       "Predict Student Grade",
			"CurrentPage": "predict",
			"ModelLoaded": predictor.Loaded(),
			"Accuracy":    predictor.Accuracy(),
			"Importance":  predictor.TopImportances(5),
			"UserName":    c.Locals("user_name"),
		})
	}
}

// MakePrediction processes the form and returns the grade, recommendation
// and confidence as JSON. All failures surface as error payloads; none of
// them crash the process.
func MakePrediction(predictor *ml.Predictor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in ml.PredictionInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid form submission"})
		}

		result, err := predictor.Predict(in)
		if err != nil {
			if errors.Is(err, ml.ErrModelNotLoaded) {
				return c.Status(500).JSON(fiber.Map{
					"error": "Model not loaded. Please ensure ML artifacts exist and are accessible.",
				})
			}
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(result)
	}
}
