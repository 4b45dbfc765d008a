package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"familyboard/internal/auth"
	"familyboard/internal/config"
	"familyboard/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	verifier *auth.SessionVerifier,
	recordHandler *handler.RecordHandler,
	questionHandler *handler.QuestionHandler,
	profileHandler *handler.ProfileHandler,
	uploadHandler *handler.UploadHandler,
	envHandler *handler.EnvHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Stored uploads are served straight from the public root.
	e.Static("/uploads", cfg.UploadRoot)

	api := e.Group("/api")

	// Public routes
	api.GET("/env-check", envHandler.EnvCheck)
	api.GET("/records", recordHandler.ListRecords)
	api.GET("/records/users", recordHandler.ListUsers)
	api.GET("/questions", recordHandler.ListQuestions)
	api.GET("/profile/:id", profileHandler.GetProfile)
	api.GET("/seed/questions", seedHandler.SeedQuestions)

	// Secured routes: the external session provider mints the tokens,
	// this service only verifies them.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return verifier.Verify(token)
		},
	}))

	secured.GET("/me", func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.SessionClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
		}
		return c.JSON(http.StatusOK, echo.Map{"user_id": claims.UserID, "email": claims.Email})
	})

	secured.POST("/questions/:id/like", questionHandler.Like)
	secured.POST("/profile", profileHandler.CreateProfile)
	secured.POST("/upload", uploadHandler.Upload)
}

// CustomValidator adapts go-playground/validator to echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
