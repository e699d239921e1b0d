package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/czdsgnr/roubenky/routes"
	"github.com/czdsgnr/roubenky/services"
	"github.com/czdsgnr/roubenky/storage"
	"github.com/czdsgnr/roubenky/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()

	// Initialize services
	storage.InitializeDB()
	storage.InitializeRedis()

	// Live reservation snapshot for the booking calendar
	services.Feed.Start(context.Background())

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	// Minimal middleware - compression only
	app.Use(iris.Compression)

	// JWT Verifiers
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	// Health check endpoint
	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	// Routes
	availability := app.Party("/api/availability")
	{
		availability.Get("/calendar", routes.GetCalendar)
		availability.Get("/occupied", routes.GetOccupiedDates)
		availability.Post("/select", routes.SelectDate)
	}

	booking := app.Party("/api/booking")
	{
		booking.Post("/quote", routes.QuoteStay)
	}

	reservations := app.Party("/api/reservations")
	{
		reservations.Post("/", routes.CreateReservation)
	}

	content := app.Party("/api/content")
	{
		content.Get("/", routes.GetContent)
	}

	// Admin auth lives outside the guarded party
	app.Post("/api/admin/login", routes.AdminLogin)
	app.Post("/api/admin/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/reservations", routes.AdminListReservations)
		admin.Get("/reservations/{id:uint}", routes.AdminGetReservation)
		admin.Patch("/reservations/{id:uint}/status", routes.AdminUpdateReservationStatus)
		admin.Post("/reservations/{id:uint}/cancel", routes.AdminCancelReservation)
		admin.Put("/content", routes.AdminUpdateContent)
		admin.Post("/images", routes.AdminUploadImage)
		admin.Get("/images", routes.AdminListImages)
		admin.Delete("/images/{id:uint}", routes.AdminDeleteImage)
		admin.Get("/stats", routes.AdminStats)
	}

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("🚀 Server starting on %s\n", addr)

	// Start server
	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
