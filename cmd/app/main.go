package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pathwise/cmd/fx/account_fx"
	"pathwise/cmd/fx/college_fx"
	"pathwise/cmd/fx/completion_fx"
	"pathwise/cmd/fx/db_fx"
	"pathwise/cmd/fx/jobs_fx"
	"pathwise/cmd/fx/quiz_fx"
	"pathwise/cmd/fx/roadmap_fx"
	"pathwise/cmd/fx/tree_fx"
	"pathwise/internal/api/controllers"
	"pathwise/internal/infra"
	"pathwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		completion_fx.Module,
		account_fx.Module,
		quiz_fx.Module,
		roadmap_fx.Module,
		tree_fx.Module,
		college_fx.Module,
		jobs_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	if err := infra.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			if err := server.Shutdown(ctx); err != nil {
				log.Printf("Error shutting down server: %v", err)
			}
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	careerQuizController *controllers.CareerQuizController,
	quizFlowController *controllers.QuizFlowController,
	roadmapController *controllers.RoadmapController,
	careerTreeController *controllers.CareerTreeController,
	collegeController *controllers.CollegeController,
	jobsController *controllers.JobsController,
) *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Trace-ID"},
		AllowCredentials: false,
	}))
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		careerQuizController,
		quizFlowController,
		roadmapController,
		careerTreeController,
		collegeController,
		jobsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	careerQuizController *controllers.CareerQuizController,
	quizFlowController *controllers.QuizFlowController,
	roadmapController *controllers.RoadmapController,
	careerTreeController *controllers.CareerTreeController,
	collegeController *controllers.CollegeController,
	jobsController *controllers.JobsController) {

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", accountController.Register)
	auth.POST("/login", accountController.Login)

	profile := api.Group("/profile", middleware.JWTAuthMiddleware())
	profile.GET("", accountController.GetProfile)
	profile.PUT("", accountController.UpdateProfile)

	quiz := api.Group("/career-quiz")
	quiz.POST("", middleware.OptionalAuthMiddleware(), careerQuizController.Generate)
	quiz.GET("/history", middleware.JWTAuthMiddleware(), careerQuizController.History)

	flow := quiz.Group("/flow", middleware.OptionalAuthMiddleware())
	flow.POST("", quizFlowController.Start)
	flow.GET("/:id", quizFlowController.Get)
	flow.POST("/:id/answer", quizFlowController.SubmitAnswer)
	flow.POST("/:id/next", quizFlowController.GoNext)
	flow.POST("/:id/back", quizFlowController.GoBack)
	flow.POST("/:id/retake", quizFlowController.Retake)

	roadmap := api.Group("/roadmap")
	roadmap.POST("", middleware.OptionalAuthMiddleware(), roadmapController.Generate)
	roadmap.GET("/history", middleware.JWTAuthMiddleware(), roadmapController.History)

	tree := api.Group("/career-tree")
	tree.POST("", middleware.OptionalAuthMiddleware(), careerTreeController.Generate)
	tree.GET("/history", middleware.JWTAuthMiddleware(), careerTreeController.History)

	api.POST("/college-search", middleware.JWTAuthMiddleware(), collegeController.Search)

	jobs := api.Group("/jobs")
	jobs.GET("/search", jobsController.Search)

	saved := jobs.Group("/saved", middleware.JWTAuthMiddleware())
	saved.GET("", jobsController.ListSaved)
	saved.POST("", jobsController.Save)
	saved.PATCH("", jobsController.UpdateStatus)
	saved.DELETE("", jobsController.Delete)
}
