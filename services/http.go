package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"github.com/kali-linux-uz/academy_api/services/handlers"
	"github.com/kali-linux-uz/academy_api/shared"
)

type HttpService struct {
	context.DefaultService

	progressSvc   *ProgressService
	contentSvc    *ContentService
	challengeSvc  *DailyChallengeService
	terminalSvc   *TerminalService
	rateLimitSvc  *RateLimitService
	monitoringSvc *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.challengeSvc = svc.Service(CHALLENGE_SVC).(*DailyChallengeService)
	svc.terminalSvc = svc.Service(TERMINAL_SVC).(*TerminalService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())

	if os.Getenv("LOG_LEVEL") == "TRACE" {
		app.Use(logger.New())
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Use(MonitoringMiddleware(svc.monitoringSvc))
	app.Use(svc.rateLimitSvc.IPRateLimit())

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError(errors.New("page not found"), "Page not found")
	})

	svc.server = app

	log.WithField("port", svc.port).Info("HTTP server started")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	progressHandler := handlers.NewProgressHandler(svc.progressSvc, svc.contentSvc)
	contentHandler := handlers.NewContentHandler(svc.contentSvc)
	challengeHandler := handlers.NewChallengeHandler(svc.challengeSvc)
	terminalHandler := handlers.NewTerminalHandler(svc.terminalSvc)

	app.Get("/ping", svc.ping)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	progress := v1.Group("/progress")
	progress.Get("/", progressHandler.GetProgress)
	progress.Post("/xp", svc.rateLimitSvc.RateLimit("xp_grant"), progressHandler.AddXp)
	progress.Post("/level/ack", progressHandler.AckLevelUp)
	progress.Post("/streak", progressHandler.TouchStreak)
	progress.Post("/lessons/:lessonId/gates", progressHandler.UpdateLessonGate)
	progress.Put("/lessons/:lessonId/tasks", progressHandler.SetCheckedTasks)
	progress.Post("/lessons/:lessonId/complete", svc.rateLimitSvc.RateLimit("lesson_complete"), progressHandler.CompleteLesson)
	progress.Post("/reset", svc.rateLimitSvc.RateLimit("progress_reset"), progressHandler.ResetProgress)

	content := v1.Group("/content")
	content.Get("/roadmaps", contentHandler.GetRoadmaps)
	content.Get("/modules/:moduleId", contentHandler.GetModule)
	content.Get("/lessons/:lessonId", contentHandler.GetLesson)
	content.Get("/commands", contentHandler.GetCommands)
	content.Get("/commands/:commandId", contentHandler.GetCommand)
	content.Get("/gamification", contentHandler.GetGamificationConfig)

	challenge := v1.Group("/challenge")
	challenge.Get("/daily", challengeHandler.GetDailyChallenge)
	challenge.Post("/daily/complete", challengeHandler.CompleteDailyChallenge)

	terminal := v1.Group("/terminal", svc.rateLimitSvc.RateLimit("terminal_run"))
	terminal.Post("/run", terminalHandler.RunCommand)
	terminal.Post("/lessons/:lessonId/tasks/:taskId/validate", terminalHandler.ValidateLessonTask)
	terminal.Post("/challenge/validate", terminalHandler.ValidateChallenge)
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
