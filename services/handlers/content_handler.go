package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kali-linux-uz/academy_api/dto"
	"github.com/kali-linux-uz/academy_api/shared"
)

type ContentHandler struct {
	contentSvc ContentServiceInterface
}

func NewContentHandler(contentSvc ContentServiceInterface) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

// @Summary Get Roadmaps
// @Description Get every learning track with its modules and lesson summaries
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.RoadmapCollectionResponse}
// @Router /api/v1/content/roadmaps [get]
func (h *ContentHandler) GetRoadmaps(c *fiber.Ctx) error {
	roadmaps := h.contentSvc.GetRoadmaps()

	resp := dto.RoadmapCollectionResponse{
		Roadmaps: make([]dto.RoadmapResponse, 0, len(roadmaps)),
	}
	for _, r := range roadmaps {
		resp.Roadmaps = append(resp.Roadmaps, dto.NewRoadmapResponse(r))
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Get Module
// @Description Get a single module with its lesson summaries
// @Tags content
// @Accept json
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} shared.Response{data=dto.ModuleResponse}
// @Router /api/v1/content/modules/{moduleId} [get]
func (h *ContentHandler) GetModule(c *fiber.Ctx) error {
	moduleID := c.Params("moduleId")

	module, err := h.contentSvc.GetModule(moduleID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.NewModuleResponse(*module))
}

// @Summary Get Lesson
// @Description Get full lesson content including theory, tasks and quiz
// @Tags content
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} shared.Response{data=model.Lesson}
// @Router /api/v1/content/lessons/{lessonId} [get]
func (h *ContentHandler) GetLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	lesson, err := h.contentSvc.GetLesson(lessonID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lesson)
}

// @Summary Get Commands
// @Description Get the command reference library, optionally filtered by category or search query
// @Tags content
// @Accept json
// @Produce json
// @Param category query string false "Filter by category"
// @Param q query string false "Search in name and description"
// @Success 200 {object} shared.Response{data=dto.CommandCollectionResponse}
// @Router /api/v1/content/commands [get]
func (h *ContentHandler) GetCommands(c *fiber.Ctx) error {
	category := c.Query("category")
	query := c.Query("q")

	commands := h.contentSvc.GetCommands(category)
	if query != "" {
		commands = h.contentSvc.SearchCommands(query)
	}

	resp := dto.CommandCollectionResponse{
		Commands: commands,
		Total:    len(commands),
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Get Command
// @Description Get a single command reference entry
// @Tags content
// @Accept json
// @Produce json
// @Param commandId path string true "Command ID"
// @Success 200 {object} shared.Response{data=model.Command}
// @Router /api/v1/content/commands/{commandId} [get]
func (h *ContentHandler) GetCommand(c *fiber.Ctx) error {
	commandID := c.Params("commandId")

	command, err := h.contentSvc.GetCommand(commandID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", command)
}

// @Summary Get Gamification Config
// @Description Get the static level curve and badge catalog
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.GamificationConfigResponse}
// @Router /api/v1/content/gamification [get]
func (h *ContentHandler) GetGamificationConfig(c *fiber.Ctx) error {
	resp := dto.GamificationConfigResponse{
		Levels: h.contentSvc.GetLevels(),
		Badges: h.contentSvc.GetBadges(),
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}
