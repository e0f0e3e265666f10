package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kali-linux-uz/academy_api/dto"
	"github.com/kali-linux-uz/academy_api/model"
	"github.com/kali-linux-uz/academy_api/shared"
)

type ProgressHandler struct {
	progressSvc ProgressServiceInterface
	contentSvc  ContentServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface, contentSvc ContentServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
		contentSvc:  contentSvc,
	}
}

// @Summary Get Progress
// @Description Get the full gamification state: XP, level, streak, badges, lesson progress
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ProgressResponse}
// @Router /api/v1/progress [get]
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	state := h.progressSvc.Snapshot()
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.buildProgressResponse(state))
}

// @Summary Add XP
// @Description Grant XP for a progress event. A unique_id makes the grant one-time.
// @Tags progress
// @Accept json
// @Produce json
// @Param addXpRequest body dto.AddXpRequest true "XP grant"
// @Success 200 {object} shared.Response{data=dto.ProgressResponse}
// @Router /api/v1/progress/xp [post]
func (h *ProgressHandler) AddXp(c *fiber.Ctx) error {
	var req dto.AddXpRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	h.progressSvc.AddXp(req.Amount, req.Reason, req.UniqueID)
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.buildProgressResponse(h.progressSvc.Snapshot()))
}

// @Summary Acknowledge Level Up
// @Description Dismiss the pending level-up celebration
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ProgressResponse}
// @Router /api/v1/progress/level/ack [post]
func (h *ProgressHandler) AckLevelUp(c *fiber.Ctx) error {
	h.progressSvc.AckLevelUp()
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.buildProgressResponse(h.progressSvc.Snapshot()))
}

// @Summary Update Lesson Gate
// @Description Flip one of the four lesson completion gates
// @Tags progress
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Param gateRequest body dto.UpdateLessonGateRequest true "Gate update"
// @Success 200 {object} shared.Response{data=model.LessonProgress}
// @Router /api/v1/progress/lessons/{lessonId}/gates [post]
func (h *ProgressHandler) UpdateLessonGate(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	var req dto.UpdateLessonGateRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if _, err := h.contentSvc.GetLesson(lessonID); err != nil {
		return err
	}

	if err := h.progressSvc.UpdateLessonProgress(lessonID, req.Field, req.Value); err != nil {
		return err
	}

	progress := h.progressSvc.Snapshot().LessonProgress[lessonID]
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", progress)
}

// @Summary Set Checked Tasks
// @Description Replace the set of practice tasks ticked off for a lesson
// @Tags progress
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Param tasksRequest body dto.SetCheckedTasksRequest true "Checked task IDs"
// @Success 200 {object} shared.Response{data=model.LessonProgress}
// @Router /api/v1/progress/lessons/{lessonId}/tasks [put]
func (h *ProgressHandler) SetCheckedTasks(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	var req dto.SetCheckedTasksRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if _, err := h.contentSvc.GetLesson(lessonID); err != nil {
		return err
	}

	h.progressSvc.SetCheckedTasks(lessonID, req.TaskIDs)

	progress := h.progressSvc.Snapshot().LessonProgress[lessonID]
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", progress)
}

// @Summary Complete Lesson
// @Description Finish a lesson once all four gates are open. Grants the lesson XP exactly once.
// @Tags progress
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} shared.Response{data=dto.CompleteLessonResponse}
// @Router /api/v1/progress/lessons/{lessonId}/complete [post]
func (h *ProgressHandler) CompleteLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	lesson, err := h.contentSvc.GetLesson(lessonID)
	if err != nil {
		return err
	}

	completed := h.progressSvc.CompleteLesson(lesson.ID, lesson.XP, lesson.Title)

	resp := dto.CompleteLessonResponse{
		Completed: completed,
		LessonID:  lesson.ID,
	}
	if completed {
		resp.XPAwarded = lesson.XP
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Touch Streak
// @Description Record activity for a day and extend or restart the streak
// @Tags progress
// @Accept json
// @Produce json
// @Param streakRequest body dto.TouchStreakRequest true "Activity day"
// @Success 200 {object} shared.Response{data=dto.ProgressResponse}
// @Router /api/v1/progress/streak [post]
func (h *ProgressHandler) TouchStreak(c *fiber.Ctx) error {
	var req dto.TouchStreakRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	h.progressSvc.TouchStreak(req.Date)
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.buildProgressResponse(h.progressSvc.Snapshot()))
}

// @Summary Reset Progress
// @Description Wipe all progress and return to the fresh-profile state
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ProgressResponse}
// @Router /api/v1/progress/reset [post]
func (h *ProgressHandler) ResetProgress(c *fiber.Ctx) error {
	h.progressSvc.Reset()
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.buildProgressResponse(h.progressSvc.Snapshot()))
}

func (h *ProgressHandler) buildProgressResponse(state model.AppState) dto.ProgressResponse {
	current := h.contentSvc.GetLevelConfig(state.UserLevel)
	next := h.contentSvc.GetLevelConfig(state.UserLevel + 1)

	levelInfo := dto.LevelInfo{
		Level:          state.UserLevel,
		Title:          current.Title,
		XPIntoLevel:    state.UserXP - current.XPNeeded,
		PendingLevelUp: state.UserLevel > state.LastLevelSeen,
	}
	if next.Level > current.Level {
		levelInfo.XPForNextLevel = next.XPNeeded - current.XPNeeded
	}

	return dto.ProgressResponse{
		XP:               state.UserXP,
		Level:            levelInfo,
		Streak:           state.UserStreak,
		LastActiveDay:    state.LastActiveDay,
		Badges:           state.Badges,
		ActivityLog:      state.ActivityLog,
		LessonProgress:   state.LessonProgress,
		CompletedModules: state.CompletedModules,
		TotalCommandsRun: state.TotalCommandsRun,
	}
}
