package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kali-linux-uz/academy_api/dto"
	"github.com/kali-linux-uz/academy_api/shared"
)

type TerminalHandler struct {
	terminalSvc TerminalServiceInterface
}

func NewTerminalHandler(terminalSvc TerminalServiceInterface) *TerminalHandler {
	return &TerminalHandler{
		terminalSvc: terminalSvc,
	}
}

// @Summary Run Command
// @Description Submit a free-form command to the simulated terminal
// @Tags terminal
// @Accept json
// @Produce json
// @Param runRequest body dto.RunCommandRequest true "Command input"
// @Success 200 {object} shared.Response{data=dto.RunCommandResponse}
// @Router /api/v1/terminal/run [post]
func (h *TerminalHandler) RunCommand(c *fiber.Ctx) error {
	var req dto.RunCommandRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	command, recognized := h.terminalSvc.Run(req.Input)

	resp := dto.RunCommandResponse{
		Recognized: recognized,
		Command:    command,
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Validate Lesson Task
// @Description Check a submission against a lesson terminal task
// @Tags terminal
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Param taskId path string true "Task ID"
// @Param validateRequest body dto.ValidateTaskRequest true "Command input"
// @Success 200 {object} shared.Response{data=dto.ValidateTaskResponse}
// @Router /api/v1/terminal/lessons/{lessonId}/tasks/{taskId}/validate [post]
func (h *TerminalHandler) ValidateLessonTask(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")
	taskID := c.Params("taskId")

	var req dto.ValidateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	correct, err := h.terminalSvc.ValidateLessonTask(lessonID, taskID, req.Input)
	if err != nil {
		return err
	}

	resp := dto.ValidateTaskResponse{
		Correct:  correct,
		LessonID: lessonID,
		TaskID:   taskID,
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Attempt Daily Challenge
// @Description Check a submission against today's challenge, completing it on a match
// @Tags terminal
// @Accept json
// @Produce json
// @Param validateRequest body dto.ValidateTaskRequest true "Command input"
// @Success 200 {object} shared.Response{data=dto.ChallengeAttemptResponse}
// @Router /api/v1/terminal/challenge/validate [post]
func (h *TerminalHandler) ValidateChallenge(c *fiber.Ctx) error {
	var req dto.ValidateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	correct, challenge, err := h.terminalSvc.ValidateChallenge(req.Input)
	if err != nil {
		return err
	}

	resp := dto.ChallengeAttemptResponse{
		Correct:   correct,
		Challenge: challenge,
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}
