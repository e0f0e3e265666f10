package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kali-linux-uz/academy_api/dto"
	"github.com/kali-linux-uz/academy_api/shared"
)

type ChallengeHandler struct {
	challengeSvc ChallengeServiceInterface
}

func NewChallengeHandler(challengeSvc ChallengeServiceInterface) *ChallengeHandler {
	return &ChallengeHandler{
		challengeSvc: challengeSvc,
	}
}

// @Summary Get Daily Challenge
// @Description Get today's challenge and whether it is already completed
// @Tags challenge
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.DailyChallengeResponse}
// @Router /api/v1/challenge/daily [get]
func (h *ChallengeHandler) GetDailyChallenge(c *fiber.Ctx) error {
	challenge, err := h.challengeSvc.TodayChallenge()
	if err != nil {
		return err
	}

	resp := dto.DailyChallengeResponse{
		Challenge: challenge,
		Completed: h.challengeSvc.IsCompletedToday(),
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Complete Daily Challenge
// @Description Mark today's challenge complete, granting its XP and extending the streak
// @Tags challenge
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.DailyChallengeResponse}
// @Router /api/v1/challenge/daily/complete [post]
func (h *ChallengeHandler) CompleteDailyChallenge(c *fiber.Ctx) error {
	challenge, err := h.challengeSvc.Complete()
	if err != nil {
		return err
	}

	resp := dto.DailyChallengeResponse{
		Challenge: challenge,
		Completed: true,
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}
