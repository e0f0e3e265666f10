package dto

import "github.com/kali-linux-uz/academy_api/model"

// ==================== TERMINAL REQUEST DTOs ====================

type RunCommandRequest struct {
	Input string `json:"input" validate:"required" example:"nmap -sV 10.0.0.1"`
}

func (r RunCommandRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ValidateTaskRequest struct {
	Input string `json:"input" validate:"required" example:"ls -la"`
}

func (r ValidateTaskRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== TERMINAL RESPONSE DTOs ====================

type RunCommandResponse struct {
	Recognized bool           `json:"recognized"`
	Command    *model.Command `json:"command,omitempty"`
}

type ValidateTaskResponse struct {
	Correct  bool   `json:"correct"`
	LessonID string `json:"lesson_id"`
	TaskID   string `json:"task_id"`
}

// ==================== DAILY CHALLENGE DTOs ====================

type DailyChallengeResponse struct {
	Challenge *model.Challenge `json:"challenge"`
	Completed bool             `json:"completed"`
}

type ChallengeAttemptResponse struct {
	Correct   bool             `json:"correct"`
	Challenge *model.Challenge `json:"challenge"`
}
