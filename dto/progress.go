package dto

import "github.com/kali-linux-uz/academy_api/model"

// ==================== PROGRESS REQUEST DTOs ====================

type AddXpRequest struct {
	Amount   int    `json:"amount" validate:"required,gt=0" example:"50"`
	Reason   string `json:"reason" validate:"required" example:"Practice drill finished"`
	UniqueID string `json:"unique_id,omitempty" example:"drill-nmap-basics"`
}

func (r AddXpRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateLessonGateRequest struct {
	Field string `json:"field" validate:"required,oneof=theoryRead practiceCompleted terminalCompleted quizPassed" example:"theoryRead"`
	Value bool   `json:"value" example:"true"`
}

func (r UpdateLessonGateRequest) Validate() error {
	return GetValidator().Struct(r)
}

type SetCheckedTasksRequest struct {
	TaskIDs []string `json:"task_ids" validate:"required" example:"l1-t1,l1-t2"`
}

func (r SetCheckedTasksRequest) Validate() error {
	return GetValidator().Struct(r)
}

type TouchStreakRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2025-04-01"`
}

func (r TouchStreakRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== PROGRESS RESPONSE DTOs ====================

// LevelInfo describes where the user sits inside the level curve.
type LevelInfo struct {
	Level          int    `json:"level"`
	Title          string `json:"title"`
	XPIntoLevel    int    `json:"xp_into_level"`
	XPForNextLevel int    `json:"xp_for_next_level"`
	PendingLevelUp bool   `json:"pending_level_up"`
}

type ProgressResponse struct {
	XP               int                             `json:"xp"`
	Level            LevelInfo                       `json:"level"`
	Streak           int                             `json:"streak"`
	LastActiveDay    string                          `json:"last_active_day,omitempty"`
	Badges           []string                        `json:"badges"`
	ActivityLog      []model.ActivityLogItem         `json:"activity_log"`
	LessonProgress   map[string]model.LessonProgress `json:"lesson_progress"`
	CompletedModules []string                        `json:"completed_modules"`
	TotalCommandsRun int                             `json:"total_commands_run"`
}

type CompleteLessonResponse struct {
	Completed bool   `json:"completed"`
	LessonID  string `json:"lesson_id"`
	XPAwarded int    `json:"xp_awarded"`
}

type ValidationError struct {
	Field   string `json:"field" example:"field"`
	Message string `json:"message" example:"field is required"`
}

type ValidationErrorResponse struct {
	Code    int               `json:"code" example:"400"`
	Message string            `json:"message" example:"Validation failed"`
	Errors  []ValidationError `json:"errors"`
}
