package handlers

import (
	"github.com/kali-linux-uz/academy_api/model"
)

type ProgressServiceInterface interface {
	Snapshot() model.AppState
	AddXp(amount int, reason, uniqueID string)
	AckLevelUp()
	UpdateLessonProgress(lessonID, field string, value bool) error
	SetCheckedTasks(lessonID string, tasks []string)
	CompleteLesson(lessonID string, xpAmount int, title string) bool
	TouchStreak(today string)
	Reset()
}

type ContentServiceInterface interface {
	GetRoadmaps() []model.Roadmap
	GetModules() []model.Module
	GetModule(moduleID string) (*model.Module, error)
	GetLesson(lessonID string) (*model.Lesson, error)
	GetChallenges() []model.Challenge
	GetCommands(category string) []model.Command
	GetCommand(commandID string) (*model.Command, error)
	SearchCommands(query string) []model.Command
	GetLevels() []model.LevelConfig
	GetBadges() []model.BadgeConfig
	GetLevelConfig(level int) model.LevelConfig
}

type ChallengeServiceInterface interface {
	TodayChallenge() (*model.Challenge, error)
	IsCompletedToday() bool
	Complete() (*model.Challenge, error)
}

type TerminalServiceInterface interface {
	Run(input string) (*model.Command, bool)
	ValidateLessonTask(lessonID, taskID, input string) (bool, error)
	ValidateChallenge(input string) (bool, *model.Challenge, error)
}
