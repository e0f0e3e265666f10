package services

import (
	"fmt"
	"strings"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/kali-linux-uz/academy_api/data"
	"github.com/kali-linux-uz/academy_api/model"
	"github.com/kali-linux-uz/academy_api/shared"
)

// ContentService owns the static catalog: roadmaps, modules, lessons, badges,
// levels, challenges and the command library. Loaded once, never mutated.
type ContentService struct {
	context.DefaultService

	roadmaps   []model.Roadmap
	modules    []model.Module
	challenges []model.Challenge
	commands   []model.Command

	moduleByID     map[string]*model.Module
	lessonByID     map[string]*model.Lesson
	moduleOfLesson map[string]*model.Module
	challengeByID  map[string]*model.Challenge
	commandByID    map[string]*model.Command
}

const CONTENT_SVC = "content_svc"

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	svc.load()

	log.WithFields(log.Fields{
		"roadmaps":   len(svc.roadmaps),
		"modules":    len(svc.modules),
		"lessons":    len(svc.lessonByID),
		"challenges": len(svc.challenges),
		"commands":   len(svc.commands),
	}).Info("Content catalog loaded")
	return nil
}

func (svc *ContentService) load() {
	svc.roadmaps = data.Roadmaps
	svc.challenges = data.Challenges
	svc.commands = data.Commands

	svc.moduleByID = make(map[string]*model.Module)
	svc.lessonByID = make(map[string]*model.Lesson)
	svc.moduleOfLesson = make(map[string]*model.Module)
	svc.challengeByID = make(map[string]*model.Challenge)
	svc.commandByID = make(map[string]*model.Command)

	// Flatten modules out of roadmaps, mirroring the master module list the
	// progress store consults for completion cascades.
	for ri := range svc.roadmaps {
		for mi := range svc.roadmaps[ri].Modules {
			m := &svc.roadmaps[ri].Modules[mi]
			svc.modules = append(svc.modules, *m)
			svc.moduleByID[m.ID] = m
			for li := range m.Lessons {
				l := &m.Lessons[li]
				svc.lessonByID[l.ID] = l
				svc.moduleOfLesson[l.ID] = m
			}
		}
	}

	for i := range svc.challenges {
		svc.challengeByID[svc.challenges[i].ID] = &svc.challenges[i]
	}
	for i := range svc.commands {
		svc.commandByID[svc.commands[i].ID] = &svc.commands[i]
	}
}

// ==================== ROADMAPS & LESSONS ====================

func (svc *ContentService) GetRoadmaps() []model.Roadmap {
	return svc.roadmaps
}

func (svc *ContentService) GetModules() []model.Module {
	return svc.modules
}

func (svc *ContentService) GetModule(moduleID string) (*model.Module, error) {
	m, ok := svc.moduleByID[moduleID]
	if !ok {
		return nil, shared.NewNotFoundError(fmt.Errorf("module %s", moduleID), "Module not found")
	}
	return m, nil
}

func (svc *ContentService) GetLesson(lessonID string) (*model.Lesson, error) {
	l, ok := svc.lessonByID[lessonID]
	if !ok {
		return nil, shared.NewNotFoundError(fmt.Errorf("lesson %s", lessonID), "Lesson not found")
	}
	return l, nil
}

// ModuleOfLesson locates the owning module, nil if the lesson is unknown.
func (svc *ContentService) ModuleOfLesson(lessonID string) *model.Module {
	return svc.moduleOfLesson[lessonID]
}

// ==================== CHALLENGES ====================

func (svc *ContentService) GetChallenges() []model.Challenge {
	return svc.challenges
}

func (svc *ContentService) GetChallenge(challengeID string) (*model.Challenge, error) {
	c, ok := svc.challengeByID[challengeID]
	if !ok {
		return nil, shared.NewNotFoundError(fmt.Errorf("challenge %s", challengeID), "Challenge not found")
	}
	return c, nil
}

// ==================== COMMAND LIBRARY ====================

func (svc *ContentService) GetCommands(category string) []model.Command {
	if category == "" {
		return svc.commands
	}
	filtered := make([]model.Command, 0)
	for _, cmd := range svc.commands {
		if cmd.Category == category {
			filtered = append(filtered, cmd)
		}
	}
	return filtered
}

func (svc *ContentService) GetCommand(commandID string) (*model.Command, error) {
	c, ok := svc.commandByID[commandID]
	if !ok {
		return nil, shared.NewNotFoundError(fmt.Errorf("command %s", commandID), "Command not found")
	}
	return c, nil
}

func (svc *ContentService) SearchCommands(query string) []model.Command {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return svc.commands
	}
	matched := make([]model.Command, 0)
	for _, cmd := range svc.commands {
		if strings.Contains(strings.ToLower(cmd.Name), query) ||
			strings.Contains(strings.ToLower(cmd.Description), query) {
			matched = append(matched, cmd)
		}
	}
	return matched
}

// ==================== GAMIFICATION CONFIG ====================

func (svc *ContentService) GetLevels() []model.LevelConfig {
	return data.Levels
}

func (svc *ContentService) GetBadges() []model.BadgeConfig {
	return data.Badges
}

func (svc *ContentService) GetBadgeConfig(badgeID string) (model.BadgeConfig, bool) {
	return data.GetBadgeConfig(badgeID)
}

func (svc *ContentService) GetLevelConfig(level int) model.LevelConfig {
	return data.GetLevelConfig(level)
}
