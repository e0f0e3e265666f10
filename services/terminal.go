package services

import (
	"fmt"
	"strings"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/kali-linux-uz/academy_api/model"
	"github.com/kali-linux-uz/academy_api/shared"
)

// TerminalService is the simulated terminal: submitted input is string-matched
// against canned expected commands. Nothing is ever executed. Every validated
// submission counts toward the command-run statistics.
type TerminalService struct {
	context.DefaultService

	contentSvc   *ContentService
	progressSvc  *ProgressService
	challengeSvc *DailyChallengeService
}

const TERMINAL_SVC = "terminal_svc"

func (svc TerminalService) Id() string {
	return TERMINAL_SVC
}

func (svc *TerminalService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *TerminalService) Start() error {
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.challengeSvc = svc.Service(CHALLENGE_SVC).(*DailyChallengeService)
	return nil
}

func normalizeCommand(input string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(input)), " ")
}

// Run records a free-form command submission and looks the base command up in
// the reference library. Unknown commands still count as a run.
func (svc *TerminalService) Run(input string) (*model.Command, bool) {
	normalized := normalizeCommand(input)
	if normalized == "" {
		return nil, false
	}

	svc.progressSvc.IncrementCommandCount()

	base := strings.Fields(normalized)[0]
	cmd, err := svc.contentSvc.GetCommand(base)
	if err != nil {
		return nil, false
	}
	return cmd, true
}

// ValidateLessonTask checks a submission against a lesson terminal task.
// Matching is whitespace-normalized string equality against the canned
// command.
func (svc *TerminalService) ValidateLessonTask(lessonID, taskID, input string) (bool, error) {
	lesson, err := svc.contentSvc.GetLesson(lessonID)
	if err != nil {
		return false, err
	}

	var task *model.TerminalTask
	for i := range lesson.TerminalTasks {
		if lesson.TerminalTasks[i].ID == taskID {
			task = &lesson.TerminalTasks[i]
			break
		}
	}
	if task == nil {
		return false, shared.NewNotFoundError(fmt.Errorf("task %s", taskID), "Terminal task not found")
	}

	svc.progressSvc.IncrementCommandCount()

	matched := normalizeCommand(input) == normalizeCommand(task.Command)
	log.WithFields(log.Fields{
		"lesson_id": lessonID,
		"task_id":   taskID,
		"matched":   matched,
	}).Debug("Terminal task validated")

	return matched, nil
}

// ValidateChallenge checks a submission against today's daily challenge and
// completes the challenge on a match.
func (svc *TerminalService) ValidateChallenge(input string) (bool, *model.Challenge, error) {
	challenge, err := svc.challengeSvc.TodayChallenge()
	if err != nil {
		return false, nil, err
	}

	svc.progressSvc.IncrementCommandCount()

	if normalizeCommand(input) != normalizeCommand(challenge.Command) {
		return false, challenge, nil
	}

	if _, err := svc.challengeSvc.Complete(); err != nil {
		return false, challenge, err
	}
	return true, challenge, nil
}
