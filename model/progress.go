package model

// ActivityLogItem is a single entry in the recent-activity feed, newest first.
type ActivityLogItem struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	XP        int    `json:"xp"`
	Timestamp int64  `json:"timestamp"`
}

// LessonProgress tracks the four completion gates of a single lesson.
// Created lazily with all flags false the first time a lesson is touched.
type LessonProgress struct {
	TheoryRead        bool     `json:"theoryRead"`
	PracticeCompleted bool     `json:"practiceCompleted"`
	TerminalCompleted bool     `json:"terminalCompleted"`
	QuizPassed        bool     `json:"quizPassed"`
	Completed         bool     `json:"completed"`
	CheckedTasks      []string `json:"checkedTasks"`
}

// DailyChallengeState is the single daily-challenge record, overwritten daily.
type DailyChallengeState struct {
	Date        string `json:"date"`
	Completed   bool   `json:"completed"`
	ChallengeID string `json:"challengeId"`
}

// AppState is the full gamification state. Treated as an immutable snapshot:
// every mutation produces a new value, so holders of a snapshot never observe
// a partial update.
type AppState struct {
	UserXP        int    `json:"user_xp"`
	UserLevel     int    `json:"user_level"`
	LastLevelSeen int    `json:"last_level_seen"`
	UserStreak    int    `json:"user_streak"`
	LastActiveDay string `json:"last_active_day"`

	Badges      []string          `json:"badges"`
	ActivityLog []ActivityLogItem `json:"activity_log"`
	AwardedIDs  []string          `json:"awarded_ids"`

	LessonProgress   map[string]LessonProgress `json:"lesson_progress"`
	CompletedModules []string                  `json:"completed_modules"`

	TotalCommandsRun int `json:"total_commands_run"`

	DailyChallengeState DailyChallengeState `json:"daily_challenge_state"`
}

// NewAppState returns the default state a fresh profile starts from.
func NewAppState() AppState {
	return AppState{
		UserXP:           0,
		UserLevel:        1,
		LastLevelSeen:    1,
		UserStreak:       0,
		Badges:           []string{},
		ActivityLog:      []ActivityLogItem{},
		AwardedIDs:       []string{},
		LessonProgress:   map[string]LessonProgress{},
		CompletedModules: []string{},
		TotalCommandsRun: 0,
	}
}

// Clone returns a deep copy so callers can mutate a working copy without
// touching the snapshot other readers hold.
func (s AppState) Clone() AppState {
	cp := s
	cp.Badges = append([]string{}, s.Badges...)
	cp.ActivityLog = append([]ActivityLogItem{}, s.ActivityLog...)
	cp.AwardedIDs = append([]string{}, s.AwardedIDs...)
	cp.CompletedModules = append([]string{}, s.CompletedModules...)
	cp.LessonProgress = make(map[string]LessonProgress, len(s.LessonProgress))
	for id, p := range s.LessonProgress {
		p.CheckedTasks = append([]string{}, p.CheckedTasks...)
		cp.LessonProgress[id] = p
	}
	return cp
}

// HasAwarded reports whether the anti-farming ledger already holds uniqueID.
func (s AppState) HasAwarded(uniqueID string) bool {
	for _, id := range s.AwardedIDs {
		if id == uniqueID {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge is already unlocked.
func (s AppState) HasBadge(badgeID string) bool {
	for _, id := range s.Badges {
		if id == badgeID {
			return true
		}
	}
	return false
}

// HasCompletedModule reports whether the module is already mastered.
func (s AppState) HasCompletedModule(moduleID string) bool {
	for _, id := range s.CompletedModules {
		if id == moduleID {
			return true
		}
	}
	return false
}
