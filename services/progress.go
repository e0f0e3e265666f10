package services

import (
	"math"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kali-linux-uz/academy_api/model"
	"github.com/kali-linux-uz/academy_api/shared"
)

// ProgressService is the single source of truth for gamification state: XP,
// level, streak, badges, lesson/module progress, the activity log and the
// anti-farming ledger. It is the only writer of application data in the
// durable store. Each action reads, computes and commits a fresh AppState
// under one mutex, persists every field, then notifies subscribers once the
// mutex is released. Listeners may query the store but must not re-enter
// mutating actions.
type ProgressService struct {
	context.DefaultService

	kvSvc      *KeyValueService
	contentSvc *ContentService

	mu        sync.Mutex
	state     model.AppState
	listeners map[int]func(model.AppState)
	nextSubID int
	pending   []notification
}

// notification pairs a committed snapshot with the listeners registered at
// commit time. Delivery happens outside the store mutex.
type notification struct {
	snapshot  model.AppState
	listeners []func(model.AppState)
}

const PROGRESS_SVC = "progress_svc"

func (svc *ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *context.Context) error {
	svc.listeners = make(map[int]func(model.AppState))
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	svc.kvSvc = svc.Service(KV_SVC).(*KeyValueService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)

	svc.loadState()

	log.WithFields(log.Fields{
		"xp":    svc.state.UserXP,
		"level": svc.state.UserLevel,
	}).Info("Progress store initialized")
	return nil
}

// loadState rehydrates every field from the durable store, falling back to
// the fresh-profile default for anything missing or unreadable.
func (svc *ProgressService) loadState() {
	defaults := model.NewAppState()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.state = model.AppState{
		UserXP:              KVGet(svc.kvSvc, shared.KeyUserXP, defaults.UserXP),
		UserLevel:           KVGet(svc.kvSvc, shared.KeyUserLevel, defaults.UserLevel),
		LastLevelSeen:       KVGet(svc.kvSvc, shared.KeyLastLevelSeen, defaults.LastLevelSeen),
		UserStreak:          KVGet(svc.kvSvc, shared.KeyUserStreak, defaults.UserStreak),
		LastActiveDay:       KVGet(svc.kvSvc, shared.KeyLastActiveDay, defaults.LastActiveDay),
		Badges:              KVGet(svc.kvSvc, shared.KeyBadges, defaults.Badges),
		ActivityLog:         KVGet(svc.kvSvc, shared.KeyActivityLog, defaults.ActivityLog),
		AwardedIDs:          KVGet(svc.kvSvc, shared.KeyAwardedIDs, defaults.AwardedIDs),
		LessonProgress:      KVGet(svc.kvSvc, shared.KeyLessonProgress, defaults.LessonProgress),
		CompletedModules:    KVGet(svc.kvSvc, shared.KeyCompletedModules, defaults.CompletedModules),
		TotalCommandsRun:    KVGet(svc.kvSvc, shared.KeyTotalCommands, defaults.TotalCommandsRun),
		DailyChallengeState: KVGet(svc.kvSvc, shared.KeyDailyChallengeState, defaults.DailyChallengeState),
	}
}

// persistLocked writes every field and queues a notification with the fresh
// snapshot. Storage failures degrade to "not persisted" inside the KV layer.
func (svc *ProgressService) persistLocked() {
	KVSet(svc.kvSvc, shared.KeyUserXP, svc.state.UserXP)
	KVSet(svc.kvSvc, shared.KeyUserLevel, svc.state.UserLevel)
	KVSet(svc.kvSvc, shared.KeyLastLevelSeen, svc.state.LastLevelSeen)
	KVSet(svc.kvSvc, shared.KeyUserStreak, svc.state.UserStreak)
	KVSet(svc.kvSvc, shared.KeyLastActiveDay, svc.state.LastActiveDay)
	KVSet(svc.kvSvc, shared.KeyBadges, svc.state.Badges)
	KVSet(svc.kvSvc, shared.KeyActivityLog, svc.state.ActivityLog)
	KVSet(svc.kvSvc, shared.KeyAwardedIDs, svc.state.AwardedIDs)
	KVSet(svc.kvSvc, shared.KeyLessonProgress, svc.state.LessonProgress)
	KVSet(svc.kvSvc, shared.KeyCompletedModules, svc.state.CompletedModules)
	KVSet(svc.kvSvc, shared.KeyTotalCommands, svc.state.TotalCommandsRun)
	KVSet(svc.kvSvc, shared.KeyDailyChallengeState, svc.state.DailyChallengeState)

	if len(svc.listeners) == 0 {
		return
	}
	n := notification{snapshot: svc.state.Clone()}
	for _, listener := range svc.listeners {
		n.listeners = append(n.listeners, listener)
	}
	svc.pending = append(svc.pending, n)
}

// unlockAndNotify releases the store mutex, then delivers every notification
// queued during the critical section in commit order. Listeners run without
// the mutex held, so they can call Snapshot and the other queries freely.
func (svc *ProgressService) unlockAndNotify() {
	queue := svc.pending
	svc.pending = nil
	svc.mu.Unlock()

	for _, n := range queue {
		for _, listener := range n.listeners {
			listener(n.snapshot)
		}
	}
}

// ==================== QUERY SURFACE ====================

// Snapshot returns a deep copy of the current state.
func (svc *ProgressService) Snapshot() model.AppState {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.state.Clone()
}

// Subscribe registers a change listener, invoked after every commit once the
// store mutex is released. The returned function unregisters it.
func (svc *ProgressService) Subscribe(listener func(model.AppState)) func() {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	id := svc.nextSubID
	svc.nextSubID++
	svc.listeners[id] = listener

	return func() {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		delete(svc.listeners, id)
	}
}

// ==================== XP & LEVELS ====================

// calculateLevel derives the level from total XP on the quadratic curve:
// level n requires (n-1)^2 * 100 XP. 0 XP = level 1, 100 = 2, 400 = 3.
func calculateLevel(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	level := int(math.Floor(math.Sqrt(float64(totalXP)/100))) + 1
	if level < 1 {
		level = 1
	}
	return level
}

// AddXp grants XP for a reason. A non-empty uniqueID is checked against the
// anti-farming ledger: a key that already granted XP never grants again.
func (svc *ProgressService) AddXp(amount int, reason, uniqueID string) {
	svc.mu.Lock()
	defer svc.unlockAndNotify()
	svc.addXpLocked(amount, reason, uniqueID)
}

func (svc *ProgressService) addXpLocked(amount int, reason, uniqueID string) {
	if uniqueID != "" && svc.state.HasAwarded(uniqueID) {
		log.WithField("unique_id", uniqueID).Warn("XP already awarded, skipping")
		return
	}

	log.WithFields(log.Fields{
		"amount":    amount,
		"reason":    reason,
		"unique_id": uniqueID,
	}).Info("Awarding XP")

	newXP := svc.state.UserXP + amount
	newLevel := calculateLevel(newXP)

	if newLevel > svc.state.UserLevel {
		log.WithFields(log.Fields{"from": svc.state.UserLevel, "to": newLevel}).Info("Level up")
	}

	itemID, _ := uuid.NewV7()
	logItem := model.ActivityLogItem{
		ID:        itemID.String(),
		Message:   reason,
		XP:        amount,
		Timestamp: time.Now().UnixMilli(),
	}

	next := svc.state.Clone()
	next.UserXP = newXP
	next.UserLevel = newLevel
	next.ActivityLog = append([]model.ActivityLogItem{logItem}, next.ActivityLog...)
	if len(next.ActivityLog) > shared.ActivityLogCap {
		next.ActivityLog = next.ActivityLog[:shared.ActivityLogCap]
	}
	if uniqueID != "" {
		next.AwardedIDs = append(next.AwardedIDs, uniqueID)
	}
	svc.state = next

	xpGrantedTotal.Add(float64(amount))

	svc.checkAchievementsLocked()
	svc.persistLocked()
}

// AckLevelUp advances lastLevelSeen to the current level. This is the only
// way it moves, so the level-up celebration fires exactly once per level
// gained, even across restarts.
func (svc *ProgressService) AckLevelUp() {
	svc.mu.Lock()
	defer svc.unlockAndNotify()

	if svc.state.UserLevel <= svc.state.LastLevelSeen {
		return
	}

	next := svc.state.Clone()
	next.LastLevelSeen = next.UserLevel
	svc.state = next
	svc.persistLocked()
}

// ==================== LESSONS ====================

// Lesson progress gate fields accepted by UpdateLessonProgress.
const (
	GateTheoryRead        = "theoryRead"
	GatePracticeCompleted = "practiceCompleted"
	GateTerminalCompleted = "terminalCompleted"
	GateQuizPassed        = "quizPassed"
	FieldCompleted        = "completed"
)

// UpdateLessonProgress sets one boolean field on a lesson's progress record,
// creating the record on first touch. A pure field update: completion gating
// is not evaluated here.
func (svc *ProgressService) UpdateLessonProgress(lessonID, field string, value bool) error {
	svc.mu.Lock()
	defer svc.unlockAndNotify()
	return svc.updateLessonProgressLocked(lessonID, field, value)
}

func (svc *ProgressService) updateLessonProgressLocked(lessonID, field string, value bool) error {
	next := svc.state.Clone()
	p := next.LessonProgress[lessonID]
	if p.CheckedTasks == nil {
		p.CheckedTasks = []string{}
	}

	switch field {
	case GateTheoryRead:
		p.TheoryRead = value
	case GatePracticeCompleted:
		p.PracticeCompleted = value
	case GateTerminalCompleted:
		p.TerminalCompleted = value
	case GateQuizPassed:
		p.QuizPassed = value
	case FieldCompleted:
		p.Completed = value
	default:
		return shared.NewBadRequestError(nil, "Unknown lesson progress field: "+field)
	}

	next.LessonProgress[lessonID] = p
	svc.state = next
	svc.persistLocked()
	return nil
}

// SetCheckedTasks replaces the checked practice-task list of a lesson.
func (svc *ProgressService) SetCheckedTasks(lessonID string, tasks []string) {
	svc.mu.Lock()
	defer svc.unlockAndNotify()

	next := svc.state.Clone()
	p := next.LessonProgress[lessonID]
	p.CheckedTasks = append([]string{}, tasks...)
	next.LessonProgress[lessonID] = p
	svc.state = next
	svc.persistLocked()
}

// CompleteLesson finalizes a lesson once all four gates are met. Returns
// false without mutation when the progress record is absent or a gate is
// unmet. Re-completion is an idempotent success: the completed flag is
// ensured but no XP is granted twice.
func (svc *ProgressService) CompleteLesson(lessonID string, xpAmount int, title string) bool {
	svc.mu.Lock()
	defer svc.unlockAndNotify()

	p, ok := svc.state.LessonProgress[lessonID]
	if !ok {
		log.WithField("lesson_id", lessonID).Error("Progress not found for lesson")
		return false
	}

	if !p.TheoryRead || !p.PracticeCompleted || !p.TerminalCompleted || !p.QuizPassed {
		log.WithField("lesson_id", lessonID).Warn("Lesson incomplete, gates not met")
		return false
	}

	uniqueKey := "lesson-" + lessonID
	if p.Completed || svc.state.HasAwarded(uniqueKey) {
		if !p.Completed {
			_ = svc.updateLessonProgressLocked(lessonID, FieldCompleted, true)
		}
		return true
	}

	svc.addXpLocked(xpAmount, "Lesson Completed: "+title, uniqueKey)
	_ = svc.updateLessonProgressLocked(lessonID, FieldCompleted, true)
	lessonsCompletedTotal.Inc()

	svc.checkModuleCompletionLocked(lessonID)

	return true
}

// checkModuleCompletionLocked cascades a lesson completion into module
// mastery: when every lesson of the owning module is completed, the module is
// recorded once and the fixed mastery bonus granted once.
func (svc *ProgressService) checkModuleCompletionLocked(lessonID string) {
	module := svc.contentSvc.ModuleOfLesson(lessonID)
	if module == nil {
		return
	}

	for _, l := range module.Lessons {
		if !svc.state.LessonProgress[l.ID].Completed {
			return
		}
	}

	if svc.state.HasCompletedModule(module.ID) {
		return
	}

	log.WithField("module", module.Title).Info("Module mastery")

	next := svc.state.Clone()
	next.CompletedModules = append(next.CompletedModules, module.ID)
	svc.state = next

	svc.addXpLocked(shared.ModuleMasteryXP, "Module Mastery: "+module.Title, "module-"+module.ID)
}

// ==================== COMMANDS & STREAK ====================

// IncrementCommandCount bumps the simulated-terminal run counter.
func (svc *ProgressService) IncrementCommandCount() {
	svc.mu.Lock()
	defer svc.unlockAndNotify()

	next := svc.state.Clone()
	next.TotalCommandsRun++
	svc.state = next

	commandsRunTotal.Inc()
	svc.checkAchievementsLocked()
	svc.persistLocked()
}

// TouchStreak records activity for today: same day leaves the streak alone,
// the day after the last activity extends it, anything else restarts at 1.
func (svc *ProgressService) TouchStreak(today string) {
	svc.mu.Lock()
	defer svc.unlockAndNotify()

	next := svc.state.Clone()
	switch {
	case next.LastActiveDay == today:
		// already counted today
	case next.LastActiveDay != "" && isNextDay(next.LastActiveDay, today):
		next.UserStreak++
	default:
		next.UserStreak = 1
	}
	next.LastActiveDay = today
	svc.state = next

	if svc.state.UserStreak >= shared.Streak7Threshold {
		svc.awardBadgeLocked(shared.BadgeStreak7)
	}

	svc.persistLocked()
}

func isNextDay(previous, current string) bool {
	prev, err1 := time.Parse("2006-01-02", previous)
	cur, err2 := time.Parse("2006-01-02", current)
	if err1 != nil || err2 != nil {
		return false
	}
	return cur.Sub(prev) == 24*time.Hour
}

// ==================== DAILY CHALLENGE ====================

// UpdateDailyChallengeState unconditionally overwrites the single daily
// challenge record.
func (svc *ProgressService) UpdateDailyChallengeState(date string, completed bool, challengeID string) {
	svc.mu.Lock()
	defer svc.unlockAndNotify()

	next := svc.state.Clone()
	next.DailyChallengeState = model.DailyChallengeState{
		Date:        date,
		Completed:   completed,
		ChallengeID: challengeID,
	}
	svc.state = next
	svc.persistLocked()
}

// ==================== ACHIEVEMENTS ====================

// checkAchievementsLocked evaluates the badge rule set and awards anything
// newly qualifying. Each award grants the badge's XP through the ledger key
// badge-<id>, which re-enters this check; the recursion is bounded because no
// rule depends on badge counts.
func (svc *ProgressService) checkAchievementsLocked() {
	lessonsCompleted := 0
	for _, p := range svc.state.LessonProgress {
		if p.Completed {
			lessonsCompleted++
		}
	}

	if lessonsCompleted >= 1 {
		svc.awardBadgeLocked(shared.BadgeFirstBlood)
	}

	if svc.state.TotalCommandsRun >= shared.CommandRunnerThreshold {
		svc.awardBadgeLocked(shared.BadgeCommandRunner)
	}

	// Roadmap badges ride on module mastery.
	for _, moduleID := range svc.state.CompletedModules {
		if m, err := svc.contentSvc.GetModule(moduleID); err == nil && m.BadgeID != "" {
			svc.awardBadgeLocked(m.BadgeID)
		}
	}

	if allModules := svc.contentSvc.GetModules(); len(allModules) > 0 &&
		len(svc.state.CompletedModules) >= len(allModules) {
		svc.awardBadgeLocked(shared.BadgeCompletionist)
	}

	if svc.state.UserLevel >= shared.KaliMasterLevel {
		svc.awardBadgeLocked(shared.BadgeKaliMaster)
	}
}

func (svc *ProgressService) awardBadgeLocked(badgeID string) {
	if svc.state.HasBadge(badgeID) {
		return
	}

	cfg, ok := svc.contentSvc.GetBadgeConfig(badgeID)
	if !ok {
		log.WithField("badge_id", badgeID).Error("Badge config missing, not awarding")
		return
	}

	log.WithField("badge_id", badgeID).Info("Badge unlocked")

	next := svc.state.Clone()
	next.Badges = append(next.Badges, badgeID)
	svc.state = next

	badgesUnlockedTotal.Inc()
	svc.addXpLocked(cfg.XPReward, "Badge Unlocked: "+badgeID, "badge-"+badgeID)
}

// ==================== RESET ====================

// Reset wipes all persisted progress and reinstates the fresh-profile state.
func (svc *ProgressService) Reset() {
	svc.mu.Lock()
	defer svc.unlockAndNotify()

	svc.kvSvc.Clear()
	svc.state = model.NewAppState()
	svc.persistLocked()
}
