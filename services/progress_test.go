package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kali-linux-uz/academy_api/model"
	"github.com/kali-linux-uz/academy_api/shared"
)

func setupProgress(t *testing.T) (*ProgressService, *KeyValueService, *ContentService) {
	t.Helper()
	kv := newTestKV()
	content := newTestContent()
	return newTestProgress(kv, content), kv, content
}

func openAllGates(t *testing.T, svc *ProgressService, lessonID string) {
	t.Helper()
	for _, gate := range []string{GateTheoryRead, GatePracticeCompleted, GateTerminalCompleted, GateQuizPassed} {
		require.NoError(t, svc.UpdateLessonProgress(lessonID, gate, true))
	}
}

func TestCalculateLevel(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{-10, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{8100, 10},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.level, calculateLevel(tc.xp), "xp=%d", tc.xp)
	}
}

func TestAddXpUpdatesStateAndLog(t *testing.T) {
	svc, _, _ := setupProgress(t)

	svc.AddXp(100, "Practice drill", "")

	state := svc.Snapshot()
	assert.Equal(t, 100, state.UserXP)
	assert.Equal(t, 2, state.UserLevel)
	require.Len(t, state.ActivityLog, 1)
	assert.Equal(t, "Practice drill", state.ActivityLog[0].Message)
	assert.Equal(t, 100, state.ActivityLog[0].XP)
}

func TestAddXpUniqueIDGrantsOnce(t *testing.T) {
	svc, _, _ := setupProgress(t)

	svc.AddXp(50, "One-time bonus", "bonus-1")
	svc.AddXp(50, "One-time bonus", "bonus-1")

	state := svc.Snapshot()
	assert.Equal(t, 50, state.UserXP)
	assert.Len(t, state.ActivityLog, 1)
	assert.Equal(t, []string{"bonus-1"}, state.AwardedIDs)
}

func TestActivityLogCappedNewestFirst(t *testing.T) {
	svc, _, _ := setupProgress(t)

	for i := 0; i < shared.ActivityLogCap+5; i++ {
		svc.AddXp(1, fmt.Sprintf("event %d", i), "")
	}

	state := svc.Snapshot()
	require.Len(t, state.ActivityLog, shared.ActivityLogCap)
	assert.Equal(t, fmt.Sprintf("event %d", shared.ActivityLogCap+4), state.ActivityLog[0].Message)
}

func TestAckLevelUp(t *testing.T) {
	svc, _, _ := setupProgress(t)

	svc.AddXp(100, "Level up", "")
	state := svc.Snapshot()
	require.Equal(t, 2, state.UserLevel)
	require.Equal(t, 1, state.LastLevelSeen)

	svc.AckLevelUp()
	assert.Equal(t, 2, svc.Snapshot().LastLevelSeen)

	// Acking with nothing pending changes nothing
	svc.AckLevelUp()
	assert.Equal(t, 2, svc.Snapshot().LastLevelSeen)
}

func TestUpdateLessonProgressUnknownField(t *testing.T) {
	svc, _, _ := setupProgress(t)

	err := svc.UpdateLessonProgress("l1", "speedrun", true)
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestUpdateLessonProgressCreatesRecord(t *testing.T) {
	svc, _, _ := setupProgress(t)

	require.NoError(t, svc.UpdateLessonProgress("l1", GateTheoryRead, true))

	p, ok := svc.Snapshot().LessonProgress["l1"]
	require.True(t, ok)
	assert.True(t, p.TheoryRead)
	assert.False(t, p.PracticeCompleted)
	assert.NotNil(t, p.CheckedTasks)
}

func TestSetCheckedTasks(t *testing.T) {
	svc, _, _ := setupProgress(t)

	svc.SetCheckedTasks("l2", []string{"l2-t1", "l2-t2"})
	assert.Equal(t, []string{"l2-t1", "l2-t2"}, svc.Snapshot().LessonProgress["l2"].CheckedTasks)

	svc.SetCheckedTasks("l2", []string{"l2-t2"})
	assert.Equal(t, []string{"l2-t2"}, svc.Snapshot().LessonProgress["l2"].CheckedTasks)
}

func TestCompleteLessonWithoutRecord(t *testing.T) {
	svc, _, _ := setupProgress(t)

	assert.False(t, svc.CompleteLesson("l1", 50, "The Linux Shell"))
	assert.Equal(t, 0, svc.Snapshot().UserXP)
}

func TestCompleteLessonGatesUnmet(t *testing.T) {
	svc, _, _ := setupProgress(t)

	require.NoError(t, svc.UpdateLessonProgress("l1", GateTheoryRead, true))
	require.NoError(t, svc.UpdateLessonProgress("l1", GatePracticeCompleted, true))
	require.NoError(t, svc.UpdateLessonProgress("l1", GateQuizPassed, true))

	assert.False(t, svc.CompleteLesson("l1", 50, "The Linux Shell"))

	state := svc.Snapshot()
	assert.Equal(t, 0, state.UserXP)
	assert.False(t, state.LessonProgress["l1"].Completed)
}

func TestCompleteLessonIdempotent(t *testing.T) {
	svc, _, content := setupProgress(t)

	lesson, err := content.GetLesson("l1")
	require.NoError(t, err)

	openAllGates(t, svc, "l1")

	assert.True(t, svc.CompleteLesson("l1", lesson.XP, lesson.Title))

	state := svc.Snapshot()
	assert.Equal(t, lesson.XP, state.UserXP)
	assert.True(t, state.LessonProgress["l1"].Completed)
	assert.Contains(t, state.AwardedIDs, "lesson-l1")

	// Completing again succeeds but grants nothing
	assert.True(t, svc.CompleteLesson("l1", lesson.XP, lesson.Title))
	assert.Equal(t, lesson.XP, svc.Snapshot().UserXP)
}

// The badge sweep runs inside the XP grant, before the completed flag is
// written, so the first lesson badge lands on the next XP event.
func TestFirstBloodBadgeOnNextGrant(t *testing.T) {
	svc, _, content := setupProgress(t)

	lesson, err := content.GetLesson("l1")
	require.NoError(t, err)

	openAllGates(t, svc, "l1")
	require.True(t, svc.CompleteLesson("l1", lesson.XP, lesson.Title))
	assert.NotContains(t, svc.Snapshot().Badges, shared.BadgeFirstBlood)

	svc.AddXp(10, "Extra drill", "")

	state := svc.Snapshot()
	assert.Contains(t, state.Badges, shared.BadgeFirstBlood)

	badge, ok := content.GetBadgeConfig(shared.BadgeFirstBlood)
	require.True(t, ok)
	assert.Equal(t, lesson.XP+10+badge.XPReward, state.UserXP)

	// The award is logged under the badge id
	assert.Equal(t, "Badge Unlocked: "+shared.BadgeFirstBlood, state.ActivityLog[0].Message)
}

func TestModuleMasteryCascadesOnce(t *testing.T) {
	svc, _, content := setupProgress(t)

	// mod-net-2 holds the single lesson nl3
	lesson, err := content.GetLesson("nl3")
	require.NoError(t, err)

	openAllGates(t, svc, "nl3")
	require.True(t, svc.CompleteLesson("nl3", lesson.XP, lesson.Title))

	firstBlood, ok := content.GetBadgeConfig(shared.BadgeFirstBlood)
	require.True(t, ok)

	state := svc.Snapshot()
	assert.Equal(t, []string{"mod-net-2"}, state.CompletedModules)
	assert.Contains(t, state.AwardedIDs, "module-mod-net-2")
	// Lesson XP, then the mastery bonus whose grant also lands first-blood
	assert.Equal(t, lesson.XP+shared.ModuleMasteryXP+firstBlood.XPReward, state.UserXP)

	// Completing the lesson again must not re-grant the mastery bonus
	require.True(t, svc.CompleteLesson("nl3", lesson.XP, lesson.Title))
	assert.Equal(t, state.UserXP, svc.Snapshot().UserXP)
}

func TestRoadmapBadgeOnModuleMastery(t *testing.T) {
	svc, _, content := setupProgress(t)

	// mod-net-1 carries the network-ninja badge and holds nl1 and nl2
	for _, lessonID := range []string{"nl1", "nl2"} {
		lesson, err := content.GetLesson(lessonID)
		require.NoError(t, err)

		openAllGates(t, svc, lessonID)
		require.True(t, svc.CompleteLesson(lessonID, lesson.XP, lesson.Title))
	}

	state := svc.Snapshot()
	assert.Contains(t, state.Badges, "network-ninja")
	assert.Contains(t, state.AwardedIDs, "badge-network-ninja")
	assert.Equal(t, []string{"mod-net-1"}, state.CompletedModules)
}

func TestCommandRunnerBadge(t *testing.T) {
	svc, _, content := setupProgress(t)

	for i := 0; i < shared.CommandRunnerThreshold; i++ {
		svc.IncrementCommandCount()
	}

	badge, ok := content.GetBadgeConfig(shared.BadgeCommandRunner)
	require.True(t, ok)

	state := svc.Snapshot()
	assert.Equal(t, shared.CommandRunnerThreshold, state.TotalCommandsRun)
	assert.Contains(t, state.Badges, shared.BadgeCommandRunner)
	assert.Equal(t, badge.XPReward, state.UserXP)
}

func TestTouchStreak(t *testing.T) {
	svc, _, _ := setupProgress(t)

	svc.TouchStreak("2025-03-01")
	assert.Equal(t, 1, svc.Snapshot().UserStreak)

	// Same day is a no-op
	svc.TouchStreak("2025-03-01")
	assert.Equal(t, 1, svc.Snapshot().UserStreak)

	// Next day extends
	svc.TouchStreak("2025-03-02")
	assert.Equal(t, 2, svc.Snapshot().UserStreak)

	// A gap restarts at 1
	svc.TouchStreak("2025-03-05")
	state := svc.Snapshot()
	assert.Equal(t, 1, state.UserStreak)
	assert.Equal(t, "2025-03-05", state.LastActiveDay)
}

func TestStreakBadge(t *testing.T) {
	svc, _, content := setupProgress(t)

	for day := 1; day <= shared.Streak7Threshold; day++ {
		svc.TouchStreak(fmt.Sprintf("2025-03-%02d", day))
	}

	badge, ok := content.GetBadgeConfig(shared.BadgeStreak7)
	require.True(t, ok)

	state := svc.Snapshot()
	assert.Equal(t, shared.Streak7Threshold, state.UserStreak)
	assert.Contains(t, state.Badges, shared.BadgeStreak7)
	assert.Equal(t, badge.XPReward, state.UserXP)
}

func TestStatePersistsAcrossRestart(t *testing.T) {
	kv := newTestKV()
	content := newTestContent()

	svc := newTestProgress(kv, content)
	svc.AddXp(250, "Session one", "")
	svc.TouchStreak("2025-03-01")
	require.NoError(t, svc.UpdateLessonProgress("l1", GateTheoryRead, true))

	restarted := newTestProgress(kv, content)

	state := restarted.Snapshot()
	assert.Equal(t, 250, state.UserXP)
	assert.Equal(t, 2, state.UserLevel)
	assert.Equal(t, 1, state.UserStreak)
	assert.True(t, state.LessonProgress["l1"].TheoryRead)
	require.Len(t, state.ActivityLog, 1)
	assert.Equal(t, "Session one", state.ActivityLog[0].Message)
}

func TestReset(t *testing.T) {
	kv := newTestKV()
	content := newTestContent()

	svc := newTestProgress(kv, content)
	svc.AddXp(500, "Doomed progress", "")
	svc.Reset()

	state := svc.Snapshot()
	assert.Equal(t, 0, state.UserXP)
	assert.Equal(t, 1, state.UserLevel)
	assert.Empty(t, state.Badges)
	assert.Empty(t, state.ActivityLog)

	// The wipe reaches the durable store too
	restarted := newTestProgress(kv, content)
	assert.Equal(t, 0, restarted.Snapshot().UserXP)
}

func TestSubscribeNotifiesOnCommit(t *testing.T) {
	svc, _, _ := setupProgress(t)

	var got []int
	unsub := svc.Subscribe(func(s model.AppState) {
		got = append(got, s.UserXP)
	})

	svc.AddXp(10, "First", "")
	svc.AddXp(20, "Second", "")

	unsub()
	svc.AddXp(30, "Unheard", "")

	assert.Equal(t, []int{10, 30}, got)
}

func TestSubscriberCanQueryStore(t *testing.T) {
	svc, _, _ := setupProgress(t)

	// Listeners fire after the commit's lock is released, so reading the
	// store from inside one must not block.
	var seen []int
	unsub := svc.Subscribe(func(s model.AppState) {
		seen = append(seen, svc.Snapshot().UserXP)
	})
	defer unsub()

	svc.AddXp(10, "First", "")
	svc.AddXp(20, "Second", "")

	assert.Equal(t, []int{10, 30}, seen)
}
