package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kali-linux-uz/academy_api/shared"
)

func setupChallenge(t *testing.T, day string) (*DailyChallengeService, *ProgressService, *KeyValueService, *ContentService) {
	t.Helper()
	kv := newTestKV()
	content := newTestContent()
	progress := newTestProgress(kv, content)
	return newTestChallenge(kv, content, progress, day), progress, kv, content
}

func TestTodayChallengeIsStableWithinADay(t *testing.T) {
	svc, progress, kv, content := setupChallenge(t, "2025-03-01")

	first, err := svc.TodayChallenge()
	require.NoError(t, err)

	second, err := svc.TodayChallenge()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// A fresh instance over the same store agrees
	again, err := newTestChallenge(kv, content, progress, "2025-03-01").TodayChallenge()
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	state := progress.Snapshot().DailyChallengeState
	assert.Equal(t, "2025-03-01", state.Date)
	assert.Equal(t, first.ID, state.ChallengeID)
	assert.False(t, state.Completed)
}

func TestAllocationRecordsUsedIDs(t *testing.T) {
	svc, progress, kv, content := setupChallenge(t, "2025-03-01")

	first, err := svc.TodayChallenge()
	require.NoError(t, err)

	used := KVGet(kv, shared.KeyUsedChallengeIDs, []string{})
	assert.Equal(t, []string{first.ID}, used)

	// The next day never repeats a used challenge while the pool lasts
	next, err := newTestChallenge(kv, content, progress, "2025-03-02").TodayChallenge()
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, next.ID)

	used = KVGet(kv, shared.KeyUsedChallengeIDs, []string{})
	assert.Equal(t, []string{first.ID, next.ID}, used)
}

func TestCompleteGrantsXPOnce(t *testing.T) {
	svc, progress, _, _ := setupChallenge(t, "2025-03-01")

	challenge, err := svc.Complete()
	require.NoError(t, err)

	state := progress.Snapshot()
	assert.Equal(t, challenge.XP, state.UserXP)
	assert.True(t, state.DailyChallengeState.Completed)
	assert.Equal(t, 1, state.UserStreak)
	assert.True(t, svc.IsCompletedToday())

	// Same-day re-completion is a no-op
	_, err = svc.Complete()
	require.NoError(t, err)
	assert.Equal(t, challenge.XP, progress.Snapshot().UserXP)
}

func TestCompleteOnConsecutiveDaysExtendsStreak(t *testing.T) {
	kv := newTestKV()
	content := newTestContent()
	progress := newTestProgress(kv, content)

	day1 := newTestChallenge(kv, content, progress, "2025-03-01")
	_, err := day1.Complete()
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Snapshot().UserStreak)

	day2 := newTestChallenge(kv, content, progress, "2025-03-02")
	assert.False(t, day2.IsCompletedToday())

	_, err = day2.Complete()
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Snapshot().UserStreak)
}
