package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kali-linux-uz/academy_api/shared"
)

func TestContentCatalogLoads(t *testing.T) {
	svc := newTestContent()

	assert.NotEmpty(t, svc.GetRoadmaps())
	assert.NotEmpty(t, svc.GetModules())
	assert.NotEmpty(t, svc.GetChallenges())
	assert.NotEmpty(t, svc.GetCommands(""))
	assert.NotEmpty(t, svc.GetLevels())
	assert.NotEmpty(t, svc.GetBadges())
}

func TestGetLesson(t *testing.T) {
	svc := newTestContent()

	lesson, err := svc.GetLesson("l1")
	require.NoError(t, err)
	assert.Equal(t, "mod-lin-1", lesson.ModuleID)
	assert.NotEmpty(t, lesson.Theory)
	assert.NotEmpty(t, lesson.TerminalTasks)

	_, err = svc.GetLesson("no-such-lesson")
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestModuleOfLesson(t *testing.T) {
	svc := newTestContent()

	module := svc.ModuleOfLesson("nl3")
	require.NotNil(t, module)
	assert.Equal(t, "mod-net-2", module.ID)

	assert.Nil(t, svc.ModuleOfLesson("no-such-lesson"))
}

func TestGetCommandsByCategory(t *testing.T) {
	svc := newTestContent()

	network := svc.GetCommands("network")
	require.NotEmpty(t, network)
	for _, cmd := range network {
		assert.Equal(t, "network", cmd.Category)
	}

	all := svc.GetCommands("")
	assert.Greater(t, len(all), len(network))
}

func TestSearchCommands(t *testing.T) {
	svc := newTestContent()

	results := svc.SearchCommands("directory")
	require.NotEmpty(t, results)

	ids := make([]string, 0, len(results))
	for _, cmd := range results {
		ids = append(ids, cmd.ID)
	}
	assert.Contains(t, ids, "pwd")
}

func TestGetLevelConfigFallsBackToTop(t *testing.T) {
	svc := newTestContent()

	levels := svc.GetLevels()
	top := levels[len(levels)-1]

	beyond := svc.GetLevelConfig(top.Level + 5)
	assert.Equal(t, top.Level, beyond.Level)
	assert.Equal(t, top.Title, beyond.Title)
}

func TestLevelCurveIsMonotonic(t *testing.T) {
	svc := newTestContent()

	levels := svc.GetLevels()
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i].XPNeeded, levels[i-1].XPNeeded,
			"level %d must require more XP than level %d", levels[i].Level, levels[i-1].Level)
	}
}

// Every module badge must exist in the badge catalog, otherwise mastery would
// silently fail to award it.
func TestModuleBadgesExist(t *testing.T) {
	svc := newTestContent()

	for _, module := range svc.GetModules() {
		if module.BadgeID == "" {
			continue
		}
		_, ok := svc.GetBadgeConfig(module.BadgeID)
		assert.True(t, ok, "module %s references unknown badge %s", module.ID, module.BadgeID)
	}
}

// Lesson terminal tasks and daily challenges must use commands users can
// study in the reference library.
func TestChallengeIDsAreUnique(t *testing.T) {
	svc := newTestContent()

	seen := map[string]bool{}
	for _, c := range svc.GetChallenges() {
		assert.False(t, seen[c.ID], "duplicate challenge id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Command)
		assert.Greater(t, c.XP, 0)
	}
}
