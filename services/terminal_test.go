package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kali-linux-uz/academy_api/shared"
)

func setupTerminal(t *testing.T) (*TerminalService, *ProgressService) {
	t.Helper()
	kv := newTestKV()
	content := newTestContent()
	progress := newTestProgress(kv, content)
	challenge := newTestChallenge(kv, content, progress, "2025-03-01")
	return newTestTerminal(content, progress, challenge), progress
}

func TestNormalizeCommand(t *testing.T) {
	cases := map[string]string{
		"ls -la":        "ls -la",
		"  ls   -la  ":  "ls -la",
		"\tpwd\n":       "pwd",
		"":              "",
		"   ":           "",
		"nmap  -F   localhost": "nmap -F localhost",
	}

	for in, want := range cases {
		assert.Equal(t, want, normalizeCommand(in), "input %q", in)
	}
}

func TestRunRecognizedCommand(t *testing.T) {
	svc, progress := setupTerminal(t)

	cmd, recognized := svc.Run("ls -la /home")
	require.True(t, recognized)
	assert.Equal(t, "ls", cmd.ID)
	assert.Equal(t, 1, progress.Snapshot().TotalCommandsRun)
}

func TestRunUnknownCommandStillCounts(t *testing.T) {
	svc, progress := setupTerminal(t)

	cmd, recognized := svc.Run("frobnicate --hard")
	assert.False(t, recognized)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, progress.Snapshot().TotalCommandsRun)
}

func TestRunEmptyInputDoesNotCount(t *testing.T) {
	svc, progress := setupTerminal(t)

	cmd, recognized := svc.Run("   ")
	assert.False(t, recognized)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, progress.Snapshot().TotalCommandsRun)
}

func TestValidateLessonTask(t *testing.T) {
	svc, progress := setupTerminal(t)

	correct, err := svc.ValidateLessonTask("l2", "l2-t1", "  pwd ")
	require.NoError(t, err)
	assert.True(t, correct)

	correct, err = svc.ValidateLessonTask("l2", "l2-t1", "ls")
	require.NoError(t, err)
	assert.False(t, correct)

	assert.Equal(t, 2, progress.Snapshot().TotalCommandsRun)
}

func TestValidateLessonTaskNotFound(t *testing.T) {
	svc, _ := setupTerminal(t)

	_, err := svc.ValidateLessonTask("l2", "no-such-task", "pwd")
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)

	_, err = svc.ValidateLessonTask("no-such-lesson", "l2-t1", "pwd")
	require.Error(t, err)
	appErr, ok = shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestValidateChallenge(t *testing.T) {
	svc, progress := setupTerminal(t)

	challenge, err := svc.challengeSvc.TodayChallenge()
	require.NoError(t, err)

	correct, got, err := svc.ValidateChallenge("definitely wrong")
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, challenge.ID, got.ID)
	assert.False(t, svc.challengeSvc.IsCompletedToday())

	correct, got, err = svc.ValidateChallenge(challenge.Command)
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, challenge.ID, got.ID)
	assert.True(t, svc.challengeSvc.IsCompletedToday())
	assert.Equal(t, challenge.XP, progress.Snapshot().UserXP)
}
