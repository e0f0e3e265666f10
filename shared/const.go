package shared

const (
	StoragePrefix = "kali_linux_uz_v1_"

	KeyUserXP              = "user_xp"
	KeyUserLevel           = "user_level"
	KeyLastLevelSeen       = "last_level_seen"
	KeyUserStreak          = "user_streak"
	KeyLastActiveDay       = "last_active_day"
	KeyBadges              = "earned_badges"
	KeyActivityLog         = "activity_log"
	KeyAwardedIDs          = "awarded_ids"
	KeyLessonProgress      = "lesson_progress"
	KeyCompletedModules    = "completed_modules"
	KeyTotalCommands       = "total_commands"
	KeyDailyChallengeState = "daily_challenge_state"
	KeyUsedChallengeIDs    = "used_challenge_ids"

	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"

	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
	DifficultyExpert = "Expert"

	BadgeFirstBlood    = "first-blood"
	BadgeCommandRunner = "command-runner"
	BadgeKaliMaster    = "kali-master"
	BadgeStreak7       = "streak-7"
	BadgeNightHacker   = "night-hacker"
	BadgeCompletionist = "completionist"

	// ModuleMasteryXP is the fixed bonus granted once per mastered module.
	ModuleMasteryXP = 500

	// ActivityLogCap bounds the recent-activity feed.
	ActivityLogCap = 50

	// CommandRunnerThreshold is the run count unlocking the command-runner badge.
	CommandRunnerThreshold = 50

	// KaliMasterLevel is the level unlocking the kali-master badge.
	KaliMasterLevel = 10

	// Streak7Threshold is the streak length unlocking the streak-7 badge.
	Streak7Threshold = 7
)
