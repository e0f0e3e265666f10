package model

// TerminalTask is a single simulated-terminal exercise inside a lesson.
// Validation is a plain string comparison against Command; nothing executes.
type TerminalTask struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Command     string `json:"command"`
}

// QuizQuestion is a multiple choice question; CorrectAnswer indexes Options.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// Lesson is individual learning content within a module.
type Lesson struct {
	ID            string         `json:"id"`
	ModuleID      string         `json:"module_id"`
	Title         string         `json:"title"`
	Theory        string         `json:"theory"` // Markdown
	PracticeTasks []string       `json:"practice_tasks"`
	TerminalTasks []TerminalTask `json:"terminal_tasks"`
	Quiz          []QuizQuestion `json:"quiz"`
	XP            int            `json:"xp"`
}

// Module groups lessons; completing every lesson masters the module.
type Module struct {
	ID          string   `json:"id"`
	RoadmapID   string   `json:"roadmap_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	BadgeID     string   `json:"badge_id,omitempty"` // roadmap badge awarded on mastery
	Lessons     []Lesson `json:"lessons"`
}

// Roadmap is a themed learning track.
type Roadmap struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Modules     []Module `json:"modules"`
}

// Challenge is a daily terminal challenge drawn from a fixed pool.
type Challenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"` // Easy, Medium, Hard, Expert
	XP          int    `json:"xp"`
	Category    string `json:"category"`
	Command     string `json:"command"` // expected command, exact match
	Hint        string `json:"hint,omitempty"`
}

// Command is an entry in the command reference library.
type Command struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Syntax      string `json:"syntax"`
	Example     string `json:"example"`
	SafeUsage   string `json:"safe_usage,omitempty"`
}

// BadgeConfig is static reference data for a one-time-unlockable badge.
type BadgeConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int    `json:"xp_reward"`
	Rarity      string `json:"rarity"`
}

// LevelConfig maps a level to its title, total XP threshold and perks.
type LevelConfig struct {
	Level    int      `json:"level"`
	Title    string   `json:"title"`
	XPNeeded int      `json:"xp_needed"` // total XP required to reach this level
	Perks    []string `json:"perks"`
}
