package data

import "github.com/kali-linux-uz/academy_api/model"

// XP curve: level n requires (n-1)^2 * 100 total XP.
// Lvl 1: 0, Lvl 2: 100, Lvl 3: 400, Lvl 4: 900 ...
var Levels = []model.LevelConfig{
	{Level: 1, Title: "Cyber Recruit", XPNeeded: 0, Perks: []string{"Basic Access"}},
	{Level: 2, Title: "Cyber Operative", XPNeeded: 100, Perks: []string{"Custom Avatar Border"}},
	{Level: 3, Title: "Security Analyst", XPNeeded: 400, Perks: []string{"Access to Labs"}},
	{Level: 4, Title: "Threat Hunter", XPNeeded: 900, Perks: []string{"Advanced Tools"}},
	{Level: 5, Title: "Red Team Apprentice", XPNeeded: 1600, Perks: []string{"Exploit Modules"}},
	{Level: 6, Title: "Red Team Operator", XPNeeded: 2500, Perks: []string{"C2 Frameworks"}},
	{Level: 7, Title: "Exploit Engineer", XPNeeded: 3600, Perks: []string{"0-Day Research"}},
	{Level: 8, Title: "Cyber Elite", XPNeeded: 4900, Perks: []string{"Elite Badge"}},
	{Level: 9, Title: "Master Hacker", XPNeeded: 6400, Perks: []string{"Mentor Status"}},
	{Level: 10, Title: "Kali Linux Master", XPNeeded: 8100, Perks: []string{"Legendary Status"}},
}

var Badges = []model.BadgeConfig{
	{ID: "first-blood", Name: "First Blood", Description: "Complete your first lesson.", Icon: "Droplet", XPReward: 50, Rarity: "common"},
	{ID: "command-runner", Name: "Command Runner", Description: "Run 50 terminal commands.", Icon: "Terminal", XPReward: 100, Rarity: "common"},
	{ID: "quiz-master", Name: "Quiz Master", Description: "Pass 10 quizzes with 100% score.", Icon: "Brain", XPReward: 200, Rarity: "rare"},
	{ID: "linux-scholar", Name: "Linux Scholar", Description: "Complete the Linux Fundamentals roadmap.", Icon: "BookOpen", XPReward: 300, Rarity: "rare"},
	{ID: "network-ninja", Name: "Network Ninja", Description: "Complete the Network Analysis roadmap.", Icon: "Network", XPReward: 300, Rarity: "rare"},
	{ID: "web-warrior", Name: "Web Warrior", Description: "Complete the Web Application Security roadmap.", Icon: "Globe", XPReward: 300, Rarity: "rare"},
	{ID: "streak-7", Name: "Dedicated", Description: "Maintain a 7-day learning streak.", Icon: "Flame", XPReward: 500, Rarity: "epic"},
	{ID: "night-hacker", Name: "Night Hacker", Description: "Complete a lesson between 10 PM and 4 AM.", Icon: "Moon", XPReward: 150, Rarity: "epic"},
	{ID: "completionist", Name: "Completionist", Description: "Unlock all modules in the Academy.", Icon: "Trophy", XPReward: 1000, Rarity: "legendary"},
	{ID: "kali-master", Name: "Kali Master", Description: "Reach Level 10.", Icon: "Shield", XPReward: 5000, Rarity: "legendary"},
}

// GetLevelConfig falls back to the top level for anything past the table.
func GetLevelConfig(level int) model.LevelConfig {
	for _, l := range Levels {
		if l.Level == level {
			return l
		}
	}
	return Levels[len(Levels)-1]
}

func GetBadgeConfig(id string) (model.BadgeConfig, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return model.BadgeConfig{}, false
}
