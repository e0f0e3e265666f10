package dto

import "github.com/kali-linux-uz/academy_api/model"

// ==================== CATALOG RESPONSE DTOs ====================

// LessonSummary is a lesson stripped of its body, for listings.
type LessonSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	XP    int    `json:"xp"`
}

type ModuleResponse struct {
	ID          string          `json:"id"`
	RoadmapID   string          `json:"roadmap_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	BadgeID     string          `json:"badge_id,omitempty"`
	Lessons     []LessonSummary `json:"lessons"`
}

type RoadmapResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Modules     []ModuleResponse `json:"modules"`
}

type RoadmapCollectionResponse struct {
	Roadmaps []RoadmapResponse `json:"roadmaps"`
}

type CommandCollectionResponse struct {
	Commands []model.Command `json:"commands"`
	Total    int             `json:"total"`
}

type GamificationConfigResponse struct {
	Levels []model.LevelConfig `json:"levels"`
	Badges []model.BadgeConfig `json:"badges"`
}

// ==================== MAPPERS ====================

func NewModuleResponse(m model.Module) ModuleResponse {
	lessons := make([]LessonSummary, 0, len(m.Lessons))
	for _, l := range m.Lessons {
		lessons = append(lessons, LessonSummary{ID: l.ID, Title: l.Title, XP: l.XP})
	}

	return ModuleResponse{
		ID:          m.ID,
		RoadmapID:   m.RoadmapID,
		Title:       m.Title,
		Description: m.Description,
		BadgeID:     m.BadgeID,
		Lessons:     lessons,
	}
}

func NewRoadmapResponse(r model.Roadmap) RoadmapResponse {
	modules := make([]ModuleResponse, 0, len(r.Modules))
	for _, m := range r.Modules {
		modules = append(modules, NewModuleResponse(m))
	}

	return RoadmapResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Modules:     modules,
	}
}
