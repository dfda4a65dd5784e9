package model

// Project categories. CategoryAll is only meaningful as a filter.
const (
	CategoryAll        = "all"
	CategoryWeb        = "web"
	CategoryMobile     = "mobile"
	CategoryAutomation = "automation"
)

// Project is a showcased piece of work.
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url,omitempty"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"live_url,omitempty"`
	GitHubURL    string   `json:"github_url,omitempty"`
}

// ProjectFilter is a selectable project category tab.
type ProjectFilter struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Service is an offered line of work.
type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// Skill is a named skill with a proficiency level in percent.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Title  string  `json:"title"`
	Skills []Skill `json:"skills"`
}
