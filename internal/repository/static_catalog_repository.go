package repository

import (
	"context"
	"fmt"

	"github.com/portfolio/messaging/internal/model"
)

// StaticCatalogRepository serves content compiled into the binary.
type StaticCatalogRepository struct {
	projects []*model.Project
	filters  []model.ProjectFilter
	services []*model.Service
	skills   []*model.SkillCategory
}

// Ensure StaticCatalogRepository implements CatalogRepository at compile time.
var _ CatalogRepository = (*StaticCatalogRepository)(nil)

// NewStaticCatalogRepository returns the portfolio's built-in content.
func NewStaticCatalogRepository() *StaticCatalogRepository {
	return &StaticCatalogRepository{
		projects: defaultProjects(),
		filters: []model.ProjectFilter{
			{ID: model.CategoryAll, Label: "All Projects"},
			{ID: model.CategoryWeb, Label: "Web Apps"},
			{ID: model.CategoryMobile, Label: "Mobile Apps"},
			{ID: model.CategoryAutomation, Label: "AI Systems"},
		},
		services: defaultServices(),
		skills:   defaultSkills(),
	}
}

// Projects returns the projects matching category. "" and "all" return every project.
func (r *StaticCatalogRepository) Projects(ctx context.Context, category string) ([]*model.Project, error) {
	if category == "" || category == model.CategoryAll {
		out := make([]*model.Project, len(r.projects))
		copy(out, r.projects)
		return out, nil
	}

	known := false
	for _, f := range r.filters {
		if f.ID == category {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%q: %w", category, ErrUnknownCategory)
	}

	// Return [] not nil for an empty category
	out := []*model.Project{}
	for _, p := range r.projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *StaticCatalogRepository) ProjectFilters(ctx context.Context) ([]model.ProjectFilter, error) {
	out := make([]model.ProjectFilter, len(r.filters))
	copy(out, r.filters)
	return out, nil
}

func (r *StaticCatalogRepository) Services(ctx context.Context) ([]*model.Service, error) {
	out := make([]*model.Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

func (r *StaticCatalogRepository) SkillCategories(ctx context.Context) ([]*model.SkillCategory, error) {
	out := make([]*model.SkillCategory, len(r.skills))
	copy(out, r.skills)
	return out, nil
}

func defaultProjects() []*model.Project {
	return []*model.Project{
		{
			ID:           1,
			Title:        "CyberCommerce Platform",
			Category:     model.CategoryWeb,
			Description:  "Next-gen e-commerce platform with AI-powered recommendations and blockchain payment integration.",
			ImageURL:     "https://images.pexels.com/photos/230544/pexels-photo-230544.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"React", "Node.js", "AI/ML", "Blockchain"},
		},
		{
			ID:           2,
			Title:        "Neural Fitness App",
			Category:     model.CategoryMobile,
			Description:  "AI-powered fitness tracking with biometric analysis and personalized workout generation.",
			ImageURL:     "https://images.pexels.com/photos/4164418/pexels-photo-4164418.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"React Native", "TensorFlow", "IoT", "Cloud AI"},
		},
		{
			ID:           3,
			Title:        "Quantum CRM System",
			Category:     model.CategoryAutomation,
			Description:  "Advanced CRM with quantum computing algorithms for predictive customer behavior analysis.",
			ImageURL:     "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"Quantum AI", "Python", "Machine Learning", "Big Data"},
		},
		{
			ID:           4,
			Title:        "MetaVerse Real Estate",
			Category:     model.CategoryWeb,
			Description:  "Virtual reality real estate platform with 3D property tours and NFT ownership certificates.",
			ImageURL:     "https://images.pexels.com/photos/106399/pexels-photo-106399.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"Three.js", "WebXR", "NFT", "Ethereum"},
		},
		{
			ID:           5,
			Title:        "Drone Delivery Network",
			Category:     model.CategoryMobile,
			Description:  "Autonomous drone delivery system with real-time tracking and AI route optimization.",
			ImageURL:     "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"Flutter", "IoT", "AI Navigation", "Real-time"},
		},
	}
}

func defaultServices() []*model.Service {
	return []*model.Service{
		{
			Title:       "Web Development",
			Description: "Cutting-edge web applications built with modern frameworks and futuristic design principles.",
			Features:    []string{"Responsive Design", "Performance Optimized", "SEO Enhanced", "Progressive Web Apps"},
		},
		{
			Title:       "Mobile Development",
			Description: "Native and cross-platform mobile applications with seamless user experiences.",
			Features:    []string{"Cross-Platform", "Native Performance", "Cloud Integration", "Real-time Features"},
		},
		{
			Title:       "AI Automation",
			Description: "Intelligent workflow automation and AI-powered solutions for business optimization.",
			Features:    []string{"Smart Workflows", "AI Integration", "Process Automation", "Data Analytics"},
		},
	}
}

func defaultSkills() []*model.SkillCategory {
	return []*model.SkillCategory{
		{
			Title: "Frontend Technologies",
			Skills: []model.Skill{
				{Name: "React/Next.js", Level: 95},
				{Name: "TypeScript", Level: 92},
				{Name: "Vue.js/Nuxt.js", Level: 88},
				{Name: "Three.js/WebGL", Level: 85},
				{Name: "WebAssembly", Level: 80},
			},
		},
		{
			Title: "Server Architecture & APIs",
			Skills: []model.Skill{
				{Name: "Node.js/Deno", Level: 93},
				{Name: "Python/FastAPI", Level: 90},
				{Name: "Rust/Go", Level: 85},
				{Name: "Database Design", Level: 88},
				{Name: "Server Architecture", Level: 82},
			},
		},
		{
			Title: "AI & Next-Gen Solutions",
			Skills: []model.Skill{
				{Name: "Machine Learning", Level: 90},
				{Name: "Blockchain/Web3", Level: 85},
				{Name: "IoT Systems", Level: 82},
				{Name: "Quantum Computing", Level: 75},
				{Name: "AR/VR Development", Level: 80},
			},
		},
	}
}
