package types

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the onboarding profile data consulted during validation and
// initial resume generation. Persistence of profiles is owned elsewhere;
// the engine only reads these fields.
type Profile struct {
	UserID           uuid.UUID `json:"user_id"`
	Email            string    `json:"email,omitempty"`
	GoalRole         string    `json:"goal_role,omitempty"`
	ExperienceLevel  string    `json:"experience_level,omitempty"`
	CurrentEducation string    `json:"current_education,omitempty"`
	GraduationYear   string    `json:"graduation_year,omitempty"`
	LinkedInURL      string    `json:"linkedin_url,omitempty"`
	GitHubURL        string    `json:"github_url,omitempty"`
	PortfolioURL     string    `json:"portfolio_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
