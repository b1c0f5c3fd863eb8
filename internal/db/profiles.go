package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-engine/internal/types"
)

// GetProfile retrieves a user's profile, returning (nil, nil) when absent.
func (db *DB) GetProfile(ctx context.Context, userID string) (*types.Profile, error) {
	var p types.Profile
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, email, goal_role, experience_level, current_education,
		        graduation_year, linkedin_url, github_url, portfolio_url,
		        created_at, updated_at
		 FROM profiles WHERE user_id = $1`, userID).Scan(
		&p.UserID, &p.Email, &p.GoalRole, &p.ExperienceLevel, &p.CurrentEducation,
		&p.GraduationYear, &p.LinkedInURL, &p.GitHubURL, &p.PortfolioURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// UpsertProfile inserts or updates a user's profile.
func (db *DB) UpsertProfile(ctx context.Context, p *types.Profile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles
		   (user_id, email, goal_role, experience_level, current_education,
		    graduation_year, linkedin_url, github_url, portfolio_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (user_id) DO UPDATE SET
		   email = EXCLUDED.email,
		   goal_role = EXCLUDED.goal_role,
		   experience_level = EXCLUDED.experience_level,
		   current_education = EXCLUDED.current_education,
		   graduation_year = EXCLUDED.graduation_year,
		   linkedin_url = EXCLUDED.linkedin_url,
		   github_url = EXCLUDED.github_url,
		   portfolio_url = EXCLUDED.portfolio_url,
		   updated_at = EXCLUDED.updated_at`,
		p.UserID, p.Email, p.GoalRole, p.ExperienceLevel, p.CurrentEducation,
		p.GraduationYear, p.LinkedInURL, p.GitHubURL, p.PortfolioURL,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
