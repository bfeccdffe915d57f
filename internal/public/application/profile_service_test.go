package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

func validProfileCommand() UpdateProfileCommand {
	return UpdateProfileCommand{
		FullName:           "Priya Sharma",
		Age:                26,
		RelationshipStatus: "single",
		Occupation:         "working",
		Location:           "Downtown District",
		PreferredAreas:     []string{"Downtown District"},
		LanguagesSpoken:    []string{"English", "Hindi"},
		BedType:            "twin",
		FloorLevel:         "high",
		BudgetMin:          500,
		BudgetMax:          1200,
		MoveInDate:         time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		LeaseDuration:      "6-months",
	}
}

func TestProfileServiceUpdate(t *testing.T) {
	t.Run("creates a profile on first write", func(t *testing.T) {
		repo := newFakeProfileRepo()
		service := NewProfileService(repo)

		profile, err := service.Update(context.Background(), "alice", validProfileCommand())
		require.NoError(t, err)
		assert.Equal(t, "alice", profile.UserID)
		assert.Equal(t, domain.Occupation("working"), profile.Occupation)
		assert.Equal(t, domain.LanguageList{"English", "Hindi"}, profile.Accessibility.LanguagesSpoken)

		stored, err := repo.FindByUserID(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "Priya Sharma", stored.FullName)
	})

	t.Run("preserves survey responses across updates", func(t *testing.T) {
		repo := newFakeProfileRepo(eligibleProfile("alice"))
		service := NewProfileService(repo)

		profile, err := service.Update(context.Background(), "alice", validProfileCommand())
		require.NoError(t, err)
		assert.Len(t, profile.SurveyResponses, 5)
	})

	t.Run("rejects invalid commands", func(t *testing.T) {
		service := NewProfileService(newFakeProfileRepo())

		tests := []struct {
			name   string
			mutate func(*UpdateProfileCommand)
		}{
			{"missing name", func(c *UpdateProfileCommand) { c.FullName = "" }},
			{"underage", func(c *UpdateProfileCommand) { c.Age = 17 }},
			{"unknown occupation", func(c *UpdateProfileCommand) { c.Occupation = "astronaut" }},
			{"no languages", func(c *UpdateProfileCommand) { c.LanguagesSpoken = nil }},
			{"inverted budget", func(c *UpdateProfileCommand) { c.BudgetMin = 2000; c.BudgetMax = 100 }},
			{"unknown bed preference", func(c *UpdateProfileCommand) { c.BedType = "waterbed" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cmd := validProfileCommand()
				tt.mutate(&cmd)
				_, err := service.Update(context.Background(), "alice", cmd)
				assert.Error(t, err)
			})
		}
	})
}
