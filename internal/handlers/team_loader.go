package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/models"
)

// TeamLoader centralizes the "load the team or write the error"
// dance that almost every handler needs before it can parse a
// customer-facing date string in the right timezone.
type TeamLoader struct {
	db *gorm.DB
}

func NewTeamLoader(db *gorm.DB) *TeamLoader {
	return &TeamLoader{db: db}
}

func (l *TeamLoader) load(c *gin.Context, teamID uint) (*models.Team, bool) {
	var team models.Team
	if err := l.db.First(&team, teamID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "team_not_found", "Team not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_team", "Failed to load team.")
		return nil, false
	}
	return &team, true
}

func (l *TeamLoader) loadBySlug(c *gin.Context, slug string) (*models.Team, bool) {
	var team models.Team
	if err := l.db.Where("slug = ?", slug).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "team_not_found", "Team not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_team", "Failed to load team.")
		return nil, false
	}
	return &team, true
}
