package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/slotworks/team-scheduler/internal/audit"
	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/middleware"
	"github.com/slotworks/team-scheduler/internal/models"
	"github.com/slotworks/team-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

// ContractorHandler is owner-only team member management. The owner
// shows up in booking flows like any contractor, so listing here
// covers both roles.
type ContractorHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewContractorHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ContractorHandler {
	return &ContractorHandler{db: db, audit: dispatcher}
}

type CreateContractorRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
}

// ======================================================
// LIST
// ======================================================

func (h *ContractorHandler) List(c *gin.Context) {
	teamID := c.MustGet(middleware.ContextTeamID).(uint)

	var members []models.User
	if err := h.db.
		Where("team_id = ?", teamID).
		Order("id ASC").
		Find(&members).Error; err != nil {

		httperr.Internal(c, "failed_to_list_contractors", "Failed to list team members.")
		return
	}

	out := make([]gin.H, 0, len(members))
	for _, m := range members {
		out = append(out, gin.H{
			"id":         m.ID,
			"first_name": m.FirstName,
			"last_name":  m.LastName,
			"email":      m.Email,
			"phone":      m.Phone,
			"role":       m.Role,
			"avatar_url": m.AvatarURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{"members": out})
}

// ======================================================
// CREATE
// ======================================================

func (h *ContractorHandler) Create(c *gin.Context) {
	teamID := c.MustGet(middleware.ContextTeamID).(uint)
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "A user with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to process password.")
		return
	}

	contractor := models.User{
		TeamID:       teamID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         middleware.RoleContractor,
	}

	if err := h.db.Create(&contractor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_contractor", "Failed to create team member.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TeamID:   teamID,
		UserID:   &ownerID,
		Action:   "contractor_created",
		Entity:   "user",
		EntityID: &contractor.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"id":         contractor.ID,
		"first_name": contractor.FirstName,
		"last_name":  contractor.LastName,
		"email":      contractor.Email,
		"phone":      contractor.Phone,
		"role":       contractor.Role,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *ContractorHandler) Delete(c *gin.Context) {
	teamID := c.MustGet(middleware.ContextTeamID).(uint)
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_contractor_id", "Invalid team member id.")
		return
	}

	var contractor models.User
	if err := h.db.
		Where("id = ? AND team_id = ?", uint(id), teamID).
		First(&contractor).Error; err != nil {

		httperr.NotFound(c, "contractor_not_found", "Team member not found.")
		return
	}

	if contractor.Role == middleware.RoleOwner {
		httperr.BadRequest(c, "cannot_delete_owner", "The team owner cannot be removed.")
		return
	}

	if err := h.db.Delete(&contractor).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_contractor", "Failed to remove team member.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TeamID:   teamID,
		UserID:   &ownerID,
		Action:   "contractor_deleted",
		Entity:   "user",
		EntityID: &contractor.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": contractor.ID})
}
