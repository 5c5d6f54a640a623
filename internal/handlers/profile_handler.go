package handlers

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"
	"gorm.io/gorm"

	"github.com/slotworks/team-scheduler/internal/httperr"
	"github.com/slotworks/team-scheduler/internal/infra/storage"
	"github.com/slotworks/team-scheduler/internal/middleware"
	"github.com/slotworks/team-scheduler/internal/models"
)

const (
	maxAvatarBytes = 5 << 20
	avatarMaxDim   = 256
)

type ProfileHandler struct {
	db    *gorm.DB
	store *storage.AvatarStore
}

func NewProfileHandler(db *gorm.DB, store *storage.AvatarStore) *ProfileHandler {
	return &ProfileHandler{db: db, store: store}
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to save profile.")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadAvatar re-encodes whatever the browser sends as a bounded
// webp before it ever reaches the bucket.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.store == nil {
		httperr.Internal(c, "avatar_storage_unconfigured", "Avatar storage is not configured.")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "Avatar file is required.")
		return
	}

	if fileHeader.Size > maxAvatarBytes {
		httperr.BadRequest(c, "avatar_too_large", "Avatar must be at most 5MB.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_avatar", "Failed to read avatar file.")
		return
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Avatar must be a JPEG or PNG image.")
		return
	}

	img = shrinkToFit(img, avatarMaxDim)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		httperr.Internal(c, "failed_to_encode_avatar", "Failed to process avatar.")
		return
	}

	key := fmt.Sprintf("avatars/%d/%d.webp", userID, time.Now().Unix())

	url, err := h.store.Put(c.Request.Context(), key, buf.Bytes(), "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Failed to upload avatar.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {

		httperr.Internal(c, "failed_to_save_avatar", "Failed to save avatar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

func shrinkToFit(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	if w > h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
