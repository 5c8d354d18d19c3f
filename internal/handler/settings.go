package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonar43/portfolio-api/internal/cache"
	"github.com/jonar43/portfolio-api/internal/middleware"
	"github.com/jonar43/portfolio-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

func NewSettingsHandler(db *gorm.DB, redisCache *cache.RedisCache) *SettingsHandler {
	return &SettingsHandler{db: db, cache: redisCache}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	if h.cache != nil {
		if body, err := h.cache.Get(c.Request.Context(), cache.KeySettings); err == nil {
			middleware.RecordCacheLookup("settings", true)
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			return
		}
		middleware.RecordCacheLookup("settings", false)
	}

	var settings model.SiteSettings
	if err := h.db.First(&settings, "id = ?", model.SingletonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "site settings not found"})
		return
	}

	body, err := json.Marshal(gin.H{"settings": settings})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load site settings"})
		return
	}

	if h.cache != nil {
		h.cache.Set(c.Request.Context(), cache.KeySettings, body)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var settings model.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	settings.ID = model.SingletonID

	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&settings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update site settings"})
		return
	}

	if h.cache != nil {
		h.cache.Delete(c.Request.Context(), cache.KeySettings)
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
