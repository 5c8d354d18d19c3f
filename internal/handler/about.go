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

type AboutHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

func NewAboutHandler(db *gorm.DB, redisCache *cache.RedisCache) *AboutHandler {
	return &AboutHandler{db: db, cache: redisCache}
}

func (h *AboutHandler) Get(c *gin.Context) {
	if h.cache != nil {
		if body, err := h.cache.Get(c.Request.Context(), cache.KeyAbout); err == nil {
			middleware.RecordCacheLookup("about", true)
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			return
		}
		middleware.RecordCacheLookup("about", false)
	}

	var about model.AboutSection
	if err := h.db.First(&about, "id = ?", model.SingletonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "about section not found"})
		return
	}

	body, err := json.Marshal(gin.H{"about": about})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load about section"})
		return
	}

	if h.cache != nil {
		h.cache.Set(c.Request.Context(), cache.KeyAbout, body)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Update upserts the singleton row: the first PUT creates it, later PUTs
// replace it wholesale.
func (h *AboutHandler) Update(c *gin.Context) {
	var about model.AboutSection
	if err := c.ShouldBindJSON(&about); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	about.ID = model.SingletonID

	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&about).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update about section"})
		return
	}

	if h.cache != nil {
		h.cache.Delete(c.Request.Context(), cache.KeyAbout)
	}

	c.JSON(http.StatusOK, gin.H{"about": about})
}
