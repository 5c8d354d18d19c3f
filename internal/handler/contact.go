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

type ContactHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

func NewContactHandler(db *gorm.DB, redisCache *cache.RedisCache) *ContactHandler {
	return &ContactHandler{db: db, cache: redisCache}
}

func (h *ContactHandler) Get(c *gin.Context) {
	if h.cache != nil {
		if body, err := h.cache.Get(c.Request.Context(), cache.KeyContact); err == nil {
			middleware.RecordCacheLookup("contact", true)
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			return
		}
		middleware.RecordCacheLookup("contact", false)
	}

	var contact model.ContactInfo
	if err := h.db.First(&contact, "id = ?", model.SingletonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact info not found"})
		return
	}

	body, err := json.Marshal(gin.H{"contact": contact})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load contact info"})
		return
	}

	if h.cache != nil {
		h.cache.Set(c.Request.Context(), cache.KeyContact, body)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var contact model.ContactInfo
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	contact.ID = model.SingletonID

	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&contact).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update contact info"})
		return
	}

	if h.cache != nil {
		h.cache.Delete(c.Request.Context(), cache.KeyContact)
	}

	c.JSON(http.StatusOK, gin.H{"contact": contact})
}
