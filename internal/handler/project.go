package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonar43/portfolio-api/internal/cache"
	"github.com/jonar43/portfolio-api/internal/middleware"
	"github.com/jonar43/portfolio-api/internal/model"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

func NewProjectHandler(db *gorm.DB, redisCache *cache.RedisCache) *ProjectHandler {
	return &ProjectHandler{db: db, cache: redisCache}
}

type CreateProjectRequest struct {
	ID          string   `json:"id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Gallery     []string `json:"gallery"`
	GithubURL   string   `json:"githubUrl"`
	LiveURL     string   `json:"liveUrl"`
	Order       int      `json:"order"`
	Published   *bool    `json:"published"`
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tech        *[]string `json:"tech"`
	Gallery     *[]string `json:"gallery"`
	GithubURL   *string   `json:"githubUrl"`
	LiveURL     *string   `json:"liveUrl"`
	Order       *int      `json:"order"`
	Published   *bool     `json:"published"`
}

type ReorderRequest struct {
	ProjectIDs []string `json:"projectIds" binding:"required"`
}

// List returns projects ordered for display. ?published=true|false narrows
// the list; the admin dashboard asks for everything.
func (h *ProjectHandler) List(c *gin.Context) {
	var published *bool
	switch c.Query("published") {
	case "true":
		v := true
		published = &v
	case "false":
		v := false
		published = &v
	}

	key := cache.ProjectListKey(published)
	if h.cache != nil {
		if body, err := h.cache.Get(c.Request.Context(), key); err == nil {
			middleware.RecordCacheLookup("projects", true)
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			return
		}
		middleware.RecordCacheLookup("projects", false)
	}

	query := h.db.Order(`"order" asc`)
	if published != nil {
		query = query.Where("published = ?", *published)
	}

	var projects []model.Project
	if err := query.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}
	if projects == nil {
		projects = []model.Project{}
	}

	body, err := json.Marshal(gin.H{"projects": projects})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	if h.cache != nil {
		h.cache.Set(c.Request.Context(), key, body)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	var project model.Project
	if err := h.db.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and title are required"})
		return
	}

	var count int64
	h.db.Model(&model.Project{}).Where("id = ?", req.ID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "project with this id already exists"})
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	project := model.Project{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Tech:        req.Tech,
		Gallery:     req.Gallery,
		GithubURL:   req.GithubURL,
		LiveURL:     req.LiveURL,
		Order:       req.Order,
		Published:   published,
	}

	if err := h.db.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusCreated, gin.H{"project": project})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var project model.Project
	if err := h.db.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Tech != nil {
		project.Tech = *req.Tech
	}
	if req.Gallery != nil {
		project.Gallery = *req.Gallery
	}
	if req.GithubURL != nil {
		project.GithubURL = *req.GithubURL
	}
	if req.LiveURL != nil {
		project.LiveURL = *req.LiveURL
	}
	if req.Order != nil {
		project.Order = *req.Order
	}
	if req.Published != nil {
		project.Published = *req.Published
	}

	if err := h.db.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	result := h.db.Delete(&model.Project{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}

// Reorder rewrites the display order to match the given id list. All
// updates land in one transaction so a half-applied ordering is never
// visible.
func (h *ProjectHandler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectIds is required"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range req.ProjectIDs {
			if err := tx.Model(&model.Project{}).Where("id = ?", id).Update("order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reorder projects"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"message": "projects reordered successfully"})
}

func (h *ProjectHandler) invalidate(c *gin.Context) {
	if h.cache != nil {
		h.cache.Delete(c.Request.Context(), cache.ProjectKeys()...)
	}
}
