package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/miniblog/models"
	"github.com/cppla/miniblog/store"
	"github.com/cppla/miniblog/utils"
)

// PostController manages CRUD operations for posts.
type PostController struct {
	store *store.Store
}

// NewPostController creates a new PostController instance.
func NewPostController(s *store.Store) *PostController {
	return &PostController{store: s}
}

// CreatePost persists a new post and returns it with the generated id.
// The author id is not checked against an existing user here; a dangling
// user_id fails on the storage foreign key.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
		UserID  uint   `json:"user_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	post := models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	}
	if err := p.store.CreatePost(ctx.Request.Context(), &post); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to create post")
		return
	}

	utils.Created(ctx, gin.H{"post": post})
}

// GetPost returns a single post by id.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	post, err := p.store.GetPost(ctx.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to load post")
		return
	}

	utils.Success(ctx, gin.H{"post": post})
}

// UpdatePost applies a partial update: only fields present in the payload
// overwrite stored values, absent or null fields are left untouched.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		UserID  *uint   `json:"user_id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid request payload")
		return
	}

	id, ok := parseID(ctx)
	if !ok {
		return
	}

	post, err := p.store.UpdatePost(ctx.Request.Context(), id, store.PostChanges{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40421, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to update post")
		return
	}

	utils.Success(ctx, gin.H{"post": post})
}

// DeletePost removes a post by id.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := p.store.DeletePost(ctx.Request.Context(), id); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40422, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to delete post")
		return
	}

	utils.Respond(ctx, http.StatusNoContent, 0, "post deleted", nil)
}
