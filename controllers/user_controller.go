package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/miniblog/models"
	"github.com/cppla/miniblog/store"
	"github.com/cppla/miniblog/utils"
)

// UserController manages CRUD operations for users.
type UserController struct {
	store *store.Store
}

// NewUserController creates a new UserController instance.
func NewUserController(s *store.Store) *UserController {
	return &UserController{store: s}
}

// CreateUser persists a new user and returns it with the generated id.
// Duplicate usernames fail on the storage unique constraint.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}

	user := models.User{Username: req.Username}
	if err := u.store.CreateUser(ctx.Request.Context(), &user); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to create user")
		return
	}

	utils.Created(ctx, gin.H{"user": user})
}

// GetUser returns a single user by id.
func (u *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	user, err := u.store.GetUser(ctx.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to load user")
		return
	}

	utils.Success(ctx, gin.H{"user": user})
}

// UpdateUser applies a partial update: only fields present in the payload
// overwrite stored values, absent or null fields are left untouched.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	var req struct {
		Username *string `json:"username"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid request payload")
		return
	}

	id, ok := parseID(ctx)
	if !ok {
		return
	}

	user, err := u.store.UpdateUser(ctx.Request.Context(), id, store.UserChanges{Username: req.Username})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40411, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to update user")
		return
	}

	utils.Success(ctx, gin.H{"user": user})
}

// DeleteUser removes a user by id.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := u.store.DeleteUser(ctx.Request.Context(), id); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40412, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50013, "failed to delete user")
		return
	}

	utils.Respond(ctx, http.StatusNoContent, 0, "user deleted", nil)
}

// parseID reads the :id path parameter as an unsigned integer and writes a
// 400 response when it is not one.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid id")
		return 0, false
	}
	return uint(id), true
}
