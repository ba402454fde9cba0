package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errLoadUsers  = "failed to load users"
	errSaveUser   = "failed to update user"
	errDeleteUser = "failed to delete user"
)

type roleRequest struct {
	Role string `json:"role" binding:"required" example:"technician"`
}

// @Summary      List users
// @Description  Admin only
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, users"
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.ListUsers()
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadUsers, "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(users),
		"users": users,
	})
}

// @Summary      Change a user's role
// @Description  Admin only. The last admin cannot be demoted.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int          true  "User ID"
// @Param        body  body  roleRequest  true  "viewer, technician or admin"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/users/{id}/role [patch]
// @Security     BearerAuth
func (h *Handler) setUserRole(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req roleRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if err := h.services.SetRole(c.Request.Context(), id, req.Role); err != nil {
		h.respondServiceError(c, err, errSaveUser, "user_set_role_failed", "id", id, "role", req.Role)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK, "role": req.Role})
}

// @Summary      Delete user
// @Description  Admin only. The last admin cannot be deleted.
// @Tags         users
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.DeleteUser(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err, errDeleteUser, "user_delete_failed", "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
