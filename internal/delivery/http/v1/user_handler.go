package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	r.GET("/users", handler.List)
	r.GET("/talents", handler.ListTalents)
}

// List godoc
// @Summary      List users
// @Description  List all users, optionally filtered by role (Admin only)
// @Tags         users
// @Produce      json
// @Param        role  query     string  false  "Role filter (talent or admin)"
// @Success      200   {object}  response.Response{data=[]domain.User}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can list users"))
		return
	}

	users, err := h.userUC.ListUsers(c.Request.Context(), c.Query("role"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved", gin.H{
		"users": users,
		"count": len(users),
	})
}

// ListTalents godoc
// @Summary      List talents
// @Description  List all users with the talent role (Admin only)
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.User}
// @Failure      403  {object}  response.Response
// @Router       /talents [get]
// @Security     BearerAuth
func (h *UserHandler) ListTalents(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can list talents"))
		return
	}

	talents, err := h.userUC.ListTalents(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Talents retrieved", gin.H{
		"talents": talents,
		"count":   len(talents),
	})
}
