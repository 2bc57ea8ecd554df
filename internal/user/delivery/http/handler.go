package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sumitdoescode/Clicks/internal/middleware"
	"github.com/sumitdoescode/Clicks/internal/user"
	"github.com/sumitdoescode/Clicks/pkg/response"
)

type UserHandler struct {
	uc user.UserUsecase
}

func NewUserHandler(uc user.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}

	dto, err := h.uc.Register(c.Request.Context(), user.RegisterCommand{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, dto)
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}

	auth, err := h.uc.Login(c.Request.Context(), user.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, auth)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	viewerID := middleware.MustUserID(c)

	profile, err := h.uc.GetProfileByUsername(c.Request.Context(), viewerID, c.Param("username"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, profile)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, users)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.MustUserID(c)

	cmd := user.UpdateProfileCommand{
		Name: c.PostForm("name"),
	}
	if bio, ok := c.GetPostForm("bio"); ok {
		cmd.Bio = &bio
	}
	if file, err := c.FormFile("image"); err == nil {
		cmd.Image = file
	}

	dto, err := h.uc.UpdateProfile(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, dto)
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.MustUserID(c)

	if err := h.uc.DeleteAccount(c.Request.Context(), userID); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, "account deleted")
}

func (h *UserHandler) ToggleFollow(c *gin.Context) {
	followerID := middleware.MustUserID(c)

	following, err := h.uc.ToggleFollow(c.Request.Context(), followerID, c.Param("username"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"isFollowing": following})
}

func (h *UserHandler) Followers(c *gin.Context) {
	cards, err := h.uc.Followers(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, cards)
}

func (h *UserHandler) Following(c *gin.Context) {
	cards, err := h.uc.Following(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, cards)
}
