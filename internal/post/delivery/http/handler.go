package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sumitdoescode/Clicks/internal/middleware"
	"github.com/sumitdoescode/Clicks/internal/post"
	"github.com/sumitdoescode/Clicks/pkg/response"
)

type PostHandler struct {
	uc post.PostUsecase
}

func NewPostHandler(uc post.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := middleware.MustUserID(c)

	cmd := post.CreatePostCommand{Caption: c.PostForm("caption")}
	if file, err := c.FormFile("image"); err == nil {
		cmd.Image = file
	}

	dto, err := h.uc.CreatePost(c.Request.Context(), userID, cmd)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, dto)
}

func (h *PostHandler) GetFeed(c *gin.Context) {
	viewerID := middleware.MustUserID(c)

	posts, err := h.uc.GetFeed(c.Request.Context(), viewerID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, posts)
}

func (h *PostHandler) GetPostsByUsername(c *gin.Context) {
	viewerID := middleware.MustUserID(c)

	posts, err := h.uc.GetPostsByUsername(c.Request.Context(), viewerID, c.Param("username"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, posts)
}

func (h *PostHandler) GetPostByID(c *gin.Context) {
	viewerID := middleware.MustUserID(c)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	dto, err := h.uc.GetPostByID(c.Request.Context(), viewerID, postID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, dto)
}

type updateCaptionReq struct {
	Caption string `json:"caption"`
}

func (h *PostHandler) UpdateCaption(c *gin.Context) {
	userID := middleware.MustUserID(c)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req updateCaptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}

	if err := h.uc.UpdateCaption(c.Request.Context(), userID, postID, req.Caption); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, "post updated")
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := middleware.MustUserID(c)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.uc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, "post deleted")
}
