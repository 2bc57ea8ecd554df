package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sumitdoescode/Clicks/internal/engagement"
	"github.com/sumitdoescode/Clicks/internal/middleware"
	"github.com/sumitdoescode/Clicks/pkg/response"
)

type EngagementHandler struct {
	uc engagement.EngagementUsecase
}

func NewEngagementHandler(uc engagement.EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{uc: uc}
}

func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	userID := middleware.MustUserID(c)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	liked, err := h.uc.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"isLiked": liked})
}

func (h *EngagementHandler) ToggleBookmark(c *gin.Context) {
	userID := middleware.MustUserID(c)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	bookmarked, err := h.uc.ToggleBookmark(c.Request.Context(), userID, postID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"isBookmarked": bookmarked})
}

type addCommentReq struct {
	Text string `json:"text" binding:"required"`
}

func (h *EngagementHandler) AddComment(c *gin.Context) {
	userID := middleware.MustUserID(c)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req addCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}

	if err := h.uc.AddComment(c.Request.Context(), userID, postID, req.Text); err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, gin.H{"message": "comment added"})
}

func (h *EngagementHandler) GetComments(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	comments, err := h.uc.GetComments(c.Request.Context(), postID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, comments)
}

func (h *EngagementHandler) DeleteComment(c *gin.Context) {
	userID := middleware.MustUserID(c)

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.uc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, "comment deleted")
}

func (h *EngagementHandler) LikedPosts(c *gin.Context) {
	userID := middleware.MustUserID(c)

	posts, err := h.uc.LikedPosts(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, posts)
}

func (h *EngagementHandler) BookmarkedPosts(c *gin.Context) {
	userID := middleware.MustUserID(c)

	posts, err := h.uc.BookmarkedPosts(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, posts)
}
