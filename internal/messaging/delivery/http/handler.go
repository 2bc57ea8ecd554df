package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sumitdoescode/Clicks/internal/messaging"
	"github.com/sumitdoescode/Clicks/internal/middleware"
	"github.com/sumitdoescode/Clicks/pkg/response"
)

type MessagingHandler struct {
	uc messaging.MessagingUsecase
}

func NewMessagingHandler(uc messaging.MessagingUsecase) *MessagingHandler {
	return &MessagingHandler{uc: uc}
}

type sendMessageReq struct {
	Text string `json:"text"`
}

func (h *MessagingHandler) SendMessage(c *gin.Context) {
	senderID := middleware.MustUserID(c)

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid body")
		return
	}

	msg, err := h.uc.SendMessage(c.Request.Context(), senderID, c.Param("username"), req.Text)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, msg)
}

func (h *MessagingHandler) GetThread(c *gin.Context) {
	callerID := middleware.MustUserID(c)

	msgs, err := h.uc.GetThread(c.Request.Context(), callerID, c.Param("username"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, msgs)
}

func (h *MessagingHandler) ListConversations(c *gin.Context) {
	callerID := middleware.MustUserID(c)

	convs, err := h.uc.ListConversations(c.Request.Context(), callerID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, convs)
}

func (h *MessagingHandler) DeleteConversation(c *gin.Context) {
	callerID := middleware.MustUserID(c)

	convID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid conversation id")
		return
	}

	if err := h.uc.DeleteConversation(c.Request.Context(), callerID, convID); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, "conversation deleted")
}
