package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rachitshetty07/Attendance-RCN/ai/assistant"
	"github.com/rachitshetty07/Attendance-RCN/web/common"
	"github.com/rachitshetty07/Attendance-RCN/web/middlewares"
)

func (ep *Endpoint) Pending(c *gin.Context) {
	pending, err := ep.Approvals.Pending(c.Request.Context(), middlewares.GetSession(c))
	if err != nil {
		ep.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(pending))
}

type ApproveResponseDTO struct {
	ID       int64 `json:"id"`
	Approved bool  `json:"approved"`
}

func (ep *Endpoint) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid record id"))
		return
	}

	changed, err := ep.Approvals.Approve(c.Request.Context(), middlewares.GetSession(c), id)
	if err != nil {
		ep.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(ApproveResponseDTO{ID: id, Approved: changed}))
}

type AskDTO struct {
	Question string `json:"question" binding:"required,max=2000"`
}

type AskResponseDTO struct {
	Answer string `json:"answer"`
}

func (ep *Endpoint) Ask(c *gin.Context) {
	if ep.Assistant == nil {
		c.JSON(http.StatusServiceUnavailable, common.NewErrorResponse("AI assistant is not configured"))
		return
	}

	var body AskDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	ctx := c.Request.Context()
	snapshot := assistant.NewSnapshot(ep.Roster.All(), ep.Records.All(ctx))
	answer := ep.Assistant.Ask(ctx, body.Question, snapshot)
	c.JSON(http.StatusOK, common.NewSuccessResponse(AskResponseDTO{Answer: answer}))
}
