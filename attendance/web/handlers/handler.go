package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rachitshetty07/Attendance-RCN/ai/assistant"
	"github.com/rachitshetty07/Attendance-RCN/attendance/core"
	"github.com/rachitshetty07/Attendance-RCN/infrastructure/email"
	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/rachitshetty07/Attendance-RCN/utils"
	"github.com/rachitshetty07/Attendance-RCN/web/common"
	"github.com/rachitshetty07/Attendance-RCN/web/middlewares"
	"github.com/sirupsen/logrus"
)

// Asker answers free-text questions over the attendance dataset.
type Asker interface {
	Ask(ctx context.Context, question string, snapshot assistant.Snapshot) string
}

// ReportMailer delivers a shared report by email.
type ReportMailer interface {
	SendSharedReport(ctx context.Context, mail email.SharedReportMail) error
}

type Deps struct {
	Roster    *core.Roster
	Records   *store.RecordStore
	Sessions  *core.SessionService
	Clock     *core.ClockService
	Approvals *core.ApprovalService
	Shares    *core.ShareService
	Reports   *core.ReportService
	Assistant Asker
	Mailer    ReportMailer
	Location  *time.Location
	Now       func() time.Time
}

type Endpoint struct {
	Deps
}

var log = logrus.WithField("component", "http")

// Register mounts the API on r. Routes outside /auth/login and /share need a
// session; /manager routes also need the manager role.
func Register(r *gin.RouterGroup, deps Deps) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	ep := &Endpoint{Deps: deps}

	r.POST("/auth/login", ep.Login)
	r.GET("/share/:token", ep.SharedReport)

	protected := r.Group("")
	protected.Use(middlewares.Authentication(deps.Sessions))
	{
		protected.POST("/auth/logout", ep.Logout)
		protected.GET("/me", ep.Me)

		protected.POST("/attendance/clock", ep.RecordClock)
		protected.GET("/attendance/records", ep.ListRecords)
		protected.GET("/attendance/summary", ep.Summary)
		protected.GET("/attendance/summary/export", ep.Export)

		protected.POST("/reports/share", ep.Share)
	}

	manager := protected.Group("/manager")
	manager.Use(middlewares.RequireManager())
	{
		manager.GET("/pending", ep.Pending)
		manager.POST("/records/:id/approve", ep.Approve)
		manager.POST("/ask", ep.Ask)
	}
}

func (ep *Endpoint) clockOutMessage() string {
	return fmt.Sprintf("Clock-out is only available after %s.", utils.FormatClock(ep.Clock.Rules.ClockOutAfter))
}

func (ep *Endpoint) writeError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, "Something went wrong. Please try again."
	switch {
	case errors.Is(err, core.ErrEmailNotRegistered):
		status, message = http.StatusUnauthorized, "This email address is not registered."
	case errors.Is(err, core.ErrInvalidSession):
		status, message = http.StatusUnauthorized, "invalid or expired session"
	case errors.Is(err, core.ErrForbidden):
		status, message = http.StatusForbidden, "manager role required"
	case errors.Is(err, core.ErrClockOutNotAllowed):
		status, message = http.StatusForbidden, ep.clockOutMessage()
	case errors.Is(err, core.ErrActionInProgress):
		status, message = http.StatusConflict, "A clock action is already in progress."
	case errors.Is(err, core.ErrInvalidRecordType):
		status, message = http.StatusBadRequest, "Field 'type' must be one of [in out]"
	case errors.Is(err, core.ErrMalformedToken):
		status, message = http.StatusBadRequest, "Invalid share link."
	case errors.Is(err, core.ErrTokenNotFound):
		status, message = http.StatusNotFound, "Report not found. The link may be invalid."
	case errors.Is(err, core.ErrEmployeeNotFound):
		status, message = http.StatusNotFound, "Associated user not found."
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(status, common.NewErrorResponse(message))
}
