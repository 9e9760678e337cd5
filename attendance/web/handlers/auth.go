package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rachitshetty07/Attendance-RCN/attendance/core"
	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/web/common"
	"github.com/rachitshetty07/Attendance-RCN/web/middlewares"
)

type LoginDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginResponseDTO struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Employee  model.Employee `json:"employee"`
}

func (ep *Endpoint) Login(c *gin.Context) {
	var body LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	session, token, err := ep.Sessions.Login(c.Request.Context(), body.Email)
	if err != nil {
		ep.writeError(c, err)
		return
	}

	maxAge := int(ep.Sessions.SessionTTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.CookieName, token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, common.NewSuccessResponse(LoginResponseDTO{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Employee:  session.Employee,
	}))
}

func (ep *Endpoint) Logout(c *gin.Context) {
	if err := ep.Sessions.Logout(c.Request.Context(), middlewares.GetSession(c)); err != nil {
		ep.writeError(c, err)
		return
	}
	c.SetCookie(middlewares.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

type MeDTO struct {
	Employee   model.Employee   `json:"employee"`
	Status     core.ClockStatus `json:"status"`
	Advisories []string         `json:"advisories"`
}

func (ep *Endpoint) Me(c *gin.Context) {
	session := middlewares.GetSession(c)
	status := ep.Clock.Status(c.Request.Context(), session)

	advisories := []string{}
	if !status.ClockedIn && !status.ClockInOnTime {
		advisories = append(advisories, "Late entry will require manager approval.")
	}
	if status.ClockedIn && !status.CanClockOut {
		advisories = append(advisories, ep.clockOutMessage())
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(MeDTO{
		Employee:   session.Employee,
		Status:     status,
		Advisories: advisories,
	}))
}
