package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rachitshetty07/Attendance-RCN/attendance/core"
	"github.com/rachitshetty07/Attendance-RCN/attendance/export"
	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/infrastructure/email"
	"github.com/rachitshetty07/Attendance-RCN/web/common"
	"github.com/rachitshetty07/Attendance-RCN/web/middlewares"
)

// ShareDTO shares a month of the caller's report. Managers may name another
// employee through email. Recipients get the link and workbook by mail.
type ShareDTO struct {
	Period     common.YearMonth `json:"period"`
	Email      string           `json:"email" binding:"omitempty,email"`
	Recipients []string         `json:"recipients" binding:"omitempty,max=20,dive,email"`
}

type ShareResponseDTO struct {
	Token  string   `json:"token"`
	URL    string   `json:"url"`
	Mailed []string `json:"mailed,omitempty"`
}

func (ep *Endpoint) Share(c *gin.Context) {
	var body ShareDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	session := middlewares.GetSession(c)
	target := session.Employee.Email
	if body.Email != "" && model.NormalizeEmail(body.Email) != model.NormalizeEmail(target) {
		if !session.Employee.IsManager() {
			ep.writeError(c, core.ErrForbidden)
			return
		}
		target = body.Email
	}
	if len(body.Recipients) > 0 && ep.Mailer == nil {
		c.JSON(http.StatusServiceUnavailable, common.NewErrorResponse("email delivery is not configured"))
		return
	}

	ctx := c.Request.Context()
	period := body.Period.OrCurrent(ep.Now(), ep.Location)
	report, err := ep.Reports.Build(ctx, target, period)
	if err != nil {
		ep.writeError(c, err)
		return
	}

	token, err := ep.Shares.Create(ctx, report.Employee.Email, period)
	if err != nil {
		ep.writeError(c, err)
		return
	}
	res := ShareResponseDTO{Token: token, URL: ep.Shares.URL(token)}

	if len(body.Recipients) > 0 {
		var buf bytes.Buffer
		if err := export.WriteMonthlyReport(&buf, report, ep.Location); err != nil {
			ep.writeError(c, err)
			return
		}
		err := ep.Mailer.SendSharedReport(ctx, email.SharedReportMail{
			To:           body.Recipients,
			EmployeeName: report.Employee.Name,
			MonthName:    report.MonthName,
			URL:          res.URL,
			FileName:     export.FileName(period),
			ContentType:  export.ContentType,
			Workbook:     buf.Bytes(),
		})
		if err != nil {
			log.WithError(err).WithField("token", token).Error("failed to mail shared report")
			c.JSON(http.StatusBadGateway, common.NewErrorResponse("The report link was created but the email could not be sent."))
			return
		}
		res.Mailed = body.Recipients
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(res))
}

// SharedReport is public. The token alone grants read access.
func (ep *Endpoint) SharedReport(c *gin.Context) {
	report, err := ep.Reports.Shared(c.Request.Context(), c.Param("token"))
	if err != nil {
		ep.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(report))
}
