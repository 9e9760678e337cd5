package handlers

import (
	"bytes"
	"cmp"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rachitshetty07/Attendance-RCN/attendance/export"
	"github.com/rachitshetty07/Attendance-RCN/attendance/geo"
	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/utils"
	"github.com/rachitshetty07/Attendance-RCN/web/common"
	"github.com/rachitshetty07/Attendance-RCN/web/middlewares"
)

type LocationDTO struct {
	Latitude  float64 `json:"latitude" binding:"latitude"`
	Longitude float64 `json:"longitude" binding:"longitude"`
	Accuracy  float64 `json:"accuracy" binding:"gte=0"`
}

// ClockDTO carries the position the device captured, or why it could not.
// A locationError of "unsupported" means the device has no geolocation.
type ClockDTO struct {
	Type          model.RecordType `json:"type" binding:"required,oneof=in out"`
	Location      *LocationDTO     `json:"location"`
	LocationError string           `json:"locationError"`
}

func (d *ClockDTO) locator() geo.Locator {
	if d.Location == nil && strings.EqualFold(d.LocationError, "unsupported") {
		return nil
	}
	var pos *model.GeoLocation
	if d.Location != nil {
		pos = &model.GeoLocation{Latitude: d.Location.Latitude, Longitude: d.Location.Longitude, Accuracy: d.Location.Accuracy}
	}
	return geo.Reported{Position: pos, Reason: d.LocationError}
}

func (ep *Endpoint) RecordClock(c *gin.Context) {
	var body ClockDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	res, err := ep.Clock.Clock(c.Request.Context(), middlewares.GetSession(c), body.Type, body.locator())
	if err != nil {
		ep.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(res))
}

type RecordSearchDTO struct {
	Offset int `form:"offset" binding:"gte=0"`
	Limit  int `form:"limit" binding:"gte=0,max=500"`
}

func (ep *Endpoint) ListRecords(c *gin.Context) {
	var params RecordSearchDTO
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if params.Limit == 0 {
		params.Limit = 50
	}

	records := ep.Records.ForUser(c.Request.Context(), middlewares.GetSession(c).Employee.Email)
	slices.SortFunc(records, func(a, b model.AttendanceRecord) int {
		if n := cmp.Compare(b.Timestamp, a.Timestamp); n != 0 {
			return n
		}
		return cmp.Compare(b.ID, a.ID)
	})

	page := utils.Page(records, params.Offset, params.Limit)
	c.JSON(http.StatusOK, common.NewSearchResponse(page, int64(len(records)), params.Offset, params.Limit))
}

type PeriodQueryDTO struct {
	Period common.YearMonth `form:"period"`
}

func (ep *Endpoint) period(c *gin.Context) (model.Period, bool) {
	var params PeriodQueryDTO
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return model.Period{}, false
	}
	return params.Period.OrCurrent(ep.Now(), ep.Location), true
}

func (ep *Endpoint) Summary(c *gin.Context) {
	period, ok := ep.period(c)
	if !ok {
		return
	}
	report, err := ep.Reports.Build(c.Request.Context(), middlewares.GetSession(c).Employee.Email, period)
	if err != nil {
		ep.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(report))
}

func (ep *Endpoint) Export(c *gin.Context) {
	period, ok := ep.period(c)
	if !ok {
		return
	}
	report, err := ep.Reports.Build(c.Request.Context(), middlewares.GetSession(c).Employee.Email, period)
	if err != nil {
		ep.writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteMonthlyReport(&buf, report, ep.Location); err != nil {
		ep.writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName(period)+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
