package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

type CalendarHandler struct {
	svc *services.CalendarService
}

func NewCalendarHandler(svc *services.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

type navigateRequest struct {
	Delta int `json:"delta"`
}

type selectionRequest struct {
	Date string `json:"date"`
}

type stickerRequest struct {
	Date    string `json:"date"`
	Sticker string `json:"sticker" binding:"required"`
}

func (h *CalendarHandler) RegisterRoutes(router *gin.RouterGroup) {
	calendar := router.Group("/calendar")
	{
		calendar.GET("", h.Month)
		calendar.POST("/navigate", h.Navigate)
		calendar.PUT("/selection", h.Select)
		calendar.POST("/stickers", h.AddSticker)
	}
}

// Month godoc
// @Summary     Month grid
// @Description The displayed month, or the one given by year and month (1-12)
// @Tags        calendar
// @Produce     json
// @Param       year  query int false "Year"
// @Param       month query int false "Month, 1-12"
// @Success     200 {object} services.MonthView
// @Failure     400 {object} map[string]string
// @Router      /calendar [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	yearStr, monthStr := c.Query("year"), c.Query("month")
	if yearStr == "" && monthStr == "" {
		c.JSON(http.StatusOK, h.svc.Grid(c.Request.Context()))
		return
	}

	year, yerr := strconv.Atoi(yearStr)
	month, merr := strconv.Atoi(monthStr)
	if yerr != nil || merr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must both be integers"})
		return
	}

	view, err := h.svc.GridFor(c.Request.Context(), year, time.Month(month))
	if err != nil {
		respondError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Navigate godoc
// @Summary Move the displayed month
// @Tags    calendar
// @Accept  json
// @Produce json
// @Param   body body navigateRequest true "Months to move, negative goes back"
// @Success 200 {object} services.MonthView
// @Router  /calendar/navigate [post]
func (h *CalendarHandler) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.svc.NavigateMonth(req.Delta)
	c.JSON(http.StatusOK, h.svc.Grid(c.Request.Context()))
}

// Select godoc
// @Summary     Select a day
// @Description An empty date clears the selection
// @Tags        calendar
// @Accept      json
// @Produce     json
// @Param       body body selectionRequest true "Date key"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]string
// @Router      /calendar/selection [put]
func (h *CalendarHandler) Select(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Date == "" {
		h.svc.ClearSelection()
		c.JSON(http.StatusOK, gin.H{"selectedDate": nil})
		return
	}

	if err := h.svc.SelectDate(req.Date); err != nil {
		respondError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"selectedDate": req.Date,
		"stickers":     h.svc.StickersOn(req.Date),
	})
}

// AddSticker godoc
// @Summary     Place a sticker
// @Description Without a date the sticker goes on the selected day, if any
// @Tags        calendar
// @Accept      json
// @Produce     json
// @Param       body body stickerRequest true "Sticker"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]string
// @Router      /calendar/stickers [post]
func (h *CalendarHandler) AddSticker(c *gin.Context) {
	var req stickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var (
		added bool
		err   error
	)
	date := req.Date
	if date == "" {
		date = h.svc.SelectedDate()
		added, err = h.svc.ApplySticker(ctx, req.Sticker)
	} else {
		added, err = h.svc.AssignSticker(ctx, date, req.Sticker)
	}

	body := gin.H{"added": added}
	if date != "" && domain.ValidateDateKey(date) == nil {
		body["date"] = date
		body["stickers"] = h.svc.StickersOn(date)
	}

	if err != nil {
		respondError(c, err, body)
		return
	}

	c.JSON(http.StatusOK, body)
}
