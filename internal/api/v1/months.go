package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"attendash/internal/calculator"
	"attendash/internal/model"
	memstore "attendash/internal/service/store"
)

type monthsResponse struct {
	SelectedMonth string      `json:"selectedMonth"`
	Items         []monthItem `json:"items"`
}

type monthItem struct {
	Month     string `json:"month"`
	Employees int    `json:"employees"`
}

// ListMonths 월 목록
// GET /api/months
func (h *Handler) ListMonths(c *gin.Context) {
	sizes := h.memory.MonthSizes()
	items := make([]monthItem, 0, len(sizes))
	for _, m := range sizes {
		items = append(items, monthItem{Month: m.Month, Employees: m.Employees})
	}
	c.JSON(http.StatusOK, monthsResponse{
		SelectedMonth: h.selectedMonth(),
		Items:         items,
	})
}

type selectMonthRequest struct {
	Month string `json:"month"`
}

// SelectMonth 선택 월 변경
// POST /api/months/select
func (h *Handler) SelectMonth(c *gin.Context) {
	var req selectMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !h.memory.HasMonth(req.Month) {
		c.JSON(http.StatusNotFound, gin.H{"error": "month not found"})
		return
	}

	if h.store != nil {
		if err := h.store.SetSelectedMonth(req.Month); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else {
		h.mu.Lock()
		h.selected = req.Month
		h.mu.Unlock()
	}

	c.JSON(http.StatusOK, gin.H{
		"selectedMonth": req.Month,
		"employees":     h.memory.Employees(req.Month),
	})
}

func (h *Handler) selectedMonth() string {
	if h.store != nil {
		m, err := h.store.GetSelectedMonth()
		if err != nil {
			log.Printf("load selected month failed: %v", err)
			return ""
		}
		return m
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.selected
}

type employeeItem struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
}

// ListEmployees 해당 월 직원 목록 (가나다순)
// GET /api/months/:month/employees
func (h *Handler) ListEmployees(c *gin.Context) {
	month := c.Param("month")
	if !h.memory.HasMonth(month) {
		c.JSON(http.StatusNotFound, gin.H{"error": "month not found"})
		return
	}

	roster := h.memory.Roster(month)
	items := make([]employeeItem, 0, len(roster))
	for _, e := range roster {
		items = append(items, employeeItem{Name: e.Name, EmployeeID: e.EmployeeID})
	}
	c.JSON(http.StatusOK, gin.H{
		"month": month,
		"items": items,
	})
}

type employeeResponse struct {
	Month      string                   `json:"month"`
	Name       string                   `json:"name"`
	EmployeeID string                   `json:"employeeId"`
	Records    []model.AttendanceRecord `json:"records"`
	Summary    model.MonthlySummary     `json:"summary"`
}

// GetEmployee 직원 1명 월간 상세 + 집계
// GET /api/months/:month/employees/:name
func (h *Handler) GetEmployee(c *gin.Context) {
	month := c.Param("month")
	name := c.Param("name")

	view, err := h.memory.Employee(month, name)
	if errors.Is(err, memstore.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records := view.Records
	for i := range records {
		records[i].OvertimeHours = calculator.RoundHours(records[i].OvertimeHours)
		records[i].DurationHours = calculator.RoundHours(records[i].DurationHours)
	}

	c.JSON(http.StatusOK, employeeResponse{
		Month:      month,
		Name:       name,
		EmployeeID: view.EmployeeID,
		Records:    records,
		Summary:    calculator.RoundSummary(view.Summary),
	})
}
