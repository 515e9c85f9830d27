package subconhdl

import (
	"fmt"

	"garment_qms/internal/aggregate"
	basehdl "garment_qms/internal/api/base/handler"
	subconsvc "garment_qms/internal/api/subcon/service"

	"github.com/gofiber/fiber/v3"
)

// SubconDashboardHandler xử lý các yêu cầu dashboard QC1 của nhà thầu phụ
type SubconDashboardHandler struct {
	DashboardService *subconsvc.SubconDashboardService
}

// NewSubconDashboardHandler khởi tạo SubconDashboardHandler mới
func NewSubconDashboardHandler() (*SubconDashboardHandler, error) {
	service, err := subconsvc.NewSubconDashboardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subcon dashboard service: %v", err)
	}
	return &SubconDashboardHandler{DashboardService: service}, nil
}

// parseCriteria đọc filter dashboard subcon từ query params.
// Factory, lineNo, màu là khớp chính xác; moNo và buyer khớp substring.
func parseCriteria(c fiber.Ctx) aggregate.Criteria {
	return aggregate.Criteria{
		MONo:      c.Query("moNo"),
		Buyer:     c.Query("buyer"),
		Factory:   c.Query("factory"),
		LineNo:    c.Query("lineNo"),
		Color:     c.Query("color"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
}

// HandleDaily trả về facet dashboard theo ngày.
// @Summary Dashboard QC1 theo ngày
// @Router /api/v1/subcon/dashboard/daily [get]
func (h *SubconDashboardHandler) HandleDaily(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.DashboardService.Daily(c.Context(), parseCriteria(c))
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		return basehdl.HandleSuccess(c, result)
	})
}

// HandleWeekly trả về facet dashboard theo tuần.
// @Summary Dashboard QC1 theo tuần
// @Router /api/v1/subcon/dashboard/weekly [get]
func (h *SubconDashboardHandler) HandleWeekly(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.DashboardService.Weekly(c.Context(), parseCriteria(c))
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		return basehdl.HandleSuccess(c, result)
	})
}

// HandleMonthly trả về facet dashboard theo tháng.
// @Summary Dashboard QC1 theo tháng
// @Router /api/v1/subcon/dashboard/monthly [get]
func (h *SubconDashboardHandler) HandleMonthly(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.DashboardService.Monthly(c.Context(), parseCriteria(c))
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		return basehdl.HandleSuccess(c, result)
	})
}
