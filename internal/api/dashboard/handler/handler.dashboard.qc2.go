// Package dashhdl - Handler cho các dashboard QC2.
package dashhdl

import (
	"fmt"
	"strconv"

	"garment_qms/internal/aggregate"
	basehdl "garment_qms/internal/api/base/handler"
	dashsvc "garment_qms/internal/api/dashboard/service"

	"github.com/gofiber/fiber/v3"
)

// Qc2DashboardHandler xử lý các yêu cầu dashboard QC2
type Qc2DashboardHandler struct {
	DashboardService *dashsvc.Qc2DashboardService
}

// NewQc2DashboardHandler khởi tạo Qc2DashboardHandler mới
func NewQc2DashboardHandler() (*Qc2DashboardHandler, error) {
	service, err := dashsvc.NewQc2DashboardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create qc2 dashboard service: %v", err)
	}
	return &Qc2DashboardHandler{DashboardService: service}, nil
}

// parseCriteria đọc filter và cờ gom nhóm từ query params.
// Cờ gom nhóm chỉ bật khi giá trị là chuỗi "true", mọi giá trị khác coi như tắt.
func parseCriteria(c fiber.Ctx) aggregate.Criteria {
	return aggregate.Criteria{
		MONo:       c.Query("moNo"),
		EmpID:      c.Query("emp_id"),
		Buyer:      c.Query("buyer"),
		Color:      c.Query("color"),
		Size:       c.Query("size"),
		Department: c.Query("department"),
		LineNo:     c.Query("lineNo"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),

		GroupByWeek:  c.Query("groupByWeek") == "true",
		GroupByDate:  c.Query("groupByDate") == "true",
		GroupByLine:  c.Query("groupByLine") == "true",
		GroupByMO:    c.Query("groupByMo") == "true",
		GroupByBuyer: c.Query("groupByBuyer") == "true",
		GroupByColor: c.Query("groupByColor") == "true",
		GroupBySize:  c.Query("groupBySize") == "true",
	}
}

// HandleSummary trả về tổng hợp không gom nhóm.
// @Summary Tổng hợp QC2
// @Router /api/v1/dashboard/qc2/summary [get]
func (h *Qc2DashboardHandler) HandleSummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		view, err := h.DashboardService.Summary(c.Context(), parseCriteria(c))
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		return basehdl.HandleSuccess(c, view)
	})
}

// HandleSummaryGrouped trả về một dòng cho mỗi tổ hợp chiều gom nhóm.
// @Summary Tổng hợp QC2 theo nhóm
// @Router /api/v1/dashboard/qc2/summary-grouped [get]
func (h *Qc2DashboardHandler) HandleSummaryGrouped(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		rows, err := h.DashboardService.SummaryGrouped(c.Context(), parseCriteria(c))
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		return basehdl.HandleSuccess(c, rows)
	})
}

// HandleTopDefects trả về các lỗi nhiều nhất. Param limit mặc định 5.
// @Summary Top lỗi QC2
// @Router /api/v1/dashboard/qc2/top-defects [get]
func (h *Qc2DashboardHandler) HandleTopDefects(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		limit, err := strconv.Atoi(c.Query("limit", "5"))
		if err != nil || limit < 0 {
			limit = 5
		}
		defects, svcErr := h.DashboardService.TopDefects(c.Context(), parseCriteria(c), limit)
		if svcErr != nil {
			basehdl.HandleError(c, svcErr)
			return nil
		}
		return basehdl.HandleSuccess(c, defects)
	})
}

// HandleDefectRatesByHour trả về pivot moNo theo giờ trong cửa sổ 07:00-21:00.
// @Summary Tỷ lệ lỗi theo giờ
// @Router /api/v1/dashboard/qc2/defect-rates-by-hour [get]
func (h *Qc2DashboardHandler) HandleDefectRatesByHour(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		pivot, err := h.DashboardService.DefectRatesByHour(c.Context(), parseCriteria(c))
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		return basehdl.HandleSuccess(c, pivot)
	})
}

// HandleDefectRatesByLine trả về pivot lineNo -> moNo theo giờ.
// @Summary Tỷ lệ lỗi theo chuyền
// @Router /api/v1/dashboard/qc2/defect-rates-by-line [get]
func (h *Qc2DashboardHandler) HandleDefectRatesByLine(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		pivot, err := h.DashboardService.DefectRatesByLine(c.Context(), parseCriteria(c))
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		return basehdl.HandleSuccess(c, pivot)
	})
}

// HandleFilterOptions trả về các danh sách distinct cho dropdown filter.
// @Summary Tùy chọn filter QC2
// @Router /api/v1/dashboard/qc2/filter-options [get]
func (h *Qc2DashboardHandler) HandleFilterOptions(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		opts, err := h.DashboardService.FilterOptions(c.Context(), parseCriteria(c))
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		return basehdl.HandleSuccess(c, opts)
	})
}
