// Package router đăng ký các route thuộc domain dashboard: tổng hợp QC2 theo filter, nhóm, giờ và chuyền.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashhdl "garment_qms/internal/api/dashboard/handler"
	apirouter "garment_qms/internal/api/router"
)

// Register đăng ký tất cả route dashboard lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	qc2Handler, err := dashhdl.NewQc2DashboardHandler()
	if err != nil {
		return fmt.Errorf("create qc2 dashboard handler: %w", err)
	}

	prefix := "/dashboard/qc2"
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/summary", nil, qc2Handler.HandleSummary)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/summary-grouped", nil, qc2Handler.HandleSummaryGrouped)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/top-defects", nil, qc2Handler.HandleTopDefects)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/defect-rates-by-hour", nil, qc2Handler.HandleDefectRatesByHour)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/defect-rates-by-line", nil, qc2Handler.HandleDefectRatesByLine)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/filter-options", nil, qc2Handler.HandleFilterOptions)

	return nil
}
