// Package router đăng ký các route thuộc domain subcon: báo cáo QC1 và dashboard ngày/tuần/tháng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "garment_qms/internal/api/router"
	subconhdl "garment_qms/internal/api/subcon/handler"
)

// Register đăng ký tất cả route subcon lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := subconhdl.NewSubconQc1ReportHandler()
	if err != nil {
		return fmt.Errorf("create subcon qc1 report handler: %w", err)
	}
	reportPrefix := "/subcon/qc1-report"
	r.RegisterCRUDRoutes(v1, reportPrefix, reportHandler, apirouter.ReadOnlyConfig)
	apirouter.RegisterRouteWithMiddleware(v1, reportPrefix, "POST", "/save", nil, reportHandler.HandleSaveReport)
	apirouter.RegisterRouteWithMiddleware(v1, reportPrefix, "PUT", "/update/:id", nil, reportHandler.HandleUpdateReport)
	apirouter.RegisterRouteWithMiddleware(v1, reportPrefix, "GET", "/find-existing", nil, reportHandler.HandleFindExisting)

	dashboardHandler, err := subconhdl.NewSubconDashboardHandler()
	if err != nil {
		return fmt.Errorf("create subcon dashboard handler: %w", err)
	}
	dashboardPrefix := "/subcon/dashboard"
	apirouter.RegisterRouteWithMiddleware(v1, dashboardPrefix, "GET", "/daily", nil, dashboardHandler.HandleDaily)
	apirouter.RegisterRouteWithMiddleware(v1, dashboardPrefix, "GET", "/weekly", nil, dashboardHandler.HandleWeekly)
	apirouter.RegisterRouteWithMiddleware(v1, dashboardPrefix, "GET", "/monthly", nil, dashboardHandler.HandleMonthly)

	return nil
}
