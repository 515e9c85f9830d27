// Package router đăng ký các route thuộc domain inspection: bản ghi kiểm hàng QC2 và danh mục lỗi.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	insphdl "garment_qms/internal/api/inspection/handler"
	apirouter "garment_qms/internal/api/router"
)

// Register đăng ký tất cả route inspection lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	recordHandler, err := insphdl.NewQc2InspectionRecordHandler()
	if err != nil {
		return fmt.Errorf("create qc2 inspection record handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/qc2-inspection", recordHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/qc2-inspection", "POST", "/capture", nil, recordHandler.HandleCaptureBundle)

	defectHandler, err := insphdl.NewQc2DefectHandler()
	if err != nil {
		return fmt.Errorf("create qc2 defect handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/qc2-defect", defectHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/qc2-defect", "GET", "/in-use", nil, defectHandler.HandleFindInUse)

	return nil
}
