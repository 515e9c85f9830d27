package insphdl

import (
	"fmt"

	basehdl "garment_qms/internal/api/base/handler"
	inspdto "garment_qms/internal/api/inspection/dto"
	inspmodels "garment_qms/internal/api/inspection/models"
	inspsvc "garment_qms/internal/api/inspection/service"

	"github.com/gofiber/fiber/v3"
)

// Qc2DefectHandler xử lý các yêu cầu liên quan đến danh mục lỗi QC2
type Qc2DefectHandler struct {
	*basehdl.BaseHandler[inspmodels.Qc2Defect, inspdto.Qc2DefectCreateInput, inspdto.Qc2DefectCreateInput]
	DefectService *inspsvc.Qc2DefectService
}

// NewQc2DefectHandler khởi tạo Qc2DefectHandler mới
func NewQc2DefectHandler() (*Qc2DefectHandler, error) {
	service, err := inspsvc.NewQc2DefectService()
	if err != nil {
		return nil, fmt.Errorf("failed to create qc2 defect service: %v", err)
	}
	hdl := &Qc2DefectHandler{DefectService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[inspmodels.Qc2Defect, inspdto.Qc2DefectCreateInput, inspdto.Qc2DefectCreateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleFindInUse trả về danh mục lỗi còn sử dụng cho app kiểm hàng,
// lỗi hay gặp đứng trước.
// @Summary Danh mục lỗi đang dùng
// @Router /api/v1/qc2-defect/in-use [get]
func (h *Qc2DefectHandler) HandleFindInUse(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		defects, err := h.DefectService.FindInUse(c.Context())
		h.HandleResponse(c, defects, err)
		return nil
	})
}
