// Package insphdl - Handler cho domain inspection.
package insphdl

import (
	"fmt"

	basehdl "garment_qms/internal/api/base/handler"
	inspdto "garment_qms/internal/api/inspection/dto"
	inspmodels "garment_qms/internal/api/inspection/models"
	inspsvc "garment_qms/internal/api/inspection/service"
	"garment_qms/internal/common"

	"github.com/gofiber/fiber/v3"
)

// Qc2InspectionRecordHandler xử lý các yêu cầu liên quan đến bản ghi kiểm hàng QC2
type Qc2InspectionRecordHandler struct {
	*basehdl.BaseHandler[inspmodels.Qc2InspectionRecord, inspdto.Qc2InspectionRecordCreateInput, inspdto.Qc2InspectionRecordUpdateInput]
	RecordService *inspsvc.Qc2InspectionRecordService
}

// NewQc2InspectionRecordHandler khởi tạo Qc2InspectionRecordHandler mới
func NewQc2InspectionRecordHandler() (*Qc2InspectionRecordHandler, error) {
	service, err := inspsvc.NewQc2InspectionRecordService()
	if err != nil {
		return nil, fmt.Errorf("failed to create qc2 inspection record service: %v", err)
	}
	hdl := &Qc2InspectionRecordHandler{RecordService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[inspmodels.Qc2InspectionRecord, inspdto.Qc2InspectionRecordCreateInput, inspdto.Qc2InspectionRecordUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCaptureBundle ghi nhận một bundle kiểm xong từ app QC.
// Khác InsertOne chuẩn ở chỗ chặn trùng mã bundle trước khi ghi.
// @Summary Capture bundle kiểm xong
// @Router /api/v1/qc2-inspection/capture [post]
func (h *Qc2InspectionRecordHandler) HandleCaptureBundle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input inspdto.Qc2InspectionRecordCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu capture không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		exists, err := h.RecordService.IsBundleRandomIdExist(c.Context(), input.BundleRandomID)
		if err != nil {
			h.HandleResponse(c, nil, common.ConvertMongoError(err))
			return nil
		}
		if exists {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeDatabaseQuery, "Mã bundle đã tồn tại", common.StatusConflict, nil))
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		created, err := h.BaseService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, created, err)
		return nil
	})
}
