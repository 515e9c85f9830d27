// Package subconhdl - Handler cho domain subcon.
package subconhdl

import (
	"fmt"

	basehdl "garment_qms/internal/api/base/handler"
	subcondto "garment_qms/internal/api/subcon/dto"
	subconmodels "garment_qms/internal/api/subcon/models"
	subconsvc "garment_qms/internal/api/subcon/service"
	"garment_qms/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubconQc1ReportHandler xử lý các yêu cầu liên quan đến báo cáo QC1 của nhà thầu phụ
type SubconQc1ReportHandler struct {
	*basehdl.BaseHandler[subconmodels.SubconSewingQc1Report, subcondto.SubconQc1ReportCreateInput, subcondto.SubconQc1ReportCreateInput]
	ReportService *subconsvc.SubconQc1ReportService
}

// NewSubconQc1ReportHandler khởi tạo SubconQc1ReportHandler mới
func NewSubconQc1ReportHandler() (*SubconQc1ReportHandler, error) {
	service, err := subconsvc.NewSubconQc1ReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subcon qc1 report service: %v", err)
	}
	hdl := &SubconQc1ReportHandler{ReportService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[subconmodels.SubconSewingQc1Report, subcondto.SubconQc1ReportCreateInput, subcondto.SubconQc1ReportCreateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleSaveReport lưu một báo cáo QC1 mới. ReportID và buyer do server sinh.
// @Summary Lưu báo cáo QC1
// @Router /api/v1/subcon/qc1-report/save [post]
func (h *SubconQc1ReportHandler) HandleSaveReport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input subcondto.SubconQc1ReportCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu báo cáo không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		report, err := h.ReportService.SaveReport(c.Context(), &input)
		h.HandleResponse(c, report, err)
		return nil
	})
}

// HandleUpdateReport cập nhật một báo cáo theo ID, buyer được tính lại từ mã MO.
// @Summary Cập nhật báo cáo QC1
// @Router /api/v1/subcon/qc1-report/update/{id} [put]
func (h *SubconQc1ReportHandler) HandleUpdateReport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"ID báo cáo không hợp lệ",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		var input subcondto.SubconQc1ReportCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu báo cáo không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		report, err := h.ReportService.UpdateReport(c.Context(), id, &input)
		h.HandleResponse(c, report, err)
		return nil
	})
}

// HandleFindExisting tìm báo cáo đã có của một tổ hợp (ngày, nhà máy, chuyền, MO, màu).
// Thiếu tham số nào trả về lỗi 400.
// @Summary Tìm báo cáo QC1 đã có
// @Router /api/v1/subcon/qc1-report/find-existing [get]
func (h *SubconQc1ReportHandler) HandleFindExisting(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		inspectionDate := c.Query("inspectionDate")
		factory := c.Query("factory")
		lineNo := c.Query("lineNo")
		moNo := c.Query("moNo")
		color := c.Query("color")

		if inspectionDate == "" || factory == "" || lineNo == "" || moNo == "" || color == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tham số tìm kiếm: cần đủ inspectionDate, factory, lineNo, moNo, color",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		report, err := h.ReportService.FindExisting(c.Context(), inspectionDate, factory, lineNo, moNo, color)
		h.HandleResponse(c, report, err)
		return nil
	})
}
