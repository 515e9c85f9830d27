// Package subcondto - Input cho domain subcon.
package subcondto

import (
	subconmodels "garment_qms/internal/api/subcon/models"
)

// SubconQc1ReportCreateInput dữ liệu lưu một báo cáo QC1 từ app kiểm hàng.
// ReportID và Buyer do server sinh, client không gửi.
type SubconQc1ReportCreateInput struct {
	InspectionDate string `json:"inspectionDate" validate:"required"`
	Factory        string `json:"factory" validate:"required"`
	LineNo         string `json:"lineNo" validate:"required"`
	MONo           string `json:"moNo" validate:"required"`
	Color          string `json:"color"`

	CheckedQty     int                             `json:"checkedQty" validate:"min=0"`
	TotalDefectQty int                             `json:"totalDefectQty" validate:"min=0"`
	DefectList     []subconmodels.SubconDefectItem `json:"defectList"`

	AqlResult string `json:"aqlResult"`
	Remarks   string `json:"remarks"`
}
