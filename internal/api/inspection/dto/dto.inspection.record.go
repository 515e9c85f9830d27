// Package inspdto - Input cho domain inspection.
package inspdto

import (
	inspmodels "garment_qms/internal/api/inspection/models"
)

// Qc2InspectionRecordCreateInput dữ liệu capture một bundle kiểm xong từ app QC
type Qc2InspectionRecordCreateInput struct {
	BundleRandomID string `json:"bundleRandomId" validate:"required"`
	MONo           string `json:"moNo" validate:"required"`
	LineNo         string `json:"lineNo"`
	Color          string `json:"color"`
	Size           string `json:"size"`
	Buyer          string `json:"buyer"`
	Department     string `json:"department"`
	Factory        string `json:"factory"`
	EmpID          string `json:"emp_id"`
	InspectionDate string `json:"inspectionDate" validate:"required"`
	InspectionTime string `json:"inspectionTime"`

	CheckedQty   int `json:"checkedQty" validate:"min=0"`
	TotalPass    int `json:"totalPass" validate:"min=0"`
	TotalRejects int `json:"totalRejects" validate:"min=0"`
	TotalRepair  int `json:"totalRepair" validate:"min=0"`
	DefectQty    int `json:"defectQty" validate:"min=0"`

	DefectArray []inspmodels.Qc2DefectEntry `json:"defectArray"`
	PrintArray  []inspmodels.Qc2PrintEntry  `json:"printArray"`
}

// Qc2InspectionRecordUpdateInput dữ liệu sửa một bản ghi kiểm hàng.
// Bản ghi bất biến về mặt nghiệp vụ, update chỉ dùng sửa sai sót nhập liệu.
type Qc2InspectionRecordUpdateInput struct {
	LineNo         string `json:"lineNo"`
	Color          string `json:"color"`
	Size           string `json:"size"`
	Buyer          string `json:"buyer"`
	Department     string `json:"department"`
	InspectionDate string `json:"inspectionDate"`
	InspectionTime string `json:"inspectionTime"`
}
