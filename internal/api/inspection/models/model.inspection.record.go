// Package models - Qc2InspectionRecord thuộc domain inspection (qc2_inspection_pass_bundle).
// Mỗi document là một bundle đã kiểm xong, bất biến sau khi capture,
// là nguồn dữ liệu duy nhất cho các dashboard tổng hợp.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Qc2DefectEntry là một mục lỗi trong defectArray của bản ghi kiểm hàng
type Qc2DefectEntry struct {
	DefectName string `json:"defectName" bson:"defectName"` // Tên lỗi (free text, không phải enum đóng)
	TotalCount int    `json:"totalCount" bson:"totalCount"` // Số lần phát hiện lỗi này trong bundle
}

// Qc2PrintEntry là số liệu hiệu chỉnh theo lượt in/bóc tách bundle
type Qc2PrintEntry struct {
	TotalRejectGarmentVar int `json:"totalRejectGarment_Var" bson:"totalRejectGarment_Var"` // Lượng trừ khi tính bGradeQty
}

// Qc2InspectionRecord lưu kết quả kiểm QC2 của một bundle
type Qc2InspectionRecord struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                         // ID của bản ghi trong MongoDB
	BundleRandomID string             `json:"bundleRandomId" bson:"bundleRandomId" index:"unique"`       // Mã bundle, sinh khi capture, không trùng
	MONo           string             `json:"moNo" bson:"moNo" index:"single:1"`                         // Mã lệnh sản xuất (Manufacturing Order)
	LineNo         string             `json:"lineNo" bson:"lineNo" index:"single:1"`                     // Chuyền may
	Color          string             `json:"color" bson:"color"`                                        // Màu
	Size           string             `json:"size" bson:"size"`                                          // Size
	Buyer          string             `json:"buyer" bson:"buyer" index:"single:1" default:"N/A"`         // Khách hàng, mặc định N/A khi capture không có
	Department     string             `json:"department" bson:"department"`                              // Bộ phận
	Factory        string             `json:"factory" bson:"factory"`                                    // Nhà máy
	EmpID          string             `json:"emp_id" bson:"emp_id"`                                      // Mã nhân viên QC
	InspectionDate string             `json:"inspectionDate" bson:"inspectionDate" index:"single:1"`     // Ngày kiểm, MM/DD/YYYY hoặc YYYY-MM-DD
	InspectionTime string             `json:"inspectionTime" bson:"inspectionTime"`                      // Giờ kiểm HH:MM:SS

	CheckedQty   int `json:"checkedQty" bson:"checkedQty"`     // Số lượng đã kiểm
	TotalPass    int `json:"totalPass" bson:"totalPass"`       // Số lượng đạt
	TotalRejects int `json:"totalRejects" bson:"totalRejects"` // Số lượng loại
	TotalRepair  int `json:"totalRepair" bson:"totalRepair"`   // Số lượng sửa
	DefectQty    int `json:"defectQty" bson:"defectQty"`       // Tổng số lỗi phát hiện

	DefectArray []Qc2DefectEntry `json:"defectArray" bson:"defectArray"` // Danh sách lỗi, có thể vắng mặt
	PrintArray  []Qc2PrintEntry  `json:"printArray" bson:"printArray"`   // Số liệu hiệu chỉnh theo lượt in

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
