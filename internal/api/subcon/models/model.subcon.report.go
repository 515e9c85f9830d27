// Package models - SubconSewingQc1Report thuộc domain subcon (subcon_sewing_qc1_reports).
// Báo cáo QC1 hàng ngày của nhà thầu phụ, một báo cáo cho mỗi tổ hợp
// (ngày kiểm, nhà máy, chuyền, MO, màu).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubconDefectItem là một mục lỗi trong defectList của báo cáo QC1
type SubconDefectItem struct {
	DefectName string `json:"defectName" bson:"defectName"` // Tên lỗi
	Qty        int    `json:"qty" bson:"qty"`               // Số lượng lỗi
}

// SubconSewingQc1Report lưu một báo cáo QC1 của nhà thầu phụ
type SubconSewingQc1Report struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                     // ID của báo cáo trong MongoDB
	ReportID       string             `json:"reportID" bson:"reportID" index:"unique"`               // Mã báo cáo dạng SCyymmddNNNN, sinh phía server
	InspectionDate string             `json:"inspectionDate" bson:"inspectionDate" index:"single:1"` // Ngày kiểm YYYY-MM-DD
	Factory        string             `json:"factory" bson:"factory" index:"single:1"`               // Nhà máy thầu phụ
	LineNo         string             `json:"lineNo" bson:"lineNo"`                                  // Chuyền may
	MONo           string             `json:"moNo" bson:"moNo" index:"single:1"`                     // Mã lệnh sản xuất
	Color          string             `json:"color" bson:"color"`                                    // Màu
	Buyer          string             `json:"buyer" bson:"buyer"`                                    // Khách hàng, suy ra từ mã MO khi lưu

	CheckedQty     int                `json:"checkedQty" bson:"checkedQty"`         // Số lượng đã kiểm
	TotalDefectQty int                `json:"totalDefectQty" bson:"totalDefectQty"` // Tổng số lỗi
	DefectList     []SubconDefectItem `json:"defectList" bson:"defectList"`         // Danh sách lỗi

	AqlLevel  float64 `json:"aqlLevel" bson:"aqlLevel"`   // Mức AQL theo khách hàng
	AqlResult string  `json:"aqlResult" bson:"aqlResult"` // Kết quả AQL (Pass/Fail)
	Remarks   string  `json:"remarks" bson:"remarks"`     // Ghi chú của QC

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
