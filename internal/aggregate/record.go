// Package aggregate là engine tổng hợp báo cáo QC chạy trong bộ nhớ.
// Engine không phụ thuộc storage: nhận []InspectionRecord từ collaborator
// fetch bên ngoài, lọc theo predicate, gom nhóm đa chiều và tính các chỉ số
// tỷ lệ lỗi. Mọi phép chia đều được guard: mẫu số 0 cho kết quả 0.
package aggregate

import (
	"strings"
	"time"
)

// DefectCount là một mục trong defectArray của bản ghi kiểm hàng.
// Tên lỗi là free text, không phải enum đóng.
type DefectCount struct {
	DefectName string `json:"defectName" bson:"defectName"`
	TotalCount int    `json:"totalCount" bson:"totalCount"`
}

// PrintEntry chứa số liệu hiệu chỉnh theo từng lượt in/bóc tách bundle.
// TotalRejectGarmentVar được trừ khỏi totalRejects khi tính bGradeQty.
type PrintEntry struct {
	TotalRejectGarmentVar int `json:"totalRejectGarment_Var" bson:"totalRejectGarment_Var"`
}

// InspectionRecord là bản ghi kiểm hàng gốc, bất biến sau khi capture,
// một bản ghi cho mỗi bundle hoặc báo cáo QC.
type InspectionRecord struct {
	// Định danh
	BundleID   string `json:"bundleId" bson:"bundleId"`
	MONo       string `json:"moNo" bson:"moNo"`
	LineNo     string `json:"lineNo" bson:"lineNo"`
	Color      string `json:"color" bson:"color"`
	Size       string `json:"size" bson:"size"`
	Buyer      string `json:"buyer" bson:"buyer"`
	Department string `json:"department" bson:"department"`
	Factory    string `json:"factory" bson:"factory"`
	EmpID      string `json:"emp_id" bson:"emp_id"`

	// Thời gian (chuỗi, có thể sai định dạng, xử lý khoan dung)
	InspectionDate string `json:"inspectionDate" bson:"inspectionDate"` // MM/DD/YYYY hoặc YYYY-MM-DD
	InspectionTime string `json:"inspectionTime" bson:"inspectionTime"` // HH:MM:SS

	// Số lượng (không âm; totalPass + totalRejects <= checkedQty là kỳ vọng,
	// không được data layer enforce)
	CheckedQty   int `json:"checkedQty" bson:"checkedQty"`
	TotalPass    int `json:"totalPass" bson:"totalPass"`
	TotalRejects int `json:"totalRejects" bson:"totalRejects"`
	TotalRepair  int `json:"totalRepair" bson:"totalRepair"`
	DefectQty    int `json:"defectQty" bson:"defectQty"`

	DefectArray []DefectCount `json:"defectArray" bson:"defectArray"`
	PrintArray  []PrintEntry  `json:"printArray" bson:"printArray"`
}

// recordDateLayouts là các định dạng ngày được chấp nhận trong inspectionDate.
var recordDateLayouts = []string{
	"01/02/2006",
	"2006-01-02",
	"1/2/2006",
	time.RFC3339,
}

// ParseRecordDate parse chuỗi ngày của bản ghi thành ngày (bỏ phần giờ).
// Trả về ok=false khi chuỗi rỗng hoặc không khớp định dạng nào.
func ParseRecordDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// Date trả về ngày kiểm của bản ghi đã parse. ok=false khi không parse được.
func (r *InspectionRecord) Date() (time.Time, bool) {
	return ParseRecordDate(r.InspectionDate)
}

// DateKey trả về ngày kiểm đã chuẩn hóa YYYY-MM-DD, chuỗi rỗng nếu không parse được.
func (r *InspectionRecord) DateKey() string {
	t, ok := r.Date()
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}
