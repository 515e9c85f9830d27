// Package dashdto - View model trả về cho các dashboard QC2.
// Quy ước tỷ lệ giữ nguyên theo từng endpoint: summary trả phân số 0-1
// (defectRate, defectRatio), passRate và các breakdown theo giờ trả phần trăm 0-100.
package dashdto

import (
	"garment_qms/internal/aggregate"
)

// Qc2SummaryView là dòng tổng hợp không gom nhóm.
// Frontend hiển thị checkedQty dưới tên totalGarments, giữ nguyên tên này.
type Qc2SummaryView struct {
	CheckedQty       int                     `json:"totalGarments"`
	TotalPass        int                     `json:"totalPass"`
	TotalRejects     int                     `json:"totalRejects"`
	TotalRepair      int                     `json:"totalRepair"`
	DefectQty        int                     `json:"defectsQty"`
	TotalBundles     int                     `json:"totalBundles"`
	DefectiveBundles int                     `json:"defectiveBundles"`
	BGradeQty        int                     `json:"bGradeQty"`
	DefectRate       float64                 `json:"defectRate"`  // phân số 0-1
	DefectRatio      float64                 `json:"defectRatio"` // phân số 0-1
	PassRate         float64                 `json:"passRate"`    // phần trăm 0-100
	DefectArray      []aggregate.DefectCount `json:"defectArray"`
}

// Qc2GroupedRowView là một dòng kết quả gom nhóm
type Qc2GroupedRowView struct {
	WeekInfo *aggregate.WeekInfo `json:"weekInfo,omitempty"` // chỉ có khi gom theo tuần
	Date     string              `json:"inspectionDate,omitempty"`
	LineNo   string              `json:"lineNo"`
	MONo     string              `json:"moNo"`
	Buyer    string              `json:"buyer"`
	Color    string              `json:"color"`
	Size     string              `json:"size"`

	CheckedQty       int                     `json:"checkedQty"`
	TotalPass        int                     `json:"totalPass"`
	TotalRejects     int                     `json:"totalRejects"`
	DefectQty        int                     `json:"defectsQty"`
	TotalBundles     int                     `json:"totalBundles"`
	DefectiveBundles int                     `json:"defectiveBundles"`
	DefectRate       float64                 `json:"defectRate"`  // phân số 0-1
	DefectRatio      float64                 `json:"defectRatio"` // phân số 0-1
	PassRate         float64                 `json:"passRate"`    // phần trăm 0-100
	DefectArray      []aggregate.DefectCount `json:"defectArray"`
}
