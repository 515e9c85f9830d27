// Package models - Qc2Defect thuộc domain inspection (qc2_defects).
// Danh mục lỗi chuẩn dùng đổ dropdown trên app kiểm hàng, tên hiển thị đa ngôn ngữ.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Qc2Defect lưu một loại lỗi trong danh mục lỗi QC2
type Qc2Defect struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`             // ID của lỗi trong MongoDB
	Code        string             `json:"code" bson:"code" index:"unique"`               // Mã lỗi nội bộ
	ShortEng    string             `json:"shortEng" bson:"shortEng" index:"text"`         // Tên tiếng Anh ngắn (hiển thị trên dashboard)
	English     string             `json:"english" bson:"english"`                        // Tên tiếng Anh đầy đủ
	Khmer       string             `json:"khmer" bson:"khmer"`                            // Tên tiếng Khmer
	Chinese     string             `json:"chinese" bson:"chinese"`                        // Tên tiếng Trung
	CategoryEng string             `json:"categoryEnglish" bson:"categoryEnglish"`        // Nhóm lỗi
	IsCommon    bool               `json:"isCommon" bson:"isCommon" default:"false"`      // Lỗi hay gặp, ưu tiên hiển thị đầu danh sách
	StatusInUse bool               `json:"statusInUse" bson:"statusInUse" default:"true"` // Còn sử dụng hay không

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
