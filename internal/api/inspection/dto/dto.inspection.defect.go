package inspdto

// Qc2DefectCreateInput dữ liệu tạo một loại lỗi trong danh mục lỗi QC2
type Qc2DefectCreateInput struct {
	Code        string `json:"code" validate:"required"`
	ShortEng    string `json:"shortEng" validate:"required"`
	English     string `json:"english"`
	Khmer       string `json:"khmer"`
	Chinese     string `json:"chinese"`
	CategoryEng string `json:"categoryEnglish"`
	IsCommon    bool   `json:"isCommon"`
	StatusInUse bool   `json:"statusInUse"`
}
