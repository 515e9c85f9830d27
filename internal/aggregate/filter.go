package aggregate

import (
	"strings"
)

// Criteria là bộ lọc của một request báo cáo, dựng từ query params.
// Tham số vắng mặt nghĩa là "không ràng buộc", không phải "trường phải rỗng".
type Criteria struct {
	// Trường free-text: khớp substring không phân biệt hoa thường.
	// Buyer khớp literal, không bao giờ được diễn giải như regex.
	MONo  string
	EmpID string
	Buyer string

	// Trường khớp chính xác: so sánh bằng sau khi trim, phân biệt hoa thường.
	// Input toàn whitespace coi như không cung cấp.
	Color      string
	Size       string
	Department string
	LineNo     string
	Factory    string

	// Khoảng ngày bao gồm hai đầu, so trên inspectionDate đã parse
	StartDate string
	EndDate   string

	// Cờ gom nhóm. Week và Date loại trừ lẫn nhau, không bao giờ kết hợp
	// trong một request.
	GroupByWeek  bool
	GroupByDate  bool
	GroupByLine  bool
	GroupByMO    bool
	GroupByBuyer bool
	GroupByColor bool
	GroupBySize  bool
}

// HasGrouping cho biết có ít nhất một chiều gom nhóm được bật không
func (c Criteria) HasGrouping() bool {
	return c.GroupByWeek || c.GroupByDate || c.GroupByLine || c.GroupByMO ||
		c.GroupByBuyer || c.GroupByColor || c.GroupBySize
}

// containsFold kiểm tra needle có là substring của haystack không,
// không phân biệt hoa thường. Primitive substring thuần, không dùng regex,
// nên metacharacter trong needle luôn khớp literal.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// exactProvided trả về giá trị đã trim và cờ "có cung cấp hay không"
// cho trường khớp chính xác
func exactProvided(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// Predicate dựng hàm lọc Record -> bool từ criteria.
// Không bao giờ raise lỗi: tham số ngày không parse được coi như vắng mặt,
// bản ghi có ngày sai định dạng bị loại khi có ràng buộc ngày.
func (c Criteria) Predicate() func(*InspectionRecord) bool {
	moNo := strings.TrimSpace(c.MONo)
	empID := strings.TrimSpace(c.EmpID)
	buyer := strings.TrimSpace(c.Buyer)

	color, hasColor := exactProvided(c.Color)
	size, hasSize := exactProvided(c.Size)
	department, hasDepartment := exactProvided(c.Department)
	lineNo, hasLineNo := exactProvided(c.LineNo)
	factory, hasFactory := exactProvided(c.Factory)

	// Tham số ngày sai định dạng: ràng buộc không được áp dụng
	startDate, hasStart := ParseRecordDate(c.StartDate)
	endDate, hasEnd := ParseRecordDate(c.EndDate)

	return func(r *InspectionRecord) bool {
		if moNo != "" && !containsFold(r.MONo, moNo) {
			return false
		}
		if empID != "" && !containsFold(r.EmpID, empID) {
			return false
		}
		if buyer != "" && !containsFold(r.Buyer, buyer) {
			return false
		}

		if hasColor && strings.TrimSpace(r.Color) != color {
			return false
		}
		if hasSize && strings.TrimSpace(r.Size) != size {
			return false
		}
		if hasDepartment && strings.TrimSpace(r.Department) != department {
			return false
		}
		if hasLineNo && strings.TrimSpace(r.LineNo) != lineNo {
			return false
		}
		if hasFactory && strings.TrimSpace(r.Factory) != factory {
			return false
		}

		if hasStart || hasEnd {
			recDate, ok := r.Date()
			if !ok {
				// Ngày bản ghi sai định dạng thì loại, không throw
				return false
			}
			if hasStart && recDate.Before(startDate) {
				return false
			}
			if hasEnd && recDate.After(endDate) {
				return false
			}
		}

		return true
	}
}

// FilterRecords áp predicate lên danh sách bản ghi, trả về các bản ghi khớp
func FilterRecords(records []InspectionRecord, c Criteria) []InspectionRecord {
	pred := c.Predicate()
	matched := make([]InspectionRecord, 0, len(records))
	for i := range records {
		if pred(&records[i]) {
			matched = append(matched, records[i])
		}
	}
	return matched
}
