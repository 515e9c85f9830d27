package aggregate

import "strings"

// GroupKey là tuple thứ tự cố định của các chiều đang gom nhóm:
// [week, date, lineNo, moNo, buyer, color, size].
// Chiều không được gom để chuỗi rỗng. Hai bản ghi cùng nhóm khi và chỉ khi
// mọi chiều đang bật so sánh bằng (string equality).
type GroupKey struct {
	Week   string // ngày thứ Hai đầu tuần, YYYY-MM-DD
	Date   string // ngày kiểm đã chuẩn hóa, YYYY-MM-DD
	LineNo string
	MONo   string
	Buyer  string
	Color  string
	Size   string
}

// KeyBuilder dựng GroupKey cho từng bản ghi theo cờ gom nhóm của criteria
type KeyBuilder struct {
	criteria Criteria
	grouped  bool
}

// NewKeyBuilder tạo KeyBuilder từ criteria.
// Week và Date loại trừ lẫn nhau: nếu cả hai cùng bật thì Week thắng
// (đứng trước trong thứ tự chiều cố định).
func NewKeyBuilder(c Criteria) *KeyBuilder {
	if c.GroupByWeek {
		c.GroupByDate = false
	}
	return &KeyBuilder{
		criteria: c,
		grouped:  c.HasGrouping(),
	}
}

// Key trích GroupKey từ bản ghi.
// Trả về ok=false khi bản ghi phải bị loại trước khi gom nhóm:
// inspectionDate rỗng, hoặc không parse được khi đang gom theo tuần/ngày.
// Khi không có chiều gom nào, mọi bản ghi về chung một key rỗng.
func (b *KeyBuilder) Key(r *InspectionRecord) (GroupKey, bool) {
	var key GroupKey

	if !b.grouped {
		return key, true
	}

	// Bản ghi thiếu ngày kiểm không thể bucket tin cậy, loại trước khi gom
	if strings.TrimSpace(r.InspectionDate) == "" {
		return key, false
	}

	if b.criteria.GroupByWeek {
		date, ok := r.Date()
		if !ok {
			return key, false
		}
		key.Week = WeekStart(date).Format("2006-01-02")
	} else if b.criteria.GroupByDate {
		dateKey := r.DateKey()
		if dateKey == "" {
			return key, false
		}
		key.Date = dateKey
	}

	if b.criteria.GroupByLine {
		key.LineNo = r.LineNo
	}
	if b.criteria.GroupByMO {
		key.MONo = r.MONo
	}
	if b.criteria.GroupByBuyer {
		key.Buyer = r.Buyer
	}
	if b.criteria.GroupByColor {
		key.Color = r.Color
	}
	if b.criteria.GroupBySize {
		key.Size = r.Size
	}

	return key, true
}

// less so sánh hai key theo thứ tự chiều cố định, dùng để sort kết quả
// cho dễ đọc (thứ tự chỉ phục vụ hiển thị, không ảnh hưởng đúng sai của gom nhóm)
func (k GroupKey) less(other GroupKey) bool {
	if k.Week != other.Week {
		return k.Week < other.Week
	}
	if k.Date != other.Date {
		return k.Date < other.Date
	}
	if k.LineNo != other.LineNo {
		return k.LineNo < other.LineNo
	}
	if k.MONo != other.MONo {
		return k.MONo < other.MONo
	}
	if k.Buyer != other.Buyer {
		return k.Buyer < other.Buyer
	}
	if k.Color != other.Color {
		return k.Color < other.Color
	}
	return k.Size < other.Size
}
