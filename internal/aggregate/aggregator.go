package aggregate

import "sort"

// Bucket là bộ tích lũy cho một GroupKey trong một request.
// Các tổng chạy được cộng dồn khi quét bản ghi; các chỉ số tỷ lệ
// luôn tính lại từ tổng, không bao giờ lưu.
type Bucket struct {
	Key GroupKey

	CheckedQty       int
	TotalPass        int
	TotalRejects     int
	TotalRepair      int
	DefectQty        int
	TotalBundles     int
	DefectiveBundles int // số bundle có totalRepair > 0
	PrintRejectVar   int // tổng printArray.totalRejectGarment_Var, dùng cho bGradeQty

	// Map tên lỗi -> tổng số, giữ thứ tự gặp đầu tiên để sort ổn định
	defectIndex map[string]int
	Defects     []DefectCount

	// Giá trị first-seen cho các chiều mô tả không được gom,
	// để response vẫn hiển thị được giá trị đại diện
	LineNo string
	MONo   string
	Buyer  string
	Color  string
	Size   string
	Date   string
}

// newBucket khởi tạo bucket với giá trị first-seen từ bản ghi đầu tiên
func newBucket(key GroupKey, r *InspectionRecord) *Bucket {
	return &Bucket{
		Key:         key,
		defectIndex: map[string]int{},
		LineNo:      r.LineNo,
		MONo:        r.MONo,
		Buyer:       r.Buyer,
		Color:       r.Color,
		Size:        r.Size,
		Date:        r.DateKey(),
	}
}

// add cộng dồn một bản ghi vào bucket
func (b *Bucket) add(r *InspectionRecord) {
	b.CheckedQty += r.CheckedQty
	b.TotalPass += r.TotalPass
	b.TotalRejects += r.TotalRejects
	b.TotalRepair += r.TotalRepair
	b.DefectQty += r.DefectQty
	b.TotalBundles++
	if r.TotalRepair > 0 {
		b.DefectiveBundles++
	}
	for _, p := range r.PrintArray {
		b.PrintRejectVar += p.TotalRejectGarmentVar
	}
	// defectArray vắng mặt/null là danh sách rỗng, không phải lỗi.
	// Tên trùng được cộng dồn, cả giữa các bản ghi lẫn trong cùng một mảng.
	for _, d := range r.DefectArray {
		b.addDefect(d.DefectName, d.TotalCount)
	}
}

// addDefect cộng count vào tên lỗi, giữ thứ tự gặp đầu tiên
func (b *Bucket) addDefect(name string, count int) {
	if idx, ok := b.defectIndex[name]; ok {
		b.Defects[idx].TotalCount += count
		return
	}
	b.defectIndex[name] = len(b.Defects)
	b.Defects = append(b.Defects, DefectCount{DefectName: name, TotalCount: count})
}

// safeDiv chia có guard: mẫu số 0 trả về 0, không bao giờ NaN/Infinity
func safeDiv(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

// DefectRate trả về defectQty / checkedQty dưới dạng phân số 0-1
func (b *Bucket) DefectRate() float64 {
	return safeDiv(b.DefectQty, b.CheckedQty)
}

// DefectRatio trả về totalRejects / checkedQty dưới dạng phân số 0-1
func (b *Bucket) DefectRatio() float64 {
	return safeDiv(b.TotalRejects, b.CheckedQty)
}

// PassRate trả về totalPass / checkedQty * 100 dưới dạng phần trăm 0-100
func (b *Bucket) PassRate() float64 {
	return safeDiv(b.TotalPass, b.CheckedQty) * 100
}

// BGradeQty là totalRejects trừ tổng hiệu chỉnh totalRejectGarment_Var.
// Có thể âm khi hiệu chỉnh vượt quá số reject ghi nhận, không clamp về 0.
// Chỉ dùng trong summary không gom nhóm, không nhầm với defectQty.
func (b *Bucket) BGradeQty() int {
	return b.TotalRejects - b.PrintRejectVar
}

// DefectList trả về danh sách lỗi của bucket, không bao giờ nil
func (b *Bucket) DefectList() []DefectCount {
	if b.Defects == nil {
		return []DefectCount{}
	}
	return b.Defects
}

// Aggregate quét một lượt các bản ghi khớp filter và trả về một bucket
// cho mỗi GroupKey, sort theo thứ tự chiều cố định cho dễ đọc.
// Khi có gom nhóm, bản ghi thiếu inspectionDate bị loại trước khi gom.
func Aggregate(records []InspectionRecord, c Criteria) []*Bucket {
	pred := c.Predicate()
	kb := NewKeyBuilder(c)

	buckets := map[GroupKey]*Bucket{}
	order := []*Bucket{}

	for i := range records {
		r := &records[i]
		key, ok := kb.Key(r)
		if !ok {
			continue
		}
		if !pred(r) {
			continue
		}

		bucket, exists := buckets[key]
		if !exists {
			bucket = newBucket(key, r)
			buckets[key] = bucket
			order = append(order, bucket)
		}
		bucket.add(r)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Key.less(order[j].Key)
	})

	return order
}

// Summarize gom toàn bộ bản ghi khớp filter vào một bucket duy nhất
// (summary không gom nhóm). Không có bản ghi khớp vẫn trả về bucket zero,
// để endpoint luôn trả object đủ trường.
func Summarize(records []InspectionRecord, c Criteria) *Bucket {
	pred := c.Predicate()

	summary := &Bucket{defectIndex: map[string]int{}}
	first := true
	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		if first {
			summary.LineNo = r.LineNo
			summary.MONo = r.MONo
			summary.Buyer = r.Buyer
			summary.Color = r.Color
			summary.Size = r.Size
			summary.Date = r.DateKey()
			first = false
		}
		summary.add(r)
	}

	return summary
}
