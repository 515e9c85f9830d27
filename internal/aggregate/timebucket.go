package aggregate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Hai chiến lược bucket theo thời gian độc lập:
// (a) tuần lịch bắt đầu thứ Hai, phân biệt bằng chính ngày bắt đầu tuần
// (không dùng số tuần vì số tuần trùng lặp giữa các năm);
// (b) giờ trong ngày parse từ chuỗi HH:MM:SS, với cửa sổ hiển thị cố định
// 07:00-21:00 được lấp đầy bằng placeholder zero.

// WeekStart trả về ngày thứ Hai gần nhất tại hoặc trước ngày cho trước
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	// time.Weekday: Sunday=0. Quy về Monday=0
	offset := (weekday + 6) % 7
	start := t.AddDate(0, 0, -offset)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekLabel trả về nhãn "<start> to <end>" định dạng YYYY-MM-DD,
// end = start + 6 ngày
func WeekLabel(start time.Time) string {
	end := start.AddDate(0, 0, 6)
	return start.Format("2006-01-02") + " to " + end.Format("2006-01-02")
}

// WeekInfo mô tả tuần của một dòng kết quả gom theo tuần
type WeekInfo struct {
	WeekNumber int    `json:"weekNumber"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// WeekInfoOf dựng WeekInfo từ ngày bắt đầu tuần
func WeekInfoOf(start time.Time) WeekInfo {
	_, week := start.ISOWeek()
	return WeekInfo{
		WeekNumber: week,
		StartDate:  start.Format("2006-01-02"),
		EndDate:    start.AddDate(0, 0, 6).Format("2006-01-02"),
	}
}

// ParseClock parse chuỗi HH:MM:SS thành giờ trong ngày.
// ok=false khi sai định dạng hoặc giờ ngoài [0,23], phút/giây ngoài [0,59];
// bản ghi như vậy bị loại khỏi bucket theo giờ (chỉ khỏi breakdown này,
// không ảnh hưởng các tổng hợp khác).
func ParseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	second, err := strconv.Atoi(parts[2])
	if err != nil || second < 0 || second > 59 {
		return 0, false
	}
	return hour, true
}

// HourLabel trả về nhãn hiển thị của một giờ: hour+1 zero-pad "HH:00".
// Quy ước relabel 1-based này là convention hiển thị có chủ đích,
// phải giữ nguyên.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour+1)
}

// DisplayHours trả về cửa sổ hiển thị cố định: các nhãn từ 07:00 đến 21:00,
// đúng 15 mục
func DisplayHours() []string {
	labels := make([]string, 0, 15)
	for h := 7; h <= 21; h++ {
		labels = append(labels, fmt.Sprintf("%02d:00", h))
	}
	return labels
}

// HourDefect là một dòng lỗi trong breakdown theo giờ.
// Rate = count / checkedQty của bucket * 100 (phần trăm).
type HourDefect struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"`
}

// HourCell là kết quả của một ô giờ sau densify.
// Ô thiếu dữ liệu được synthesize thành placeholder
// {rate:0, hasCheckedQty:false, checkedQty:0, defects:[]}
// để consumer không phải null-check.
type HourCell struct {
	Rate          float64      `json:"rate"`
	HasCheckedQty bool         `json:"hasCheckedQty"`
	CheckedQty    int          `json:"checkedQty"`
	DefectQty     int          `json:"defectQty"`
	Defects       []HourDefect `json:"defects"`
}

// emptyHourCell trả về placeholder cho ô giờ không có dữ liệu
func emptyHourCell() *HourCell {
	return &HourCell{
		Rate:          0,
		HasCheckedQty: false,
		CheckedQty:    0,
		DefectQty:     0,
		Defects:       []HourDefect{},
	}
}

// hourAccum tích lũy số liệu cho một ô giờ trước khi chốt thành HourCell
type hourAccum struct {
	checkedQty  int
	defectQty   int
	defectIndex map[string]int
	defects     []DefectCount
}

func newHourAccum() *hourAccum {
	return &hourAccum{defectIndex: map[string]int{}}
}

func (a *hourAccum) add(r *InspectionRecord) {
	a.checkedQty += r.CheckedQty
	a.defectQty += r.DefectQty
	for _, d := range r.DefectArray {
		name := d.DefectName
		if idx, ok := a.defectIndex[name]; ok {
			a.defects[idx].TotalCount += d.TotalCount
			continue
		}
		a.defectIndex[name] = len(a.defects)
		a.defects = append(a.defects, DefectCount{DefectName: name, TotalCount: d.TotalCount})
	}
}

// cell chốt accumulator thành HourCell.
// Tên lỗi rỗng hiển thị thành placeholder "No Defect", count vẫn được giữ.
func (a *hourAccum) cell() *HourCell {
	defects := make([]HourDefect, 0, len(a.defects))
	for _, d := range a.defects {
		name := d.DefectName
		if strings.TrimSpace(name) == "" {
			name = "No Defect"
		}
		defects = append(defects, HourDefect{
			Name:  name,
			Count: d.TotalCount,
			Rate:  safeDiv(d.TotalCount, a.checkedQty) * 100,
		})
	}
	return &HourCell{
		Rate:          safeDiv(a.defectQty, a.checkedQty) * 100,
		HasCheckedQty: a.checkedQty > 0,
		CheckedQty:    a.checkedQty,
		DefectQty:     a.defectQty,
		Defects:       defects,
	}
}

// Densify đảm bảo map ô giờ có đủ đúng 15 key 07:00..21:00,
// ô thiếu được lấp bằng placeholder zero
func Densify(cells map[string]*HourCell) map[string]*HourCell {
	if cells == nil {
		cells = map[string]*HourCell{}
	}
	for _, label := range DisplayHours() {
		if _, ok := cells[label]; !ok {
			cells[label] = emptyHourCell()
		}
	}
	return cells
}

// inDisplayWindow báo một nhãn giờ có thuộc cửa sổ hiển thị 07:00-21:00 không
func inDisplayWindow(label string) bool {
	for _, l := range DisplayHours() {
		if l == label {
			return true
		}
	}
	return false
}

// HourlyTotals gom các bản ghi khớp filter theo nhãn giờ hiển thị,
// kèm một ô tổng chung không chia theo giờ.
// Bản ghi có inspectionTime không hợp lệ bị loại khỏi breakdown này.
// Dòng tổng theo giờ chỉ chứa đúng 15 nhãn của cửa sổ hiển thị: nhãn ngoài
// cửa sổ không vào dòng tổng, nhưng bản ghi của nhãn đó vẫn vào ô tổng chung.
func HourlyTotals(records []InspectionRecord, c Criteria) (map[string]*HourCell, *HourCell) {
	pred := c.Predicate()

	accums := map[string]*hourAccum{}
	grand := newHourAccum()

	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		hour, ok := ParseClock(r.InspectionTime)
		if !ok {
			continue
		}
		label := HourLabel(hour)
		accum, exists := accums[label]
		if !exists {
			accum = newHourAccum()
			accums[label] = accum
		}
		accum.add(r)
		grand.add(r)
	}

	cells := map[string]*HourCell{}
	for label, accum := range accums {
		if !inDisplayWindow(label) {
			continue
		}
		cells[label] = accum.cell()
	}

	return Densify(cells), grand.cell()
}
