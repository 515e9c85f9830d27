package aggregate

import (
	"sort"
	"strings"
	"time"
)

// Facet composer: chạy nhiều tổng hợp độc lập trên cùng một tập bản ghi
// đã lọc và ghép vào một response. Facet không tìm thấy nhóm nào trả về
// list rỗng / object zero, không bao giờ thiếu key trong response.
// Các tỷ lệ trong facet dùng quy ước phần trăm 0-100.

// DefectTotal là một dòng trong bảng top lỗi
type DefectTotal struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"` // count / tổng checkedQty * 100
}

// PerfRow là một dòng hiệu suất theo chuyền hoặc theo khách hàng
type PerfRow struct {
	Key        string  `json:"key"`
	CheckedQty int     `json:"checkedQty"`
	DefectQty  int     `json:"defectQty"`
	DefectRate float64 `json:"defectRate"` // phần trăm
}

// TrendPoint là một điểm trên đường xu hướng theo ngày/tuần/tháng
type TrendPoint struct {
	Label      string  `json:"label"`
	CheckedQty int     `json:"checkedQty"`
	DefectQty  int     `json:"defectQty"`
	Rate       float64 `json:"rate"` // phần trăm
}

// DefectTrend là xu hướng của một tên lỗi qua các bucket thời gian
type DefectTrend struct {
	Name   string       `json:"name"`
	Points []TrendPoint `json:"points"`
}

// FilterOptions là các danh sách distinct dùng đổ dropdown trên UI
type FilterOptions struct {
	Factories   []string `json:"factories"`
	MONos       []string `json:"moNos"`
	Buyers      []string `json:"buyers"`
	LineNos     []string `json:"lineNos"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Departments []string `json:"departments"`
}

// TrendGranularity chọn bucket thời gian cho các facet xu hướng
type TrendGranularity int

const (
	TrendDaily TrendGranularity = iota
	TrendWeekly
	TrendMonthly
)

// monthNames là nhãn tháng ngắn cho xu hướng theo tháng
var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FacetResult là response ghép của một dashboard facet.
// Mọi key luôn có mặt, kể cả khi không có bản ghi nào khớp.
type FacetResult struct {
	MainData            *PerfRow       `json:"mainData"`
	TopDefects          []DefectTotal  `json:"topDefects"`
	LinePerformance     []PerfRow      `json:"linePerformance"`
	BuyerPerformance    []PerfRow      `json:"buyerPerformance"`
	Trend               []TrendPoint   `json:"trend"`
	IndividualTrend     []DefectTrend  `json:"individualDefectTrend"`
	UniqueDefectNames   []string       `json:"uniqueDefectNames"`
	OverallTotalChecked int            `json:"overallTotalChecked"`
	FilterOptions       *FilterOptions `json:"filterOptions"`
}

// TopDefects gom tổng theo tên lỗi trên tập bản ghi khớp filter,
// sort theo count giảm dần, hòa thì giữ thứ tự gặp đầu tiên (stable).
// n <= 0 nghĩa là không cắt.
func TopDefects(records []InspectionRecord, c Criteria, n int) []DefectTotal {
	pred := c.Predicate()

	totalChecked := 0
	index := map[string]int{}
	totals := []DefectTotal{}

	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		totalChecked += r.CheckedQty
		for _, d := range r.DefectArray {
			name := displayDefectName(d.DefectName)
			if idx, ok := index[name]; ok {
				totals[idx].Count += d.TotalCount
				continue
			}
			index[name] = len(totals)
			totals = append(totals, DefectTotal{Name: name, Count: d.TotalCount})
		}
	}

	for i := range totals {
		totals[i].Rate = safeDiv(totals[i].Count, totalChecked) * 100
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Count > totals[j].Count
	})

	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// displayDefectName thay tên lỗi rỗng bằng placeholder "No Defect"
func displayDefectName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "No Defect"
	}
	return name
}

// performanceBy gom hiệu suất theo một trường khóa, sort theo
// defectRate giảm dần (stable)
func performanceBy(records []InspectionRecord, c Criteria, keyOf func(*InspectionRecord) string) []PerfRow {
	pred := c.Predicate()

	index := map[string]int{}
	rows := []PerfRow{}

	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		key := keyOf(r)
		idx, ok := index[key]
		if !ok {
			idx = len(rows)
			index[key] = idx
			rows = append(rows, PerfRow{Key: key})
		}
		rows[idx].CheckedQty += r.CheckedQty
		rows[idx].DefectQty += r.DefectQty
	}

	for i := range rows {
		rows[i].DefectRate = safeDiv(rows[i].DefectQty, rows[i].CheckedQty) * 100
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DefectRate > rows[j].DefectRate
	})

	return rows
}

// LinePerformance gom hiệu suất theo chuyền
func LinePerformance(records []InspectionRecord, c Criteria) []PerfRow {
	return performanceBy(records, c, func(r *InspectionRecord) string { return r.LineNo })
}

// BuyerPerformance gom hiệu suất theo khách hàng
func BuyerPerformance(records []InspectionRecord, c Criteria) []PerfRow {
	return performanceBy(records, c, func(r *InspectionRecord) string { return r.Buyer })
}

// trendKey trả về key sort được và nhãn hiển thị của một bản ghi
// theo granularity. ok=false khi ngày không parse được (bản ghi bị loại
// khỏi facet xu hướng).
func trendKey(r *InspectionRecord, g TrendGranularity) (string, string, bool) {
	date, ok := r.Date()
	if !ok {
		return "", "", false
	}
	switch g {
	case TrendWeekly:
		start := WeekStart(date)
		return start.Format("2006-01-02"), WeekLabel(start), true
	case TrendMonthly:
		key := date.Format("2006-01")
		return key, monthNames[int(date.Month())-1], true
	default:
		key := date.Format("2006-01-02")
		return key, key, true
	}
}

// monthlyLabels dựng nhãn hiển thị cho các key tháng của một trục thời gian.
// Nhãn mặc định là tên tháng ngắn; khi trục trải qua nhiều năm thì kèm năm
// để hai tháng cùng tên ở hai năm khác nhau không trùng nhãn.
func monthlyLabels(keys []string) map[string]string {
	years := map[string]bool{}
	for _, key := range keys {
		if len(key) >= 4 {
			years[key[:4]] = true
		}
	}
	multiYear := len(years) > 1

	labels := map[string]string{}
	for _, key := range keys {
		t, err := time.Parse("2006-01", key)
		if err != nil {
			labels[key] = key
			continue
		}
		label := monthNames[int(t.Month())-1]
		if multiYear {
			label += " " + t.Format("2006")
		}
		labels[key] = label
	}
	return labels
}

// Trend gom xu hướng checked/defect theo bucket thời gian, sort tăng dần
// theo thời gian
func Trend(records []InspectionRecord, c Criteria, g TrendGranularity) []TrendPoint {
	pred := c.Predicate()

	type trendAccum struct {
		point TrendPoint
		key   string
	}
	index := map[string]int{}
	accums := []trendAccum{}

	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		key, label, ok := trendKey(r, g)
		if !ok {
			continue
		}
		idx, exists := index[key]
		if !exists {
			idx = len(accums)
			index[key] = idx
			accums = append(accums, trendAccum{key: key, point: TrendPoint{Label: label}})
		}
		accums[idx].point.CheckedQty += r.CheckedQty
		accums[idx].point.DefectQty += r.DefectQty
	}

	sort.SliceStable(accums, func(i, j int) bool {
		return accums[i].key < accums[j].key
	})

	// Nhãn tháng dựng lại trên toàn trục để kèm năm khi trục nhiều năm
	var monthLabelByKey map[string]string
	if g == TrendMonthly {
		keys := make([]string, 0, len(accums))
		for _, a := range accums {
			keys = append(keys, a.key)
		}
		monthLabelByKey = monthlyLabels(keys)
	}

	points := make([]TrendPoint, 0, len(accums))
	for _, a := range accums {
		if monthLabelByKey != nil {
			a.point.Label = monthLabelByKey[a.key]
		}
		a.point.Rate = safeDiv(a.point.DefectQty, a.point.CheckedQty) * 100
		points = append(points, a.point)
	}
	return points
}

// IndividualDefectTrend gom xu hướng riêng từng tên lỗi theo bucket thời gian.
// Rate của mỗi điểm tính trên checkedQty của bucket thời gian đó.
func IndividualDefectTrend(records []InspectionRecord, c Criteria, g TrendGranularity) []DefectTrend {
	pred := c.Predicate()

	// checkedQty theo bucket thời gian để tính rate từng điểm
	checkedByKey := map[string]int{}
	labelByKey := map[string]string{}

	type pointAccum struct {
		counts map[string]int // key thời gian -> count
	}
	nameIndex := map[string]int{}
	names := []string{}
	accums := []pointAccum{}

	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		key, label, ok := trendKey(r, g)
		if !ok {
			continue
		}
		checkedByKey[key] += r.CheckedQty
		labelByKey[key] = label

		for _, d := range r.DefectArray {
			name := displayDefectName(d.DefectName)
			idx, exists := nameIndex[name]
			if !exists {
				idx = len(names)
				nameIndex[name] = idx
				names = append(names, name)
				accums = append(accums, pointAccum{counts: map[string]int{}})
			}
			accums[idx].counts[key] += d.TotalCount
		}
	}

	// Trục thời gian chung, sort tăng dần
	keys := make([]string, 0, len(checkedByKey))
	for key := range checkedByKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Nhãn tháng dựng lại trên toàn trục để kèm năm khi trục nhiều năm
	if g == TrendMonthly {
		for key, label := range monthlyLabels(keys) {
			labelByKey[key] = label
		}
	}

	trends := make([]DefectTrend, 0, len(names))
	for idx, name := range names {
		points := make([]TrendPoint, 0, len(keys))
		for _, key := range keys {
			count := accums[idx].counts[key]
			points = append(points, TrendPoint{
				Label:      labelByKey[key],
				CheckedQty: checkedByKey[key],
				DefectQty:  count,
				Rate:       safeDiv(count, checkedByKey[key]) * 100,
			})
		}
		trends = append(trends, DefectTrend{Name: name, Points: points})
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Name < trends[j].Name
	})
	return trends
}

// UniqueDefectNames trả về danh sách tên lỗi distinct đã sort
func UniqueDefectNames(records []InspectionRecord, c Criteria) []string {
	pred := c.Predicate()

	seen := map[string]bool{}
	names := []string{}
	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		for _, d := range r.DefectArray {
			name := displayDefectName(d.DefectName)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// distinctSorted gom các giá trị distinct khác rỗng của một trường, sort tăng dần
func distinctSorted(records []InspectionRecord, pred func(*InspectionRecord) bool, valueOf func(*InspectionRecord) string) []string {
	seen := map[string]bool{}
	values := []string{}
	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		v := valueOf(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// BuildFilterOptions gom các danh sách distinct cho dropdown trên UI
func BuildFilterOptions(records []InspectionRecord, c Criteria) *FilterOptions {
	pred := c.Predicate()
	return &FilterOptions{
		Factories:   distinctSorted(records, pred, func(r *InspectionRecord) string { return r.Factory }),
		MONos:       distinctSorted(records, pred, func(r *InspectionRecord) string { return r.MONo }),
		Buyers:      distinctSorted(records, pred, func(r *InspectionRecord) string { return r.Buyer }),
		LineNos:     distinctSorted(records, pred, func(r *InspectionRecord) string { return r.LineNo }),
		Colors:      distinctSorted(records, pred, func(r *InspectionRecord) string { return r.Color }),
		Sizes:       distinctSorted(records, pred, func(r *InspectionRecord) string { return r.Size }),
		Departments: distinctSorted(records, pred, func(r *InspectionRecord) string { return r.Department }),
	}
}

// Facets chạy toàn bộ các facet độc lập trên cùng tập bản ghi đã lọc
// và ghép vào một response. Mọi facet ghi vào key riêng nên thứ tự chạy
// không ảnh hưởng kết quả.
func Facets(records []InspectionRecord, c Criteria, topN int, g TrendGranularity) *FacetResult {
	summary := Summarize(records, c)

	main := &PerfRow{
		Key:        "overall",
		CheckedQty: summary.CheckedQty,
		DefectQty:  summary.DefectQty,
		DefectRate: safeDiv(summary.DefectQty, summary.CheckedQty) * 100,
	}

	return &FacetResult{
		MainData:            main,
		TopDefects:          TopDefects(records, c, topN),
		LinePerformance:     LinePerformance(records, c),
		BuyerPerformance:    BuyerPerformance(records, c),
		Trend:               Trend(records, c, g),
		IndividualTrend:     IndividualDefectTrend(records, c, g),
		UniqueDefectNames:   UniqueDefectNames(records, c),
		OverallTotalChecked: summary.CheckedQty,
		FilterOptions:       BuildFilterOptions(records, c),
	}
}
