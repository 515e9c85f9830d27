// Package aggregate - Test bucket thời gian: tuần bắt đầu thứ Hai,
// validate HH:MM:SS, nhãn giờ 1-based và densify cửa sổ 07:00-21:00.
package aggregate

import (
	"testing"
	"time"
)

func TestWeekStart_LuonLaThuHai(t *testing.T) {
	// 2025-07-02 là thứ Tư, tuần bắt đầu 2025-06-30 (thứ Hai)
	wednesday := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)
	start := WeekStart(wednesday)
	if start.Format("2006-01-02") != "2025-06-30" {
		t.Errorf("tuần của 2025-07-02 phải bắt đầu 2025-06-30, được %s", start.Format("2006-01-02"))
	}

	// Chính thứ Hai thì giữ nguyên
	monday := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	if !WeekStart(monday).Equal(monday) {
		t.Error("thứ Hai phải là chính ngày bắt đầu tuần")
	}

	// Chủ Nhật thuộc tuần bắt đầu từ thứ Hai trước đó
	sunday := time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC)
	if WeekStart(sunday).Format("2006-01-02") != "2025-06-30" {
		t.Errorf("Chủ Nhật 2025-07-06 phải thuộc tuần 2025-06-30, được %s", WeekStart(sunday).Format("2006-01-02"))
	}
}

func TestWeekLabel_DinhDangStartToEnd(t *testing.T) {
	start := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	if got := WeekLabel(start); got != "2025-06-30 to 2025-07-06" {
		t.Errorf("nhãn tuần sai: %q", got)
	}
}

func TestParseClock_ValidateTungThanhPhan(t *testing.T) {
	cases := []struct {
		input string
		hour  int
		ok    bool
	}{
		{"08:15:00", 8, true},
		{"23:59:59", 23, true},
		{"00:00:00", 0, true},
		{"14:70:00", 0, false}, // phút ngoài [0,59]
		{"14:00:99", 0, false}, // giây ngoài [0,59]
		{"24:00:00", 0, false}, // giờ ngoài [0,23]
		{"14:00", 0, false},    // thiếu thành phần
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		hour, ok := ParseClock(tc.input)
		if ok != tc.ok || (ok && hour != tc.hour) {
			t.Errorf("ParseClock(%q) = (%d, %v), kỳ vọng (%d, %v)", tc.input, hour, ok, tc.hour, tc.ok)
		}
	}
}

func TestHourLabel_RelabelMotBased(t *testing.T) {
	if got := HourLabel(8); got != "09:00" {
		t.Errorf("giờ 8 phải hiển thị thành '09:00', được %q", got)
	}
	if got := HourLabel(13); got != "14:00" {
		t.Errorf("giờ 13 phải hiển thị thành '14:00', được %q", got)
	}
}

func TestDensify_DungMuoiLamKey(t *testing.T) {
	cells := Densify(map[string]*HourCell{})
	if len(cells) != 15 {
		t.Fatalf("cửa sổ densify phải có đúng 15 key, được %d", len(cells))
	}
	for _, label := range DisplayHours() {
		cell, ok := cells[label]
		if !ok {
			t.Fatalf("thiếu key %q", label)
		}
		if cell.Rate != 0 || cell.HasCheckedQty || cell.CheckedQty != 0 {
			t.Errorf("placeholder của %q phải là zero với hasCheckedQty=false", label)
		}
		if cell.Defects == nil {
			t.Errorf("defects của placeholder %q phải là list rỗng, không phải nil", label)
		}
	}
}

func TestDensify_GiuNguyenCellCoSan(t *testing.T) {
	existing := &HourCell{Rate: 5, HasCheckedQty: true, CheckedQty: 100, Defects: []HourDefect{}}
	cells := Densify(map[string]*HourCell{"09:00": existing})
	if cells["09:00"] != existing {
		t.Error("densify không được ghi đè cell có dữ liệu")
	}
	if len(cells) != 15 {
		t.Errorf("vẫn phải đủ 15 key, được %d", len(cells))
	}
}

func TestHourlyTotals_PhutKhongHopLeBiLoai(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionTime: "08:15:00", CheckedQty: 100, DefectQty: 5},
		{MONo: "MO-1", InspectionTime: "08:70:00", CheckedQty: 999, DefectQty: 999},
	}

	cells, grand := HourlyTotals(records, Criteria{})
	if grand.CheckedQty != 100 {
		t.Errorf("bản ghi phút 70 phải bị loại cả khỏi tổng chung, checked=%d", grand.CheckedQty)
	}

	// Giờ 8 hiển thị thành nhãn 09:00
	cell := cells["09:00"]
	if cell == nil || !cell.HasCheckedQty || cell.CheckedQty != 100 {
		t.Fatalf("ô 09:00 phải chứa bản ghi hợp lệ, được %+v", cell)
	}
	if !almostEqual(cell.Rate, 5) {
		t.Errorf("rate của ô phải là 5%%, được %v", cell.Rate)
	}
}

func TestHourlyTotals_TenLoiRongHienThiNoDefect(t *testing.T) {
	records := []InspectionRecord{
		{
			MONo: "MO-1", InspectionTime: "10:00:00", CheckedQty: 50, DefectQty: 4,
			DefectArray: []DefectCount{{DefectName: "", TotalCount: 4}},
		},
	}
	cells, _ := HourlyTotals(records, Criteria{})
	cell := cells["11:00"]
	if cell == nil || len(cell.Defects) != 1 {
		t.Fatalf("ô 11:00 phải có 1 mục lỗi, được %+v", cell)
	}
	if cell.Defects[0].Name != "No Defect" {
		t.Errorf("tên lỗi rỗng phải hiển thị 'No Defect', được %q", cell.Defects[0].Name)
	}
	if !almostEqual(cell.Defects[0].Rate, 8) {
		t.Errorf("rate của lỗi phải là 4/50*100 = 8, được %v", cell.Defects[0].Rate)
	}
}

func TestHourlyTotals_KhongCoDuLieuVanDu15Key(t *testing.T) {
	cells, grand := HourlyTotals(nil, Criteria{})
	if len(cells) != 15 {
		t.Errorf("không có dữ liệu vẫn phải trả đủ 15 key, được %d", len(cells))
	}
	if grand.Rate != 0 || grand.HasCheckedQty {
		t.Error("tổng chung không dữ liệu phải là zero")
	}
}

func TestHourlyTotals_NhanNgoaiCuaSoKhongVaoDongTong(t *testing.T) {
	// 21:30 là giờ hợp lệ nhưng relabel thành 22:00, ngoài cửa sổ 07:00-21:00
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionTime: "08:00:00", CheckedQty: 100, DefectQty: 5},
		{MONo: "MO-1", InspectionTime: "21:30:00", CheckedQty: 40, DefectQty: 2},
	}
	cells, grand := HourlyTotals(records, Criteria{})

	if len(cells) != 15 {
		t.Errorf("dòng tổng phải có đúng 15 key, được %d", len(cells))
	}
	if _, ok := cells["22:00"]; ok {
		t.Error("nhãn 22:00 ngoài cửa sổ không được xuất hiện trong dòng tổng")
	}
	if grand.CheckedQty != 140 || grand.DefectQty != 7 {
		t.Errorf("tổng chung vẫn phải cộng bản ghi 21:30: checked=%d defect=%d", grand.CheckedQty, grand.DefectQty)
	}
}
