// Package aggregate - Test gom nhóm và tính chỉ số: bảo toàn tổng,
// chia an toàn với mẫu số 0, first-seen cho chiều không gom.
package aggregate

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarize_MotBanGhiDungSoLieu(t *testing.T) {
	records := []InspectionRecord{
		{
			MONo: "MO-1", InspectionDate: "07/01/2025",
			CheckedQty: 100, TotalPass: 90, TotalRejects: 10, DefectQty: 15,
			DefectArray: []DefectCount{{DefectName: "Broken Stitch", TotalCount: 15}},
		},
	}

	s := Summarize(records, Criteria{})
	if s.CheckedQty != 100 || s.TotalPass != 90 || s.TotalRejects != 10 {
		t.Fatalf("tổng sai: checked=%d pass=%d rejects=%d", s.CheckedQty, s.TotalPass, s.TotalRejects)
	}
	if s.DefectQty != 15 || s.TotalBundles != 1 {
		t.Fatalf("defectQty=%d totalBundles=%d, kỳ vọng 15 và 1", s.DefectQty, s.TotalBundles)
	}
	if !almostEqual(s.DefectRate(), 0.15) {
		t.Errorf("defectRate phải là 0.15 (phân số), được %v", s.DefectRate())
	}
	if !almostEqual(s.DefectRatio(), 0.1) {
		t.Errorf("defectRatio phải là 0.1 (phân số), được %v", s.DefectRatio())
	}
	if !almostEqual(s.PassRate(), 90) {
		t.Errorf("passRate phải là 90 (phần trăm), được %v", s.PassRate())
	}
}

func TestSummarize_KhongKhopTraVeBucketZero(t *testing.T) {
	records := sampleRecords()
	s := Summarize(records, Criteria{MONo: "KHONG-TON-TAI"})
	if s == nil {
		t.Fatal("summary không khớp gì vẫn phải trả về bucket, không phải nil")
	}
	if s.CheckedQty != 0 || s.DefectQty != 0 {
		t.Errorf("bucket zero phải có tổng 0, được checked=%d defect=%d", s.CheckedQty, s.DefectQty)
	}
	if s.DefectRate() != 0 || s.DefectRatio() != 0 || s.PassRate() != 0 {
		t.Errorf("chỉ số trên bucket zero phải là 0, không phải NaN/Infinity")
	}
	if s.DefectList() == nil {
		t.Error("danh sách lỗi phải là list rỗng, không phải nil")
	}
}

func TestSummarize_BanGhiThieuNgayVanDuocTinh(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionDate: "", CheckedQty: 40},
		{MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 60},
	}
	s := Summarize(records, Criteria{})
	if s.CheckedQty != 100 {
		t.Errorf("summary không gom nhóm không được loại bản ghi thiếu ngày, checked=%d", s.CheckedQty)
	}
}

func TestAggregate_GroupByLineGiuFirstSeenMONo(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-A", LineNo: "L1", InspectionDate: "07/01/2025", CheckedQty: 10},
		{MONo: "MO-B", LineNo: "L1", InspectionDate: "07/01/2025", CheckedQty: 20},
		{MONo: "MO-C", LineNo: "L2", InspectionDate: "07/01/2025", CheckedQty: 30},
	}

	buckets := Aggregate(records, Criteria{GroupByLine: true})
	if len(buckets) != 2 {
		t.Fatalf("gom theo line phải ra 2 dòng, được %d", len(buckets))
	}
	for _, b := range buckets {
		switch b.Key.LineNo {
		case "L1":
			if b.CheckedQty != 30 {
				t.Errorf("L1 checkedQty phải là 30, được %d", b.CheckedQty)
			}
			if b.MONo != "MO-A" {
				t.Errorf("moNo của L1 phải là first-seen MO-A, được %s", b.MONo)
			}
		case "L2":
			if b.CheckedQty != 30 || b.MONo != "MO-C" {
				t.Errorf("L2 sai: checked=%d moNo=%s", b.CheckedQty, b.MONo)
			}
		default:
			t.Errorf("key line không mong đợi: %q", b.Key.LineNo)
		}
	}
}

func TestAggregate_BaoToanTongSauGomNhom(t *testing.T) {
	records := sampleRecords()
	c := Criteria{GroupByLine: true}

	totalFromBuckets := 0
	for _, b := range Aggregate(records, c) {
		totalFromBuckets += b.CheckedQty
	}

	// Tổng checkedQty của các bucket phải bằng tổng của tập đã lọc
	// (mọi bản ghi ở đây đều có ngày hợp lệ nên không bản ghi nào bị loại)
	totalFromRecords := 0
	for _, r := range FilterRecords(records, c) {
		totalFromRecords += r.CheckedQty
	}
	if totalFromBuckets != totalFromRecords {
		t.Errorf("tổng bucket %d khác tổng bản ghi lọc %d", totalFromBuckets, totalFromRecords)
	}
}

func TestAggregate_GomNhomThieuNgayBiLoaiTruocKhiGom(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", LineNo: "L1", InspectionDate: "", CheckedQty: 40},
		{MONo: "MO-1", LineNo: "L1", InspectionDate: "07/01/2025", CheckedQty: 60},
	}
	buckets := Aggregate(records, Criteria{GroupByLine: true})
	if len(buckets) != 1 {
		t.Fatalf("phải có 1 bucket, được %d", len(buckets))
	}
	if buckets[0].CheckedQty != 60 {
		t.Errorf("bản ghi thiếu ngày phải bị loại khi gom nhóm, checked=%d", buckets[0].CheckedQty)
	}
}

func TestAggregate_KhongDoiKhiChayLai(t *testing.T) {
	records := sampleRecords()
	c := Criteria{GroupByLine: true, GroupByMO: true}

	first := Aggregate(records, c)
	second := Aggregate(records, c)
	if len(first) != len(second) {
		t.Fatalf("hai lần chạy ra số bucket khác nhau: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Key != second[i].Key || first[i].CheckedQty != second[i].CheckedQty {
			t.Errorf("bucket %d khác nhau giữa hai lần chạy", i)
		}
	}
}

func TestBucket_DefectTrungTenDuocCongDon(t *testing.T) {
	records := []InspectionRecord{
		{
			MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 10,
			DefectArray: []DefectCount{
				{DefectName: "Broken Stitch", TotalCount: 2},
				{DefectName: "Broken Stitch", TotalCount: 3},
			},
		},
		{
			MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 10,
			DefectArray: []DefectCount{{DefectName: "Broken Stitch", TotalCount: 5}},
		},
	}
	s := Summarize(records, Criteria{})
	defects := s.DefectList()
	if len(defects) != 1 {
		t.Fatalf("tên trùng phải được cộng dồn thành 1 mục, được %d", len(defects))
	}
	if defects[0].TotalCount != 10 {
		t.Errorf("tổng count phải là 10, được %d", defects[0].TotalCount)
	}
}

func TestBucket_BGradeQtyKhongClamp(t *testing.T) {
	records := []InspectionRecord{
		{
			MONo: "MO-1", InspectionDate: "07/01/2025",
			CheckedQty: 10, TotalRejects: 3,
			PrintArray: []PrintEntry{{TotalRejectGarmentVar: 5}},
		},
	}
	s := Summarize(records, Criteria{})
	if got := s.BGradeQty(); got != -2 {
		t.Errorf("bGradeQty phải giữ giá trị âm -2, không clamp về 0, được %d", got)
	}
}

func TestBucket_DefectiveBundlesTheoTotalRepair(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 10, TotalRepair: 2},
		{MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 10, TotalRepair: 0},
	}
	s := Summarize(records, Criteria{})
	if s.TotalBundles != 2 || s.DefectiveBundles != 1 {
		t.Errorf("totalBundles=%d defectiveBundles=%d, kỳ vọng 2 và 1", s.TotalBundles, s.DefectiveBundles)
	}
}

func TestNewKeyBuilder_WeekThangKhiCaHaiCungBat(t *testing.T) {
	kb := NewKeyBuilder(Criteria{GroupByWeek: true, GroupByDate: true})
	r := InspectionRecord{InspectionDate: "07/02/2025"}
	key, ok := kb.Key(&r)
	if !ok {
		t.Fatal("bản ghi có ngày hợp lệ phải được gom")
	}
	if key.Week == "" || key.Date != "" {
		t.Errorf("week và date loại trừ lẫn nhau, week thắng: week=%q date=%q", key.Week, key.Date)
	}
}

func TestAggregate_GomLaiTheoChieuThoHonGiuNguyenTong(t *testing.T) {
	records := []InspectionRecord{
		{
			LineNo: "L1", MONo: "MO-1", InspectionDate: "07/01/2025",
			CheckedQty: 100, TotalPass: 90, TotalRejects: 10, TotalRepair: 4, DefectQty: 12,
			DefectArray: []DefectCount{
				{DefectName: "Broken Stitch", TotalCount: 7},
				{DefectName: "Skip Stitch", TotalCount: 5},
			},
		},
		{
			LineNo: "L1", MONo: "MO-2", InspectionDate: "07/02/2025",
			CheckedQty: 50, TotalPass: 45, TotalRejects: 5, DefectQty: 6,
			DefectArray: []DefectCount{{DefectName: "Broken Stitch", TotalCount: 6}},
		},
		{
			LineNo: "L2", MONo: "MO-1", InspectionDate: "07/01/2025",
			CheckedQty: 80, TotalPass: 78, TotalRejects: 2, DefectQty: 2,
			DefectArray: []DefectCount{{DefectName: "Open Seam", TotalCount: 2}},
		},
	}

	// Gom mịn theo (line, mo) rồi cuộn từng bucket thành một bản ghi tổng hợp
	fine := Aggregate(records, Criteria{GroupByLine: true, GroupByMO: true})
	rolled := make([]InspectionRecord, 0, len(fine))
	for _, b := range fine {
		rolled = append(rolled, InspectionRecord{
			LineNo: b.Key.LineNo, MONo: b.Key.MONo, InspectionDate: "07/01/2025",
			CheckedQty: b.CheckedQty, TotalPass: b.TotalPass,
			TotalRejects: b.TotalRejects, TotalRepair: b.TotalRepair,
			DefectQty: b.DefectQty, DefectArray: b.DefectList(),
		})
	}

	coarse := Aggregate(rolled, Criteria{GroupByLine: true})
	direct := Aggregate(records, Criteria{GroupByLine: true})
	if len(coarse) != len(direct) {
		t.Fatalf("số bucket theo line phải bằng nhau: cuộn=%d trực tiếp=%d", len(coarse), len(direct))
	}

	// totalBundles đếm số bản ghi đầu vào nên không bảo toàn qua bước cuộn,
	// không so sánh ở đây
	for i := range direct {
		d, c := direct[i], coarse[i]
		if d.Key.LineNo != c.Key.LineNo {
			t.Fatalf("thứ tự bucket lệch nhau: %q vs %q", d.Key.LineNo, c.Key.LineNo)
		}
		if c.CheckedQty != d.CheckedQty || c.TotalPass != d.TotalPass ||
			c.TotalRejects != d.TotalRejects || c.TotalRepair != d.TotalRepair ||
			c.DefectQty != d.DefectQty {
			t.Errorf("line %q: tổng sau cuộn lệch trực tiếp: %+v vs %+v", d.Key.LineNo, c, d)
		}
		want := map[string]int{}
		for _, df := range d.DefectList() {
			want[df.DefectName] += df.TotalCount
		}
		got := map[string]int{}
		for _, df := range c.DefectList() {
			got[df.DefectName] += df.TotalCount
		}
		if len(got) != len(want) {
			t.Errorf("line %q: số tên lỗi lệch: %d vs %d", d.Key.LineNo, len(got), len(want))
		}
		for name, count := range want {
			if got[name] != count {
				t.Errorf("line %q lỗi %q: count sau cuộn %d, trực tiếp %d", d.Key.LineNo, name, got[name], count)
			}
		}
	}
}
