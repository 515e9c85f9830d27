// Package aggregate - Test facet: top lỗi sort ổn định, xu hướng theo
// ngày/tuần/tháng và các danh sách distinct cho dropdown.
package aggregate

import "testing"

func TestTopDefects_SortGiamDanOnDinh(t *testing.T) {
	records := []InspectionRecord{
		{
			MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 100,
			DefectArray: []DefectCount{
				{DefectName: "Broken Stitch", TotalCount: 5},
				{DefectName: "Open Seam", TotalCount: 5},
				{DefectName: "Skip Stitch", TotalCount: 10},
			},
		},
	}

	top := TopDefects(records, Criteria{}, 0)
	if len(top) != 3 {
		t.Fatalf("phải có 3 mục, được %d", len(top))
	}
	if top[0].Name != "Skip Stitch" {
		t.Errorf("mục đầu phải là lỗi nhiều nhất, được %q", top[0].Name)
	}
	// Hòa count thì giữ thứ tự gặp đầu tiên
	if top[1].Name != "Broken Stitch" || top[2].Name != "Open Seam" {
		t.Errorf("hòa count phải giữ thứ tự gặp đầu tiên: %q, %q", top[1].Name, top[2].Name)
	}
	if !almostEqual(top[0].Rate, 10) {
		t.Errorf("rate = 10/100*100 = 10, được %v", top[0].Rate)
	}
}

func TestTopDefects_CatTheoN(t *testing.T) {
	records := []InspectionRecord{
		{
			MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 100,
			DefectArray: []DefectCount{
				{DefectName: "A", TotalCount: 3},
				{DefectName: "B", TotalCount: 2},
				{DefectName: "C", TotalCount: 1},
			},
		},
	}
	top := TopDefects(records, Criteria{}, 2)
	if len(top) != 2 {
		t.Fatalf("top 2 phải trả về 2 mục, được %d", len(top))
	}
}

func TestTrend_TheoNgaySortTangDan(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionDate: "07/02/2025", CheckedQty: 50, DefectQty: 5},
		{MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 100, DefectQty: 2},
		{MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 100, DefectQty: 3},
	}

	points := Trend(records, Criteria{}, TrendDaily)
	if len(points) != 2 {
		t.Fatalf("phải có 2 điểm theo ngày, được %d", len(points))
	}
	if points[0].Label != "2025-07-01" || points[1].Label != "2025-07-02" {
		t.Errorf("điểm phải sort tăng dần theo ngày: %q, %q", points[0].Label, points[1].Label)
	}
	if points[0].CheckedQty != 200 || points[0].DefectQty != 5 {
		t.Errorf("ngày 07/01 phải cộng dồn: checked=%d defect=%d", points[0].CheckedQty, points[0].DefectQty)
	}
	if !almostEqual(points[0].Rate, 2.5) {
		t.Errorf("rate = 5/200*100 = 2.5, được %v", points[0].Rate)
	}
}

func TestTrend_TheoTuanDungNhan(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionDate: "07/02/2025", CheckedQty: 50, DefectQty: 1},
	}
	points := Trend(records, Criteria{}, TrendWeekly)
	if len(points) != 1 {
		t.Fatalf("phải có 1 điểm theo tuần, được %d", len(points))
	}
	if points[0].Label != "2025-06-30 to 2025-07-06" {
		t.Errorf("nhãn tuần sai: %q", points[0].Label)
	}
}

func TestTrend_TheoThangDungNhanNgan(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionDate: "07/02/2025", CheckedQty: 50, DefectQty: 1},
		{MONo: "MO-1", InspectionDate: "08/15/2025", CheckedQty: 50, DefectQty: 1},
	}
	points := Trend(records, Criteria{}, TrendMonthly)
	if len(points) != 2 {
		t.Fatalf("phải có 2 điểm theo tháng, được %d", len(points))
	}
	if points[0].Label != "Jul" || points[1].Label != "Aug" {
		t.Errorf("nhãn tháng phải là tên ngắn theo thứ tự thời gian: %q, %q", points[0].Label, points[1].Label)
	}
}

func TestIndividualDefectTrend_TrucThoiGianChung(t *testing.T) {
	records := []InspectionRecord{
		{
			MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 100,
			DefectArray: []DefectCount{{DefectName: "A", TotalCount: 5}},
		},
		{
			MONo: "MO-1", InspectionDate: "07/02/2025", CheckedQty: 100,
			DefectArray: []DefectCount{{DefectName: "B", TotalCount: 3}},
		},
	}

	trends := IndividualDefectTrend(records, Criteria{}, TrendDaily)
	if len(trends) != 2 {
		t.Fatalf("phải có 2 xu hướng lỗi, được %d", len(trends))
	}
	for _, tr := range trends {
		if len(tr.Points) != 2 {
			t.Errorf("lỗi %q phải có điểm cho cả 2 ngày (trục chung), được %d", tr.Name, len(tr.Points))
		}
	}
	// Lỗi A không xuất hiện ngày 07/02 thì điểm đó count 0
	for _, tr := range trends {
		if tr.Name == "A" && tr.Points[1].DefectQty != 0 {
			t.Errorf("ngày không có lỗi A phải là 0, được %d", tr.Points[1].DefectQty)
		}
	}
}

func TestUniqueDefectNames_DistinctDaSort(t *testing.T) {
	records := []InspectionRecord{
		{
			MONo: "MO-1", InspectionDate: "07/01/2025", CheckedQty: 10,
			DefectArray: []DefectCount{
				{DefectName: "Open Seam", TotalCount: 1},
				{DefectName: "Broken Stitch", TotalCount: 1},
				{DefectName: "Open Seam", TotalCount: 2},
			},
		},
	}
	names := UniqueDefectNames(records, Criteria{})
	if len(names) != 2 {
		t.Fatalf("phải có 2 tên distinct, được %d", len(names))
	}
	if names[0] != "Broken Stitch" || names[1] != "Open Seam" {
		t.Errorf("danh sách phải sort tăng dần: %v", names)
	}
}

func TestBuildFilterOptions_DistinctSortBoRong(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-B", Buyer: "ANF", LineNo: "L2", Color: "Red", InspectionDate: "07/01/2025"},
		{MONo: "MO-A", Buyer: "ANF", LineNo: "L1", Color: "", InspectionDate: "07/01/2025"},
	}
	opts := BuildFilterOptions(records, Criteria{})
	if len(opts.MONos) != 2 || opts.MONos[0] != "MO-A" {
		t.Errorf("moNos phải distinct và sort: %v", opts.MONos)
	}
	if len(opts.Buyers) != 1 {
		t.Errorf("buyers phải distinct: %v", opts.Buyers)
	}
	if len(opts.Colors) != 1 {
		t.Errorf("giá trị rỗng không được đưa vào options: %v", opts.Colors)
	}
	if opts.Sizes == nil || opts.Departments == nil || opts.Factories == nil {
		t.Error("mọi danh sách phải là list rỗng, không phải nil")
	}
}

func TestFacets_MoiKeyLuonCoMat(t *testing.T) {
	result := Facets(nil, Criteria{}, 5, TrendDaily)
	if result.MainData == nil || result.FilterOptions == nil {
		t.Fatal("mainData và filterOptions phải luôn có mặt")
	}
	if result.TopDefects == nil || result.LinePerformance == nil || result.BuyerPerformance == nil {
		t.Error("các facet list phải là list rỗng, không phải nil")
	}
	if result.Trend == nil || result.IndividualTrend == nil || result.UniqueDefectNames == nil {
		t.Error("các facet xu hướng phải là list rỗng, không phải nil")
	}
	if result.OverallTotalChecked != 0 {
		t.Errorf("không có dữ liệu thì tổng checked phải là 0, được %d", result.OverallTotalChecked)
	}
}

func TestTrend_TheoThangNhieuNamKemNamVaoNhan(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionDate: "07/02/2024", CheckedQty: 50, DefectQty: 1},
		{MONo: "MO-1", InspectionDate: "07/15/2025", CheckedQty: 50, DefectQty: 2},
	}
	points := Trend(records, Criteria{}, TrendMonthly)
	if len(points) != 2 {
		t.Fatalf("phải có 2 điểm theo tháng, được %d", len(points))
	}
	// Hai tháng Bảy ở hai năm khác nhau phải phân biệt được bằng nhãn
	if points[0].Label != "Jul 2024" || points[1].Label != "Jul 2025" {
		t.Errorf("trục nhiều năm phải kèm năm vào nhãn: %q, %q", points[0].Label, points[1].Label)
	}
}

func TestIndividualDefectTrend_TheoThangNhieuNamKemNam(t *testing.T) {
	records := []InspectionRecord{
		{
			MONo: "MO-1", InspectionDate: "07/02/2024", CheckedQty: 100,
			DefectArray: []DefectCount{{DefectName: "A", TotalCount: 5}},
		},
		{
			MONo: "MO-1", InspectionDate: "07/15/2025", CheckedQty: 100,
			DefectArray: []DefectCount{{DefectName: "A", TotalCount: 3}},
		},
	}
	trends := IndividualDefectTrend(records, Criteria{}, TrendMonthly)
	if len(trends) != 1 {
		t.Fatalf("phải có 1 xu hướng lỗi, được %d", len(trends))
	}
	pts := trends[0].Points
	if len(pts) != 2 {
		t.Fatalf("phải có 2 điểm theo tháng, được %d", len(pts))
	}
	if pts[0].Label != "Jul 2024" || pts[1].Label != "Jul 2025" {
		t.Errorf("trục nhiều năm phải kèm năm vào nhãn: %q, %q", pts[0].Label, pts[1].Label)
	}
}
