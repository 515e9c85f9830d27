// Package aggregate - Test pivot theo giờ: densify từng outer key,
// dòng tổng và loại bản ghi có giờ không hợp lệ khỏi cả breakdown.
package aggregate

import "testing"

func TestDefectRatesByMOHour_DensifyTungMO(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionTime: "08:00:00", CheckedQty: 100, DefectQty: 5},
		{MONo: "MO-2", InspectionTime: "10:00:00", CheckedQty: 50, DefectQty: 1},
	}

	pivot := DefectRatesByMOHour(records, Criteria{})
	if len(pivot.ByMO) != 2 {
		t.Fatalf("phải có 2 moNo, được %d", len(pivot.ByMO))
	}
	for moNo, hours := range pivot.ByMO {
		if len(hours) != 15 {
			t.Errorf("moNo %q phải có đủ 15 key giờ, được %d", moNo, len(hours))
		}
	}

	// MO-1 chỉ có dữ liệu lúc 08 (nhãn 09:00), các ô khác là placeholder
	cell := pivot.ByMO["MO-1"]["09:00"]
	if cell == nil || !cell.HasCheckedQty || cell.CheckedQty != 100 {
		t.Fatalf("ô 09:00 của MO-1 sai: %+v", cell)
	}
	if other := pivot.ByMO["MO-1"]["11:00"]; other == nil || other.HasCheckedQty {
		t.Errorf("ô không dữ liệu phải là placeholder: %+v", other)
	}

	// Dòng tổng theo giờ cộng cả hai MO
	if len(pivot.TotalsByHour) != 15 {
		t.Errorf("dòng tổng phải đủ 15 key, được %d", len(pivot.TotalsByHour))
	}
	if pivot.Grand.CheckedQty != 150 {
		t.Errorf("tổng chung phải là 150, được %d", pivot.Grand.CheckedQty)
	}
}

func TestDefectRatesByMOHour_GioKhongHopLeLoaiKhoiTongChung(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionTime: "08:00:00", CheckedQty: 100, DefectQty: 5},
		{MONo: "MO-1", InspectionTime: "25:00:00", CheckedQty: 999, DefectQty: 999},
	}
	pivot := DefectRatesByMOHour(records, Criteria{})
	if pivot.Grand.CheckedQty != 100 {
		t.Errorf("bản ghi giờ 25 phải bị loại cả khỏi tổng chung, checked=%d", pivot.Grand.CheckedQty)
	}
}

func TestDefectRatesByLineHour_RateTungMuc(t *testing.T) {
	records := []InspectionRecord{
		{LineNo: "L1", MONo: "MO-1", InspectionTime: "08:00:00", CheckedQty: 100, DefectQty: 10},
		{LineNo: "L1", MONo: "MO-2", InspectionTime: "09:00:00", CheckedQty: 100, DefectQty: 0},
		{LineNo: "L2", MONo: "MO-3", InspectionTime: "10:00:00", CheckedQty: 50, DefectQty: 5},
	}

	pivot := DefectRatesByLineHour(records, Criteria{})
	if len(pivot.ByLine) != 2 {
		t.Fatalf("phải có 2 line, được %d", len(pivot.ByLine))
	}
	if len(pivot.ByLine["L1"]) != 2 {
		t.Errorf("L1 phải có 2 moNo, được %d", len(pivot.ByLine["L1"]))
	}
	if len(pivot.ByLine["L1"]["MO-1"]) != 15 {
		t.Errorf("tổ hợp line+mo phải đủ 15 key giờ, được %d", len(pivot.ByLine["L1"]["MO-1"]))
	}

	// Rate mức line: L1 = 10/200*100 = 5
	if !almostEqual(pivot.LineRates["L1"], 5) {
		t.Errorf("rate L1 phải là 5, được %v", pivot.LineRates["L1"])
	}
	// Rate mức line+mo: L1/MO-1 = 10/100*100 = 10
	if !almostEqual(pivot.MORates["L1"]["MO-1"], 10) {
		t.Errorf("rate L1/MO-1 phải là 10, được %v", pivot.MORates["L1"]["MO-1"])
	}
	// Tổng chung: 15/250*100 = 6
	if !almostEqual(pivot.Grand.Rate, 6) {
		t.Errorf("rate tổng chung phải là 6, được %v", pivot.Grand.Rate)
	}
}

func TestDefectRatesByMOHour_DongTongChiGiuCuaSoHienThi(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionTime: "08:00:00", CheckedQty: 100, DefectQty: 5},
		{MONo: "MO-1", InspectionTime: "21:30:00", CheckedQty: 40, DefectQty: 2},
	}
	pivot := DefectRatesByMOHour(records, Criteria{})

	if len(pivot.TotalsByHour) != 15 {
		t.Errorf("dòng tổng phải có đúng 15 key, được %d", len(pivot.TotalsByHour))
	}
	if _, ok := pivot.TotalsByHour["22:00"]; ok {
		t.Error("nhãn 22:00 ngoài cửa sổ không được vào dòng tổng")
	}

	// Tổng chung vẫn cộng bản ghi 21:30 vì giờ hợp lệ
	if pivot.Grand.CheckedQty != 140 {
		t.Errorf("tổng chung phải là 140, được %d", pivot.Grand.CheckedQty)
	}

	// Map theo moNo giữ nguyên ô ngoài cửa sổ khi dữ liệu có
	cell := pivot.ByMO["MO-1"]["22:00"]
	if cell == nil || !cell.HasCheckedQty || cell.CheckedQty != 40 {
		t.Errorf("ô 22:00 của MO-1 phải giữ dữ liệu: %+v", cell)
	}
}
