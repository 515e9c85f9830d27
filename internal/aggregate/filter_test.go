// Package aggregate - Test normalize filter: substring không phân biệt hoa thường,
// khớp literal cho buyer, khớp chính xác sau trim và khoảng ngày bao gồm hai đầu.
package aggregate

import "testing"

func sampleRecords() []InspectionRecord {
	return []InspectionRecord{
		{
			MONo: "MO-12345", LineNo: "L1", Color: "Blue", Size: "M",
			Buyer: "ANF", Department: "QC2", EmpID: "EMP001",
			InspectionDate: "07/01/2025", InspectionTime: "08:15:00",
			CheckedQty: 100, TotalPass: 90, TotalRejects: 10, DefectQty: 15,
		},
		{
			MONo: "MO-67890", LineNo: "L2", Color: "Red", Size: "L",
			Buyer: "MWW (Sub)", Department: "QC2", EmpID: "EMP002",
			InspectionDate: "07/02/2025", InspectionTime: "09:30:00",
			CheckedQty: 50, TotalPass: 45, TotalRejects: 5, DefectQty: 7,
		},
		{
			MONo: "XX-11111", LineNo: "L1", Color: " Blue ", Size: "M",
			Buyer: "Costco", Department: "QC1", EmpID: "EMP003",
			InspectionDate: "07/10/2025", InspectionTime: "10:00:00",
			CheckedQty: 30, TotalPass: 30, TotalRejects: 0, DefectQty: 0,
		},
	}
}

func TestPredicate_MONoSubstringKhongPhanBietHoaThuong(t *testing.T) {
	records := sampleRecords()
	matched := FilterRecords(records, Criteria{MONo: "mo-123"})
	if len(matched) != 1 {
		t.Fatalf("moNo 'mo-123' phải khớp 1 bản ghi, được %d", len(matched))
	}
	if matched[0].MONo != "MO-12345" {
		t.Errorf("khớp sai bản ghi: %s", matched[0].MONo)
	}
}

func TestPredicate_BuyerKhopLiteralVoiMetacharacter(t *testing.T) {
	records := sampleRecords()

	// "(Sub)" chứa metacharacter của regex nhưng phải khớp literal
	matched := FilterRecords(records, Criteria{Buyer: "(Sub)"})
	if len(matched) != 1 || matched[0].Buyer != "MWW (Sub)" {
		t.Fatalf("buyer '(Sub)' phải khớp literal đúng 1 bản ghi, được %d", len(matched))
	}

	// Pattern regex không được diễn giải: ".*" không khớp gì theo literal
	matched = FilterRecords(records, Criteria{Buyer: ".*"})
	if len(matched) != 0 {
		t.Errorf("buyer '.*' không được diễn giải như regex, phải khớp 0, được %d", len(matched))
	}
}

func TestPredicate_ColorKhopChinhXacSauTrim(t *testing.T) {
	records := sampleRecords()

	// "Blue" khớp cả "Blue" và " Blue " (record được trim), phân biệt hoa thường
	matched := FilterRecords(records, Criteria{Color: " Blue "})
	if len(matched) != 2 {
		t.Fatalf("color 'Blue' phải khớp 2 bản ghi sau trim, được %d", len(matched))
	}

	matched = FilterRecords(records, Criteria{Color: "blue"})
	if len(matched) != 0 {
		t.Errorf("color phân biệt hoa thường, 'blue' phải khớp 0, được %d", len(matched))
	}
}

func TestPredicate_ThamSoToanWhitespaceCoiNhuVangMat(t *testing.T) {
	records := sampleRecords()
	matched := FilterRecords(records, Criteria{Color: "   "})
	if len(matched) != len(records) {
		t.Errorf("color toàn whitespace không được ràng buộc, phải khớp %d, được %d", len(records), len(matched))
	}
}

func TestPredicate_KhoangNgayBaoGomHaiDau(t *testing.T) {
	records := sampleRecords()

	matched := FilterRecords(records, Criteria{StartDate: "07/01/2025", EndDate: "07/02/2025"})
	if len(matched) != 2 {
		t.Fatalf("khoảng 07/01-07/02 phải khớp 2 bản ghi (bao gồm hai đầu), được %d", len(matched))
	}

	// Định dạng ISO cũng được chấp nhận
	matched = FilterRecords(records, Criteria{StartDate: "2025-07-10"})
	if len(matched) != 1 || matched[0].MONo != "XX-11111" {
		t.Errorf("startDate ISO '2025-07-10' phải khớp đúng bản ghi ngày 07/10, được %d", len(matched))
	}
}

func TestPredicate_NgayBanGhiSaiDinhDangBiLoaiKhiCoRangBuocNgay(t *testing.T) {
	records := []InspectionRecord{
		{MONo: "MO-1", InspectionDate: "not-a-date", CheckedQty: 10},
		{MONo: "MO-2", InspectionDate: "07/01/2025", CheckedQty: 20},
	}

	matched := FilterRecords(records, Criteria{StartDate: "06/01/2025"})
	if len(matched) != 1 || matched[0].MONo != "MO-2" {
		t.Fatalf("bản ghi có ngày sai định dạng phải bị loại (không throw), được %d bản ghi", len(matched))
	}

	// Không ràng buộc ngày thì bản ghi ngày hỏng vẫn qua filter
	matched = FilterRecords(records, Criteria{})
	if len(matched) != 2 {
		t.Errorf("không có ràng buộc ngày thì ngày hỏng không bị loại, được %d", len(matched))
	}
}

func TestPredicate_ThamSoNgaySaiDinhDangKhongApDung(t *testing.T) {
	records := sampleRecords()
	matched := FilterRecords(records, Criteria{StartDate: "13/45/2025"})
	if len(matched) != len(records) {
		t.Errorf("tham số ngày không parse được coi như vắng mặt, phải khớp %d, được %d", len(records), len(matched))
	}
}
