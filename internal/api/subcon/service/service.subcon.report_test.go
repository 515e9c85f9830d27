package subconsvc

import "testing"

func TestBuyerFromMoNumber_PatternCOMThangCO(t *testing.T) {
	// "COM" chứa "CO" nên thứ tự bảng ánh xạ quyết định kết quả
	if got := BuyerFromMoNumber("COM-2025-118"); got != "MWW" {
		t.Errorf("Mã MO chứa COM phải ra MWW, nhận được %q", got)
	}
	if got := BuyerFromMoNumber("CO-2025-007"); got != "Costco" {
		t.Errorf("Mã MO chứa CO (không COM) phải ra Costco, nhận được %q", got)
	}
}

func TestBuyerFromMoNumber_CacPatternConLai(t *testing.T) {
	cases := []struct {
		moNo string
		want string
	}{
		{"AR-5521", "Aritzia"},
		{"RT-0093", "Reitmans"},
		{"AF-1208", "ANF"},
		{"NT-3310", "STORI"},
		{"ZZ-9999", "Other"},
		{"", "Other"},
	}
	for _, c := range cases {
		if got := BuyerFromMoNumber(c.moNo); got != c.want {
			t.Errorf("BuyerFromMoNumber(%q) = %q, muốn %q", c.moNo, got, c.want)
		}
	}
}

func TestAqlLevelForBuyer_TheoBangMucAQL(t *testing.T) {
	cases := []struct {
		buyer string
		want  float64
	}{
		{"MWW", 2.5},
		{"REITMANS", 4.0},
		{"Reitmans", 4.0},
		{"Aritzia", 1.5},
		{"A & F", 1.5},
		{"A&F", 1.5},
		{"ANF", 1.5},
		{"Other", 1.0},
		{"", 1.0},
	}
	for _, c := range cases {
		if got := AqlLevelForBuyer(c.buyer); got != c.want {
			t.Errorf("AqlLevelForBuyer(%q) = %v, muốn %v", c.buyer, got, c.want)
		}
	}
}

func TestNormalizeReportDate_VeMotDinhDangDuyNhat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"07/02/2025", "2025-07-02"},
		{"2025-07-02", "2025-07-02"},
		{"  2025-07-02  ", "2025-07-02"},
		{"khong-phai-ngay", "khong-phai-ngay"},
	}
	for _, c := range cases {
		if got := normalizeReportDate(c.in); got != c.want {
			t.Errorf("normalizeReportDate(%q) = %q, muốn %q", c.in, got, c.want)
		}
	}
}
