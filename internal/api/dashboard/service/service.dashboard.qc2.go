// Package dashsvc - Service tổng hợp dashboard QC2.
// Mỗi method đọc tập bản ghi khớp filter qua inspection service rồi
// đưa qua engine tổng hợp trong bộ nhớ, không query aggregation pipeline.
package dashsvc

import (
	"context"
	"fmt"

	"garment_qms/internal/aggregate"
	dashdto "garment_qms/internal/api/dashboard/dto"
	inspsvc "garment_qms/internal/api/inspection/service"
)

// Qc2DashboardService là service cho các dashboard QC2
type Qc2DashboardService struct {
	records *inspsvc.Qc2InspectionRecordService
}

// NewQc2DashboardService tạo mới Qc2DashboardService
func NewQc2DashboardService() (*Qc2DashboardService, error) {
	recordService, err := inspsvc.NewQc2InspectionRecordService()
	if err != nil {
		return nil, fmt.Errorf("failed to create qc2 inspection record service: %v", err)
	}
	return &Qc2DashboardService{records: recordService}, nil
}

// summaryView chuyển bucket không gom nhóm sang view model
func summaryView(b *aggregate.Bucket) *dashdto.Qc2SummaryView {
	return &dashdto.Qc2SummaryView{
		CheckedQty:       b.CheckedQty,
		TotalPass:        b.TotalPass,
		TotalRejects:     b.TotalRejects,
		TotalRepair:      b.TotalRepair,
		DefectQty:        b.DefectQty,
		TotalBundles:     b.TotalBundles,
		DefectiveBundles: b.DefectiveBundles,
		BGradeQty:        b.BGradeQty(),
		DefectRate:       b.DefectRate(),
		DefectRatio:      b.DefectRatio(),
		PassRate:         b.PassRate(),
		DefectArray:      b.DefectList(),
	}
}

// groupedRowView chuyển một bucket gom nhóm sang view model.
// Chiều đang gom lấy từ key, chiều không gom lấy giá trị first-seen
// để dòng kết quả vẫn hiển thị được giá trị đại diện.
func groupedRowView(b *aggregate.Bucket, c aggregate.Criteria) *dashdto.Qc2GroupedRowView {
	row := &dashdto.Qc2GroupedRowView{
		LineNo: b.LineNo,
		MONo:   b.MONo,
		Buyer:  b.Buyer,
		Color:  b.Color,
		Size:   b.Size,
		Date:   b.Date,

		CheckedQty:       b.CheckedQty,
		TotalPass:        b.TotalPass,
		TotalRejects:     b.TotalRejects,
		DefectQty:        b.DefectQty,
		TotalBundles:     b.TotalBundles,
		DefectiveBundles: b.DefectiveBundles,
		DefectRate:       b.DefectRate(),
		DefectRatio:      b.DefectRatio(),
		PassRate:         b.PassRate(),
		DefectArray:      b.DefectList(),
	}

	if c.GroupByWeek {
		if start, ok := aggregate.ParseRecordDate(b.Key.Week); ok {
			info := aggregate.WeekInfoOf(start)
			row.WeekInfo = &info
		}
		row.Date = ""
	} else if c.GroupByDate {
		row.Date = b.Key.Date
	}
	if c.GroupByLine {
		row.LineNo = b.Key.LineNo
	}
	if c.GroupByMO {
		row.MONo = b.Key.MONo
	}
	if c.GroupByBuyer {
		row.Buyer = b.Key.Buyer
	}
	if c.GroupByColor {
		row.Color = b.Key.Color
	}
	if c.GroupBySize {
		row.Size = b.Key.Size
	}

	return row
}

// Summary trả về tổng hợp không gom nhóm trên tập bản ghi khớp filter.
// Không có bản ghi khớp vẫn trả view zero đủ trường.
func (s *Qc2DashboardService) Summary(ctx context.Context, c aggregate.Criteria) (*dashdto.Qc2SummaryView, error) {
	records, err := s.records.FetchMatching(ctx, c)
	if err != nil {
		return nil, err
	}
	return summaryView(aggregate.Summarize(records, c)), nil
}

// SummaryGrouped trả về một dòng cho mỗi tổ hợp chiều gom nhóm.
// Không có bản ghi khớp trả về danh sách rỗng, không phải lỗi.
func (s *Qc2DashboardService) SummaryGrouped(ctx context.Context, c aggregate.Criteria) ([]*dashdto.Qc2GroupedRowView, error) {
	records, err := s.records.FetchMatching(ctx, c)
	if err != nil {
		return nil, err
	}
	buckets := aggregate.Aggregate(records, c)
	rows := make([]*dashdto.Qc2GroupedRowView, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, groupedRowView(b, c))
	}
	return rows, nil
}

// TopDefects trả về các lỗi nhiều nhất trên tập bản ghi khớp filter
func (s *Qc2DashboardService) TopDefects(ctx context.Context, c aggregate.Criteria, n int) ([]aggregate.DefectTotal, error) {
	records, err := s.records.FetchMatching(ctx, c)
	if err != nil {
		return nil, err
	}
	return aggregate.TopDefects(records, c, n), nil
}

// DefectRatesByHour trả về pivot moNo -> giờ với cửa sổ 07:00-21:00 densified
func (s *Qc2DashboardService) DefectRatesByHour(ctx context.Context, c aggregate.Criteria) (*aggregate.MOHourPivot, error) {
	records, err := s.records.FetchMatching(ctx, c)
	if err != nil {
		return nil, err
	}
	return aggregate.DefectRatesByMOHour(records, c), nil
}

// DefectRatesByLine trả về pivot lineNo -> moNo -> giờ với tỷ lệ tổng từng mức
func (s *Qc2DashboardService) DefectRatesByLine(ctx context.Context, c aggregate.Criteria) (*aggregate.LineHourPivot, error) {
	records, err := s.records.FetchMatching(ctx, c)
	if err != nil {
		return nil, err
	}
	return aggregate.DefectRatesByLineHour(records, c), nil
}

// FilterOptions trả về các danh sách distinct cho dropdown filter.
// Tính trên tập đã áp filter hiện tại để các dropdown thu hẹp lẫn nhau.
func (s *Qc2DashboardService) FilterOptions(ctx context.Context, c aggregate.Criteria) (*aggregate.FilterOptions, error) {
	records, err := s.records.FetchMatching(ctx, c)
	if err != nil {
		return nil, err
	}
	return aggregate.BuildFilterOptions(records, c), nil
}
