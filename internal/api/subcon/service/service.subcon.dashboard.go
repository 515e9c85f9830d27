package subconsvc

import (
	"context"
	"fmt"

	"garment_qms/internal/aggregate"
)

// topDefectLimit là số lỗi tối đa trả về trong facet topDefects
const topDefectLimit = 10

// SubconDashboardService là service cho các dashboard QC1 của nhà thầu phụ
type SubconDashboardService struct {
	reports *SubconQc1ReportService
}

// NewSubconDashboardService tạo mới SubconDashboardService
func NewSubconDashboardService() (*SubconDashboardService, error) {
	reportService, err := NewSubconQc1ReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subcon qc1 report service: %v", err)
	}
	return &SubconDashboardService{reports: reportService}, nil
}

// facets đọc tập báo cáo khớp filter và chạy toàn bộ facet theo granularity
func (s *SubconDashboardService) facets(ctx context.Context, c aggregate.Criteria, g aggregate.TrendGranularity) (*aggregate.FacetResult, error) {
	records, err := s.reports.FetchMatching(ctx, c)
	if err != nil {
		return nil, err
	}
	return aggregate.Facets(records, c, topDefectLimit, g), nil
}

// Daily trả về facet dashboard với xu hướng theo ngày
func (s *SubconDashboardService) Daily(ctx context.Context, c aggregate.Criteria) (*aggregate.FacetResult, error) {
	return s.facets(ctx, c, aggregate.TrendDaily)
}

// Weekly trả về facet dashboard với xu hướng theo tuần (tuần bắt đầu thứ Hai)
func (s *SubconDashboardService) Weekly(ctx context.Context, c aggregate.Criteria) (*aggregate.FacetResult, error) {
	return s.facets(ctx, c, aggregate.TrendWeekly)
}

// Monthly trả về facet dashboard với xu hướng theo tháng (nhãn tháng ngắn)
func (s *SubconDashboardService) Monthly(ctx context.Context, c aggregate.Criteria) (*aggregate.FacetResult, error) {
	return s.facets(ctx, c, aggregate.TrendMonthly)
}
