// Package subconsvc - Service cho domain subcon.
package subconsvc

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"garment_qms/internal/aggregate"
	basesvc "garment_qms/internal/api/base/service"
	subcondto "garment_qms/internal/api/subcon/dto"
	subconmodels "garment_qms/internal/api/subcon/models"
	"garment_qms/internal/common"
	"garment_qms/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// buyerMapping ánh xạ pattern trong mã MO sang tên khách hàng.
// Thứ tự quan trọng: "COM" phải đứng trước "CO" để nhận đúng MWW.
var buyerMappings = []struct {
	pattern string
	name    string
}{
	{"COM", "MWW"},
	{"CO", "Costco"},
	{"AR", "Aritzia"},
	{"RT", "Reitmans"},
	{"AF", "ANF"},
	{"NT", "STORI"},
}

// BuyerFromMoNumber suy ra tên khách hàng từ mã MO theo bảng ánh xạ pattern.
// Không khớp pattern nào trả về "Other".
func BuyerFromMoNumber(moNo string) string {
	if moNo == "" {
		return "Other"
	}
	for _, m := range buyerMappings {
		if strings.Contains(moNo, m.pattern) {
			return m.name
		}
	}
	return "Other"
}

// AqlLevelForBuyer trả về mức AQL áp dụng cho khách hàng
func AqlLevelForBuyer(buyer string) float64 {
	if buyer == "" {
		return 1.0
	}
	upper := strings.ToUpper(buyer)
	switch {
	case strings.Contains(upper, "MWW"):
		return 2.5
	case strings.Contains(upper, "REITMANS"):
		return 4.0
	case strings.Contains(upper, "ARITZIA"):
		return 1.5
	case strings.Contains(upper, "A & F"), strings.Contains(upper, "A&F"), strings.Contains(upper, "ANF"):
		return 1.5
	}
	return 1.0
}

// SubconQc1ReportService là service cho báo cáo QC1 của nhà thầu phụ
type SubconQc1ReportService struct {
	*basesvc.BaseServiceMongoImpl[subconmodels.SubconSewingQc1Report]
}

// NewSubconQc1ReportService tạo mới SubconQc1ReportService
func NewSubconQc1ReportService() (*SubconQc1ReportService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SubconSewingQc1Reports)
	if !exist {
		return nil, fmt.Errorf("failed to get subcon sewing qc1 reports collection: %v", common.ErrNotFound)
	}

	return &SubconQc1ReportService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[subconmodels.SubconSewingQc1Report](collection),
	}, nil
}

// GenerateReportID sinh mã báo cáo dạng SCyymmddNNNN với NNNN là 4 chữ số
// ngẫu nhiên, thử lại cho đến khi không trùng mã đã có.
func (s *SubconQc1ReportService) GenerateReportID(ctx context.Context) (string, error) {
	now := time.Now()
	datePart := now.Format("060102")

	for {
		reportID := fmt.Sprintf("SC%s%04d", datePart, 1000+rand.Intn(9000))

		var existing subconmodels.SubconSewingQc1Report
		err := s.Collection().FindOne(ctx, bson.M{"reportID": reportID}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			return reportID, nil
		}
		if err != nil {
			return "", common.ConvertMongoError(err)
		}
		// Trùng mã, sinh lại
	}
}

// normalizeReportDate chuẩn hóa ngày kiểm về YYYY-MM-DD để một ngày
// chỉ có một cách biểu diễn trong collection
func normalizeReportDate(s string) string {
	if t, ok := aggregate.ParseRecordDate(s); ok {
		return t.Format("2006-01-02")
	}
	return strings.TrimSpace(s)
}

// SaveReport lưu một báo cáo QC1 mới: sinh reportID, suy ra buyer từ mã MO
// và chốt mức AQL theo buyer tại thời điểm lưu.
func (s *SubconQc1ReportService) SaveReport(ctx context.Context, input *subcondto.SubconQc1ReportCreateInput) (subconmodels.SubconSewingQc1Report, error) {
	var zero subconmodels.SubconSewingQc1Report

	reportID, err := s.GenerateReportID(ctx)
	if err != nil {
		return zero, err
	}

	buyer := BuyerFromMoNumber(input.MONo)
	report := subconmodels.SubconSewingQc1Report{
		ReportID:       reportID,
		InspectionDate: normalizeReportDate(input.InspectionDate),
		Factory:        input.Factory,
		LineNo:         input.LineNo,
		MONo:           input.MONo,
		Color:          input.Color,
		Buyer:          buyer,
		CheckedQty:     input.CheckedQty,
		TotalDefectQty: input.TotalDefectQty,
		DefectList:     input.DefectList,
		AqlLevel:       AqlLevelForBuyer(buyer),
		AqlResult:      input.AqlResult,
		Remarks:        input.Remarks,
	}

	return s.InsertOne(ctx, report)
}

// UpdateReport cập nhật một báo cáo theo ID. Buyer và mức AQL được tính lại
// phòng trường hợp mã MO bị sửa.
func (s *SubconQc1ReportService) UpdateReport(ctx context.Context, id primitive.ObjectID, input *subcondto.SubconQc1ReportCreateInput) (subconmodels.SubconSewingQc1Report, error) {
	buyer := BuyerFromMoNumber(input.MONo)
	update := &basesvc.UpdateData{
		Set: bson.M{
			"inspectionDate": normalizeReportDate(input.InspectionDate),
			"factory":        input.Factory,
			"lineNo":         input.LineNo,
			"moNo":           input.MONo,
			"color":          input.Color,
			"buyer":          buyer,
			"checkedQty":     input.CheckedQty,
			"totalDefectQty": input.TotalDefectQty,
			"defectList":     input.DefectList,
			"aqlLevel":       AqlLevelForBuyer(buyer),
			"aqlResult":      input.AqlResult,
			"remarks":        input.Remarks,
		},
	}
	return s.UpdateById(ctx, id, update)
}

// FindExisting tìm báo cáo đã có của một tổ hợp (ngày, nhà máy, chuyền, MO, màu)
// để app quyết định tạo mới hay sửa. Không có trả về ErrNotFound.
func (s *SubconQc1ReportService) FindExisting(ctx context.Context, inspectionDate, factory, lineNo, moNo, color string) (subconmodels.SubconSewingQc1Report, error) {
	filter := bson.M{
		"inspectionDate": normalizeReportDate(inspectionDate),
		"factory":        factory,
		"lineNo":         lineNo,
		"moNo":           moNo,
		"color":          color,
	}
	return s.FindOne(ctx, filter, nil)
}

// toAggregateRecord chuyển báo cáo QC1 sang bản ghi của engine tổng hợp.
// TotalDefectQty vào DefectQty, defectList vào DefectArray.
func toAggregateRecord(m *subconmodels.SubconSewingQc1Report) aggregate.InspectionRecord {
	defects := make([]aggregate.DefectCount, 0, len(m.DefectList))
	for _, d := range m.DefectList {
		defects = append(defects, aggregate.DefectCount{DefectName: d.DefectName, TotalCount: d.Qty})
	}
	return aggregate.InspectionRecord{
		BundleID:       m.ReportID,
		MONo:           m.MONo,
		LineNo:         m.LineNo,
		Color:          m.Color,
		Buyer:          m.Buyer,
		Factory:        m.Factory,
		InspectionDate: m.InspectionDate,
		CheckedQty:     m.CheckedQty,
		DefectQty:      m.TotalDefectQty,
		DefectArray:    defects,
	}
}

// FetchMatching đọc các báo cáo khớp criteria cho engine tổng hợp.
// Filter thô chỉ thu hẹp theo khoảng ngày (ngày đã chuẩn hóa YYYY-MM-DD
// nên so sánh chuỗi là so sánh thời gian), predicate trong bộ nhớ
// quyết định khớp cuối cùng.
func (s *SubconQc1ReportService) FetchMatching(ctx context.Context, c aggregate.Criteria) ([]aggregate.InspectionRecord, error) {
	filter := bson.M{}
	dateRange := bson.M{}
	if t, ok := aggregate.ParseRecordDate(c.StartDate); ok {
		dateRange["$gte"] = t.Format("2006-01-02")
	}
	if t, ok := aggregate.ParseRecordDate(c.EndDate); ok {
		dateRange["$lte"] = t.Format("2006-01-02")
	}
	if len(dateRange) > 0 {
		filter["inspectionDate"] = dateRange
	}

	cursor, err := s.Collection().Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	pred := c.Predicate()
	records := []aggregate.InspectionRecord{}
	for cursor.Next(ctx) {
		var doc subconmodels.SubconSewingQc1Report
		if err := cursor.Decode(&doc); err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu báo cáo QC1 không đúng định dạng", common.StatusInternalServerError, err)
		}
		record := toAggregateRecord(&doc)
		if pred(&record) {
			records = append(records, record)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return records, nil
}
