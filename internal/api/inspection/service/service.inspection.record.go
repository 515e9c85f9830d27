// Package inspsvc - Service cho domain inspection.
package inspsvc

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"garment_qms/internal/aggregate"
	basesvc "garment_qms/internal/api/base/service"
	inspmodels "garment_qms/internal/api/inspection/models"
	"garment_qms/internal/common"
	"garment_qms/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Qc2InspectionRecordService là service cho bản ghi kiểm hàng QC2
type Qc2InspectionRecordService struct {
	*basesvc.BaseServiceMongoImpl[inspmodels.Qc2InspectionRecord]
}

// NewQc2InspectionRecordService tạo mới Qc2InspectionRecordService
func NewQc2InspectionRecordService() (*Qc2InspectionRecordService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Qc2InspectionRecords)
	if !exist {
		return nil, fmt.Errorf("failed to get qc2 inspection records collection: %v", common.ErrNotFound)
	}

	return &Qc2InspectionRecordService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[inspmodels.Qc2InspectionRecord](collection),
	}, nil
}

// IsBundleRandomIdExist kiểm tra mã bundle đã tồn tại chưa
func (s *Qc2InspectionRecordService) IsBundleRandomIdExist(ctx context.Context, bundleRandomId string) (bool, error) {
	filter := bson.M{"bundleRandomId": bundleRandomId}
	var record inspmodels.Qc2InspectionRecord
	err := s.Collection().FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// coarseFilter dựng bson filter thô từ criteria để thu hẹp tập đọc từ MongoDB.
// Filter này chỉ cần không loại nhầm bản ghi khớp; việc khớp chính xác
// (trim, khoảng ngày đa định dạng) do predicate trong bộ nhớ quyết định.
// Mọi pattern regex đều được QuoteMeta nên input người dùng luôn khớp literal.
func coarseFilter(c aggregate.Criteria) bson.M {
	filter := bson.M{}

	if v := strings.TrimSpace(c.MONo); v != "" {
		filter["moNo"] = bson.M{"$regex": regexp.QuoteMeta(v), "$options": "i"}
	}
	if v := strings.TrimSpace(c.EmpID); v != "" {
		filter["emp_id"] = bson.M{"$regex": regexp.QuoteMeta(v), "$options": "i"}
	}
	if v := strings.TrimSpace(c.Buyer); v != "" {
		filter["buyer"] = bson.M{"$regex": regexp.QuoteMeta(v), "$options": "i"}
	}
	// Các trường khớp chính xác không đưa vào filter thô: giá trị trong DB
	// có thể chứa whitespace thừa, so sánh bằng phải làm sau khi trim.

	return filter
}

// toAggregateRecord chuyển document MongoDB sang bản ghi của engine tổng hợp
func toAggregateRecord(m *inspmodels.Qc2InspectionRecord) aggregate.InspectionRecord {
	defects := make([]aggregate.DefectCount, 0, len(m.DefectArray))
	for _, d := range m.DefectArray {
		defects = append(defects, aggregate.DefectCount{DefectName: d.DefectName, TotalCount: d.TotalCount})
	}
	prints := make([]aggregate.PrintEntry, 0, len(m.PrintArray))
	for _, p := range m.PrintArray {
		prints = append(prints, aggregate.PrintEntry{TotalRejectGarmentVar: p.TotalRejectGarmentVar})
	}
	return aggregate.InspectionRecord{
		BundleID:       m.BundleRandomID,
		MONo:           m.MONo,
		LineNo:         m.LineNo,
		Color:          m.Color,
		Size:           m.Size,
		Buyer:          m.Buyer,
		Department:     m.Department,
		Factory:        m.Factory,
		EmpID:          m.EmpID,
		InspectionDate: m.InspectionDate,
		InspectionTime: m.InspectionTime,
		CheckedQty:     m.CheckedQty,
		TotalPass:      m.TotalPass,
		TotalRejects:   m.TotalRejects,
		TotalRepair:    m.TotalRepair,
		DefectQty:      m.DefectQty,
		DefectArray:    defects,
		PrintArray:     prints,
	}
}

// FetchMatching đọc các bản ghi khớp criteria cho engine tổng hợp.
// Hai bước: filter thô trên MongoDB để thu hẹp tập đọc, rồi predicate
// trong bộ nhớ quyết định khớp cuối cùng.
func (s *Qc2InspectionRecordService) FetchMatching(ctx context.Context, c aggregate.Criteria) ([]aggregate.InspectionRecord, error) {
	cursor, err := s.Collection().Find(ctx, coarseFilter(c))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	pred := c.Predicate()
	records := []aggregate.InspectionRecord{}
	for cursor.Next(ctx) {
		var doc inspmodels.Qc2InspectionRecord
		if err := cursor.Decode(&doc); err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu bản ghi kiểm hàng không đúng định dạng", common.StatusInternalServerError, err)
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
