package inspsvc

import (
	"context"
	"fmt"

	basesvc "garment_qms/internal/api/base/service"
	inspmodels "garment_qms/internal/api/inspection/models"
	"garment_qms/internal/common"
	"garment_qms/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Qc2DefectService là service cho danh mục lỗi QC2
type Qc2DefectService struct {
	*basesvc.BaseServiceMongoImpl[inspmodels.Qc2Defect]
}

// NewQc2DefectService tạo mới Qc2DefectService
func NewQc2DefectService() (*Qc2DefectService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Qc2Defects)
	if !exist {
		return nil, fmt.Errorf("failed to get qc2 defects collection: %v", common.ErrNotFound)
	}

	return &Qc2DefectService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[inspmodels.Qc2Defect](collection),
	}, nil
}

// FindInUse trả về danh mục lỗi còn sử dụng, lỗi hay gặp đứng trước,
// trong mỗi nhóm sort theo mã lỗi
func (s *Qc2DefectService) FindInUse(ctx context.Context) ([]inspmodels.Qc2Defect, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "isCommon", Value: -1},
		{Key: "code", Value: 1},
	})
	return s.Find(ctx, bson.M{"statusInUse": true}, opts)
}
