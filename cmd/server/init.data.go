package main

import (
	"context"
	"time"

	inspmodels "garment_qms/internal/api/inspection/models"
	inspsvc "garment_qms/internal/api/inspection/service"
	"garment_qms/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// defaultDefects là danh mục lỗi khởi tạo cho môi trường mới.
// Danh mục thật được quản lý qua API, đây chỉ là seed để app kiểm hàng
// chạy được ngay trên database trống.
var defaultDefects = []inspmodels.Qc2Defect{
	{Code: "D001", ShortEng: "Broken Stitch", English: "Broken Stitch", CategoryEng: "Stitching", IsCommon: true, StatusInUse: true},
	{Code: "D002", ShortEng: "Skip Stitch", English: "Skipped Stitch", CategoryEng: "Stitching", IsCommon: true, StatusInUse: true},
	{Code: "D003", ShortEng: "Open Seam", English: "Open Seam", CategoryEng: "Seam", IsCommon: true, StatusInUse: true},
	{Code: "D004", ShortEng: "Puckering", English: "Seam Puckering", CategoryEng: "Seam", StatusInUse: true},
	{Code: "D005", ShortEng: "Oil Stain", English: "Oil Stain", CategoryEng: "Stain", IsCommon: true, StatusInUse: true},
	{Code: "D006", ShortEng: "Dirty Mark", English: "Dirty Mark", CategoryEng: "Stain", StatusInUse: true},
	{Code: "D007", ShortEng: "Uneven Hem", English: "Uneven Hem", CategoryEng: "Measurement", StatusInUse: true},
	{Code: "D008", ShortEng: "Wrong Label", English: "Wrong Label Attached", CategoryEng: "Label", StatusInUse: true},
	{Code: "D009", ShortEng: "Missing Button", English: "Missing Button", CategoryEng: "Trim", StatusInUse: true},
	{Code: "D010", ShortEng: "Fabric Hole", English: "Fabric Hole", CategoryEng: "Fabric", StatusInUse: true},
}

// InitDefaultData seed danh mục lỗi QC2 khi collection còn trống
func InitDefaultData() {
	log := logger.GetAppLogger()

	defectService, err := inspsvc.NewQc2DefectService()
	if err != nil {
		log.Fatalf("Failed to initialize qc2 defect service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := defectService.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.WithError(err).Error("Failed to count qc2 defects, skipping seed")
		return
	}
	if count > 0 {
		log.Infof("Qc2 defect master already has %d entries, skipping seed", count)
		return
	}

	if _, err := defectService.InsertMany(ctx, defaultDefects); err != nil {
		log.WithError(err).Error("Failed to seed default qc2 defects")
		return
	}
	log.Infof("Seeded %d default qc2 defects", len(defaultDefects))
}
