package main

import (
	"context"

	"garment_qms/config"
	"garment_qms/internal/api/events"
	inspmodels "garment_qms/internal/api/inspection/models"
	subconmodels "garment_qms/internal/api/subcon/models"
	"garment_qms/internal/database"
	"garment_qms/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initDataChangeEvents() // Đăng ký handler cho event thay đổi dữ liệu
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Qc2InspectionRecords = "qc2_inspection_pass_bundle"
	global.MongoDB_ColNames.Qc2Defects = "qc2_defects"
	global.MongoDB_ColNames.SubconSewingQc1Reports = "subcon_sewing_qc1_reports"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm đăng ký handler cho event thay đổi dữ liệu qua CRUD.
// Hiện tại chỉ ghi log audit, các phản ứng khác (realtime dashboard, cache)
// đăng ký thêm handler tại đây.
func initDataChangeEvents() {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		logrus.WithFields(logrus.Fields{
			"collection": e.CollectionName,
			"operation":  e.Operation,
		}).Debug("Data changed")
	})
	logrus.Info("Registered data change event handlers")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo tag `index` của model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Qc2InspectionRecords), inspmodels.Qc2InspectionRecord{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Qc2Defects), inspmodels.Qc2Defect{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.SubconSewingQc1Reports), subconmodels.SubconSewingQc1Report{})
}
