package global

import (
	"garment_qms/config"
	"garment_qms/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_QC_CollectionName chứa tên các collection trong MongoDB
type MongoDB_QC_CollectionName struct {
	Qc2InspectionRecords   string // Tên collection cho bản ghi kiểm hàng QC2 theo bundle
	Qc2Defects             string // Tên collection cho danh mục lỗi QC2
	SubconSewingQc1Reports string // Tên collection cho báo cáo QC1 của nhà thầu phụ
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_QC_CollectionName // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
