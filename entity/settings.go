package entity

// Setting slot keys. Each slot is a single row replaced wholesale on write.
const (
	SettingAppSettings    = "appSettings"
	SettingNextCustomerID = "nextCustomerId"
)

// AppSetting is one key/value settings slot.
type AppSetting struct {
	Key   string `json:"key" gorm:"type:text;primaryKey"`
	Value string `json:"value" gorm:"type:text;not null"`
}
