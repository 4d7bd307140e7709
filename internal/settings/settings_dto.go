package settings

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required,max=500"`
}

type RegisterKioskRequest struct {
	DeviceID string `json:"device_id" binding:"required,max=255"`
}

type SettingResponse struct {
	Key       string  `json:"key"`
	Value     string  `json:"value"`
	UpdatedBy *string `json:"updated_by,omitempty"`
	UpdatedAt string  `json:"updated_at"`
}

type KioskStatusResponse struct {
	Registered bool `json:"registered"`
	ThisDevice bool `json:"this_device"`
}
