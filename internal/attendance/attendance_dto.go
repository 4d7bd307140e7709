package attendance

type StartDayRequest struct {
	DeviceClass string `json:"device_class" binding:"omitempty,max=30"`
	DeviceID    string `json:"device_id" binding:"omitempty,max=255"`
}

type SwitchModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type EarlyExitRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type RecordResponse struct {
	ID                  string  `json:"id"`
	WorkerID            string  `json:"worker_id"`
	WorkerName          string  `json:"worker_name,omitempty"`
	Date                string  `json:"date"`
	CheckInTime         *string `json:"check_in_time"`
	CheckOutTime        *string `json:"check_out_time"`
	Status              string  `json:"status"`
	Mode                string  `json:"mode"`
	State               string  `json:"state"`
	EarlyExitRequested  bool    `json:"early_exit_requested"`
	EarlyExitReason     string  `json:"early_exit_reason,omitempty"`
	EarlyExitApproved   bool    `json:"early_exit_approved"`
	EarlyExitApprovedAt *string `json:"early_exit_approved_at,omitempty"`
	EarlyExitApprovedBy *string `json:"early_exit_approved_by,omitempty"`
	CheckInDeviceClass  string  `json:"check_in_device_class,omitempty"`
	TotalMinutes        *int    `json:"total_minutes,omitempty"`
}

type SegmentResponse struct {
	ID              string  `json:"id"`
	Mode            string  `json:"mode"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time"`
	DurationMinutes *int    `json:"duration_minutes"`
	Date            string  `json:"date"`
}

type StartDayResponse struct {
	Record  RecordResponse `json:"record"`
	Started bool           `json:"started"`
}

type EarlyExitResponse struct {
	Record      RecordResponse `json:"record"`
	WhatsAppURL string         `json:"whatsapp_url"`
}

type EndDayResponse struct {
	Record       RecordResponse `json:"record"`
	TotalMinutes int            `json:"total_minutes"`
	ModeMinutes  map[Mode]int   `json:"mode_minutes"`
	Advisory     string         `json:"advisory,omitempty"`
}

type TodayResponse struct {
	Date        string            `json:"date"`
	State       string            `json:"state"`
	Record      *RecordResponse   `json:"record"`
	OpenSegment *SegmentResponse  `json:"open_segment"`
	Segments    []SegmentResponse `json:"segments"`
}
