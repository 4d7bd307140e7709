package report

type RosterEntry struct {
	WorkerID           string  `json:"worker_id"`
	FullName           string  `json:"full_name"`
	Role               string  `json:"role"`
	Status             string  `json:"status"`
	Mode               string  `json:"mode,omitempty"`
	CheckIn            *string `json:"check_in,omitempty"`
	CheckOut           *string `json:"check_out,omitempty"`
	TotalMinutes       *int    `json:"total_minutes,omitempty"`
	EarlyExitRequested bool    `json:"early_exit_requested"`
	EarlyExitApproved  bool    `json:"early_exit_approved"`
	OnLeave            bool    `json:"on_leave"`
	LeaveType          string  `json:"leave_type,omitempty"`
}

type RosterResponse struct {
	Date    string         `json:"date"`
	Holiday *string        `json:"holiday,omitempty"`
	Summary map[string]int `json:"summary"`
	Entries []RosterEntry  `json:"entries"`
}
