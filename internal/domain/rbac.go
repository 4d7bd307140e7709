package domain

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleSwamiji = "swamiji"
	RoleWorker  = "worker"
)

// OverseerRoles receive day-session notifications and may approve early exits
// and leave requests.
var OverseerRoles = []string{RoleSwamiji, RoleAdmin}

var AllRoles = []string{RoleAdmin, RoleManager, RoleSwamiji, RoleWorker}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleSwamiji, RoleWorker:
		return true
	default:
		return false
	}
}

func IsOverseer(role string) bool {
	for _, r := range OverseerRoles {
		if r == role {
			return true
		}
	}
	return false
}

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
