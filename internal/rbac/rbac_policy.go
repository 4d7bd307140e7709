package rbac

import "aakb-wms/internal/domain"

// Group roles. Concrete roles inherit them through grouping policies.
const (
	groupMember   = "member"
	groupLead     = "lead"
	groupOverseer = "overseer"
)

var defaultGroupings = [][]string{
	{domain.RoleWorker, groupMember},
	{domain.RoleManager, groupLead},
	{groupLead, groupMember},
	{domain.RoleSwamiji, groupOverseer},
	{domain.RoleAdmin, groupOverseer},
	{groupOverseer, groupLead},
}

var defaultPolicies = [][]string{
	{groupMember, "attendance", "self"},
	{groupMember, "leave", "self"},
	{groupMember, "holiday", "read"},
	{groupMember, "task", "self"},
	{groupMember, "notification", "self"},

	{groupLead, "attendance", "read_all"},
	{groupLead, "task", "assign"},
	{groupLead, "report", "read"},
	{groupLead, "profile", "read"},
	{groupLead, "leave", "read_all"},

	{groupOverseer, "attendance", "approve"},
	{groupOverseer, "leave", "approve"},

	{domain.RoleAdmin, "profile", "manage"},
	{domain.RoleAdmin, "settings", "manage"},
	{domain.RoleAdmin, "holiday", "manage"},
}
