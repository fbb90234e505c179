package service

import "strings"

// technicianRules is evaluated top to bottom; the first keyword contained in
// the service type wins, so "Engine AC check" goes to the engine specialist.
var technicianRules = []struct {
	keyword    string
	technician string
}{
	{"engine", "Rahul - Engine Specialist"},
	{"ac", "Vikram - AC Repair"},
	{"electric", "Aman - Electrical"},
}

// generalTechnician handles everything no rule claims.
const generalTechnician = "Suresh - General Service"

// AssignTechnician maps a free-text service type to a technician label by
// case-insensitive keyword match.
func AssignTechnician(serviceType string) string {
	lowered := strings.ToLower(serviceType)
	for _, rule := range technicianRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.technician
		}
	}
	return generalTechnician
}
