package adminaudit

import "taskhub/internal/admin/models"

// NoRequestBody is logged when no argument is a loggable payload.
const NoRequestBody = "No Request Body"

// ExtractPayload renders the first loggable argument, scanning left to right.
// Only plain strings and the admin request models are loggable; every other
// argument is skipped so arbitrary values never reach the audit log.
func ExtractPayload(args []any) string {
	for _, arg := range args {
		if text, ok := payloadText(arg); ok {
			return text
		}
	}
	return NoRequestBody
}

func payloadText(arg any) (string, bool) {
	switch v := arg.(type) {
	case string:
		return v, true
	case models.UserRoleChangeRequest:
		return v.String(), true
	case *models.UserRoleChangeRequest:
		if v == nil {
			return "", false
		}
		return v.String(), true
	case models.ManagerSaveRequest:
		return v.String(), true
	case *models.ManagerSaveRequest:
		if v == nil {
			return "", false
		}
		return v.String(), true
	default:
		return "", false
	}
}
