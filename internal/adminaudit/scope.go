// Package adminaudit records who called which administrative operation, with
// what, and what it returned.
//
// Audited operations are decorated when routes are registered (see Func1 and
// Func2). Every call to an audited operation emits exactly one access record
// before the operation runs and, if it returns without error, exactly one
// response record afterwards. Failed calls emit no response record.
package adminaudit

import "strings"

// Group is an audited API group.
type Group int

const (
	// NoMatch marks operations outside every audited group.
	NoMatch Group = iota
	UserAdmin
	CommentAdmin
)

// Surface names. An operation identifier is "<surface>.<operation>".
const (
	UserAdminSurface    = "useradmin"
	CommentAdminSurface = "commentadmin"
)

var surfaces = map[string]Group{
	UserAdminSurface:    UserAdmin,
	CommentAdminSurface: CommentAdmin,
}

// Label is the group name used in rendered records.
func (g Group) Label() string {
	switch g {
	case UserAdmin:
		return "User Admin API"
	case CommentAdmin:
		return "Comment Admin API"
	default:
		return ""
	}
}

func (g Group) String() string {
	if g == NoMatch {
		return "no match"
	}
	return g.Label()
}

// Match returns the audited group an operation identifier belongs to.
// Every operation on an audited surface matches; nothing else does.
func Match(operationID string) Group {
	surface, _, ok := splitOperation(operationID)
	if !ok {
		return NoMatch
	}
	return surfaces[surface]
}

// OperationID joins a surface and operation name.
func OperationID(surface, operation string) string {
	return surface + "." + operation
}

func splitOperation(operationID string) (surface, name string, ok bool) {
	surface, name, ok = strings.Cut(operationID, ".")
	if !ok || surface == "" || name == "" {
		return "", "", false
	}
	return surface, name, true
}
