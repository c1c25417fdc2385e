package domain

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeLink    EntityType = "LINK"
	EntityTypeBook    EntityType = "BOOK"
	EntityTypeComment EntityType = "COMMENT"
	EntityTypeUser    EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeLink, EntityTypeBook, EntityTypeComment, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
