package domain

import "time"

// Family is the tenant scope every data row belongs to.
type Family struct {
	ID        int64
	Name      string
	ChatID    int64 // Telegram chat for digests and alerts, 0 = none
	CreatedAt time.Time
}

type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleMember MemberRole = "member"
)

// Member is a person with access to a family's data.
type Member struct {
	ID        int64
	FamilyID  int64
	Name      string
	Role      MemberRole
	CreatedAt time.Time
}
