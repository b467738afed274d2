package models

import (
	"errors"
	"fmt"
)

// ColumnMapping is an explicit, possibly user-edited assignment of one
// source column per role. Empty fields mean the role is unmapped. Construct
// mappings through NewMappingBuilder so the split/single amount invariant
// and the one-column-per-role rule are enforced in one place.
type ColumnMapping struct {
	Date        string
	Amount      string
	Description string
	Memo        string
	Debit       string
	Credit      string
	CheckNumber string
	Balance     string
	Reference   string
}

// IsSplit reports whether the mapping uses separate debit/credit columns
// instead of one signed amount column.
func (m *ColumnMapping) IsSplit() bool {
	return m.Debit != "" || m.Credit != ""
}

// Column returns the source column mapped to a role, empty if unmapped.
func (m *ColumnMapping) Column(role Role) string {
	switch role {
	case RoleDate:
		return m.Date
	case RoleAmount:
		return m.Amount
	case RoleDescription:
		return m.Description
	case RoleMemo:
		return m.Memo
	case RoleDebit:
		return m.Debit
	case RoleCredit:
		return m.Credit
	case RoleCheckNumber:
		return m.CheckNumber
	case RoleBalance:
		return m.Balance
	case RoleReference:
		return m.Reference
	}
	return ""
}

// MappingBuilder provides a validated, error-accumulating API for
// constructing column mappings.
type MappingBuilder struct {
	mapping ColumnMapping
	err     error
}

// NewMappingBuilder creates an empty MappingBuilder.
func NewMappingBuilder() *MappingBuilder {
	return &MappingBuilder{}
}

// WithColumn assigns a source column to a role. Assigning an empty column is
// a no-op so detected formats with unresolved roles can be passed through
// unconditionally.
func (b *MappingBuilder) WithColumn(role Role, column string) *MappingBuilder {
	if b.err != nil || column == "" {
		return b
	}
	switch role {
	case RoleDate:
		b.mapping.Date = column
	case RoleAmount:
		b.mapping.Amount = column
	case RoleDescription:
		b.mapping.Description = column
	case RoleMemo:
		b.mapping.Memo = column
	case RoleDebit:
		b.mapping.Debit = column
	case RoleCredit:
		b.mapping.Credit = column
	case RoleCheckNumber:
		b.mapping.CheckNumber = column
	case RoleBalance:
		b.mapping.Balance = column
	case RoleReference:
		b.mapping.Reference = column
	default:
		b.err = fmt.Errorf("unknown column role: %s", role)
	}
	return b
}

// Build validates the accumulated assignments and returns the mapping.
// A mapping may not combine a single amount column with split debit/credit
// columns, and no source column may serve two roles.
func (b *MappingBuilder) Build() (*ColumnMapping, error) {
	if b.err != nil {
		return nil, b.err
	}
	m := b.mapping
	if m.IsSplit() && m.Amount != "" {
		return nil, errors.New("mapping cannot combine an amount column with debit/credit columns")
	}
	seen := make(map[string]Role)
	for _, role := range AllRoles {
		col := m.Column(role)
		if col == "" {
			continue
		}
		if prev, ok := seen[col]; ok {
			return nil, fmt.Errorf("column %q mapped to both %s and %s", col, prev, role)
		}
		seen[col] = role
	}
	return &m, nil
}
