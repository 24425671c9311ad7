package enums

// AccountRole distinguishes supplier operators from platform admins.
type AccountRole string

const (
	AccountRoleSupplier AccountRole = "supplier"
	AccountRoleAdmin    AccountRole = "admin"
)

func (r AccountRole) IsValid() bool {
	switch r {
	case AccountRoleSupplier, AccountRoleAdmin:
		return true
	}
	return false
}
