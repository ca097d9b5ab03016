package domain

// Principal is the resolved identity attached to an authenticated request.
// Resource operations read the acting tenant from here and nowhere else.
type Principal struct {
	AccountID uint
	TenantID  uint
	Email     string
	IsAdmin   bool
}

func NewPrincipal(account *Account) *Principal {
	return &Principal{
		AccountID: account.ID,
		TenantID:  account.TenantID,
		Email:     account.Email,
		IsAdmin:   account.IsAdmin,
	}
}
