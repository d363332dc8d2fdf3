package repoargs

import "time"

type CreateCustomer struct {
	UserID             *int64
	Address            string
	StbNumber          string
	CardNumber         string
	OldCardNumber      string
	OldStbNumber       string
	AreaID             int64
	SubscriptionStatus string
	InstallationDate   *time.Time
	ExpiryDate         *time.Time
}
