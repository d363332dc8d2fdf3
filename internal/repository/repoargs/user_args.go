package repoargs

type CreateUser struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	UserTypeID  int64
	MobilePhone string
}
