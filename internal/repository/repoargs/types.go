package repoargs

type RepositoryName string

const (
	UserRepoName     RepositoryName = "user"
	CustomerRepoName RepositoryName = "customer"
	OrderRepoName    RepositoryName = "order"
)
