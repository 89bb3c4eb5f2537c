package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	StockRepoName       RepositoryName = "stock"
	HoldingRepoName     RepositoryName = "holding"
	TransactionRepoName RepositoryName = "transaction"
)
