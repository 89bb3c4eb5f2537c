package domain

type TransactionSide string

const (
	SideBuy  TransactionSide = "BUY"
	SideSell TransactionSide = "SELL"
)
