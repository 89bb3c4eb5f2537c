package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/tradesphere/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup          = "/api"
	RegisterRoute       = "/user/register"
	LoginRoute          = "/user/login"
	StocksRoute         = "/stocks"
	BalanceRoute        = "/user/balance"
	PortfolioRoute      = "/user/portfolio"
	TransactionsRoute   = "/user/transactions"
	BuyRoute            = "/trades/buy"
	SellRoute           = "/trades/sell"
	RecoveryStatusRoute = "/user/balance/recovery"
	RecoverRoute        = "/user/balance/recover"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	MarketService   MarketServicer
	TradeService    TradeServicer
	RecoveryService RecoveryServicer
	JWTSecretKey    []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	stocksHandler := NewStocksHandler(args.MarketService)
	tradesHandler := NewTradesHandler(args.TradeService)
	portfolioHandler := NewPortfolioHandler(args.TradeService)
	balanceHandler := NewBalanceHandler(args.TradeService, args.RecoveryService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(StocksRoute, stocksHandler.Index)

	api.GET(BalanceRoute, balanceHandler.Index)
	api.GET(RecoveryStatusRoute, balanceHandler.RecoveryStatus)
	api.POST(RecoverRoute, balanceHandler.Recover)

	api.GET(PortfolioRoute, portfolioHandler.Index)
	api.GET(TransactionsRoute, portfolioHandler.Transactions)

	api.POST(BuyRoute, tradesHandler.Buy)
	api.POST(SellRoute, tradesHandler.Sell)
	return r
}
