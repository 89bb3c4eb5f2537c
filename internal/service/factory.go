package service

import (
	"fmt"

	"github.com/fsdevblog/tradesphere/pkg/uow"
)

type AppServices struct {
	UserService     *UserService
	MarketService   *MarketService
	TradeService    *TradeService
	RecoveryService *RecoveryService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, hasher PasswordHasher) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, hasher)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	marketService, marketServiceErr := NewMarketService(unitOfWork)
	if marketServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", marketServiceErr.Error())
	}

	tradeService, tradeServiceErr := NewTradeService(unitOfWork)
	if tradeServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", tradeServiceErr.Error())
	}

	recoveryService, recoveryServiceErr := NewRecoveryService(unitOfWork)
	if recoveryServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", recoveryServiceErr.Error())
	}

	return &AppServices{
		UserService:     userService,
		MarketService:   marketService,
		TradeService:    tradeService,
		RecoveryService: recoveryService,
	}, nil
}
