package handlers

import (
	userRepo "farmhub/database/repository/user"
)

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth         *AuthHandler
	User         *UserHandler
	Product      *ProductHandler
	Trade        *TradeHandler
	Consultation *ConsultationHandler
}
