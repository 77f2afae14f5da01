package handler

import (
	"rentnest/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	propertyHandler *PropertyHandler
	rentalHandler   *RentalHandler
	chatHandler     *ChatHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	propertyUseCase *usecase.PropertyUseCase,
	rentalUseCase *usecase.RentalUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	propertyHandler = NewPropertyHandler(propertyUseCase)
	rentalHandler = NewRentalHandler(rentalUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetRentalHandler() *RentalHandler {
	return rentalHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
