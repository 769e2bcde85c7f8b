package model

import "github.com/golang-jwt/jwt/v5"

// CalculationRequest is the JSON body of POST /calculate.
// The operands are pointers so that a missing field fails validation
// while an explicit 0 passes.
type CalculationRequest struct {
	Number1 *float64 `json:"number1" validate:"required"`
	Number2 *float64 `json:"number2" validate:"required"`
}

// CalculationResult is the JSON response of POST /calculate.
type CalculationResult struct {
	Result float64 `json:"result"`
}

type DTOUserRegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type DTOLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type DTOLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Claims struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
