package model

type ErrorResponse struct {
	Detail string `json:"detail"`
} // @name model.ErrorResponse
