package utils

import (
	"login-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(input.Email)
}

func SanitizeValidateEmailRequest(input *requests.ValidateEmail) {
	input.Email = strings.TrimSpace(input.Email)
	input.Event = strings.ToLower(strings.TrimSpace(input.Event))
}
