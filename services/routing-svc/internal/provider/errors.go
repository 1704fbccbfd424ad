package provider

import (
	"fmt"

	"logistics/pkg/apperror"
	"logistics/pkg/domain"
)

// errUnsupportedProfile профиль, отклонённый на границе адаптера (§4.1, §9)
func errUnsupportedProfile(profile domain.Profile) error {
	return apperror.NewWithField(apperror.CodeValidationUnsupportedProfile,
		fmt.Sprintf("profile %q is not supported by routing adapters", profile), "profile")
}

// errRateLimited ошибка превышения лимита запросов, с подсказкой Retry-After
func errRateLimited(providerName string, retryAfterSeconds int) error {
	return apperror.NewRateLimited(providerName, retryAfterSeconds)
}

// errUpstream4xx терминальная ошибка клиента, без повторных попыток (§4.3:
// Upstream4xx(message) is terminal). Использует CodeInvalidArgument, а не
// CodeProviderUpstream, чтобы retryable() в оркестраторе не повторял её.
func errUpstream4xx(providerName string, status int, message string) error {
	return apperror.New(apperror.CodeInvalidArgument,
		fmt.Sprintf("%s rejected request: %d %s", providerName, status, message))
}

// errUpstream5xx повторяемая ошибка сервера провайдера
func errUpstream5xx(providerName string, status int) error {
	return apperror.New(apperror.CodeProviderUpstream,
		fmt.Sprintf("%s upstream error: %d", providerName, status))
}

// errTimeout запрос к провайдеру истёк по времени
func errTimeout(providerName string) error {
	return apperror.New(apperror.CodeProviderTimeout, fmt.Sprintf("%s request timed out", providerName))
}

// errNetwork сетевая ошибка при обращении к провайдеру
func errNetwork(providerName string, err error) error {
	return apperror.New(apperror.CodeProviderNetwork, fmt.Sprintf("%s network error: %v", providerName, err))
}
