// internal/core/domain/revenue/validator.go
package revenue

import (
	"fmt"
	"strings"
)

// ValidationError - ошибка валидации аргумента команды.
// Text предназначен для показа пользователю.
type ValidationError struct {
	Field string
	Text  string
}

func (e *ValidationError) Error() string {
	return e.Text
}

// AllowedCurrencies возвращает список валют для показа пользователю ("€ - $")
func AllowedCurrencies() string {
	parts := make([]string, len(AvailableCurrencies))
	for i, c := range AvailableCurrencies {
		parts[i] = string(c)
	}
	return strings.Join(parts, " - ")
}

// AllowedPlatforms возвращает список платформ для показа пользователю
func AllowedPlatforms() string {
	parts := make([]string, len(AvailablePlatforms))
	for i, p := range AvailablePlatforms {
		parts[i] = string(p)
	}
	return strings.Join(parts, " - ")
}

// ValidateCurrency проверяет, что валюта входит в список доступных
func ValidateCurrency(value string) (Currency, error) {
	for _, c := range AvailableCurrencies {
		if string(c) == value {
			return c, nil
		}
	}

	return "", &ValidationError{
		Field: "currency",
		Text: fmt.Sprintf("The currency you typed is not available.\n\nPlease use one among these: `%s`",
			AllowedCurrencies()),
	}
}

// ValidatePlatform проверяет, что платформа входит в список доступных
func ValidatePlatform(value string) (Platform, error) {
	for _, p := range AvailablePlatforms {
		if string(p) == value {
			return p, nil
		}
	}

	return "", &ValidationError{
		Field: "platform",
		Text: fmt.Sprintf("The platform you typed is not available.\n\nPlease use one among these: `%s`",
			AllowedPlatforms()),
	}
}

// ValidateMonth проверяет, что месяц находится в диапазоне 1-12
func ValidateMonth(value int) (int, error) {
	if value < 1 || value > 12 {
		return 0, &ValidationError{
			Field: "month",
			Text:  "The month must be a number between 1 and 12.",
		}
	}
	return value, nil
}
