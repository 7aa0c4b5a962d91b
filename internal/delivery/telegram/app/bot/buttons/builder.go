// internal/delivery/telegram/app/bot/buttons/builder.go
package buttons

import (
	"revenue-ledger-bot/internal/delivery/telegram"
	"revenue-ledger-bot/internal/delivery/telegram/app/bot/constants"
)

// ButtonBuilder - построитель кнопок
type ButtonBuilder struct{}

// NewButtonBuilder создает новый построитель кнопок
func NewButtonBuilder() *ButtonBuilder {
	return &ButtonBuilder{}
}

// CreateNavigationKeyboard создает клавиатуру листания списка доходов
func (b *ButtonBuilder) CreateNavigationKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{
				{Text: constants.NavButtonTexts.First, CallbackData: constants.CallbackPageFirst},
				{Text: constants.NavButtonTexts.Prev, CallbackData: constants.CallbackPagePrev},
				{Text: constants.NavButtonTexts.Next, CallbackData: constants.CallbackPageNext},
				{Text: constants.NavButtonTexts.Last, CallbackData: constants.CallbackPageLast},
			},
		},
	}
}
