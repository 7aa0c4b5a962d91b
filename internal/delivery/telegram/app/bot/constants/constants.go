// internal/delivery/telegram/app/bot/constants/constants.go
package constants

// Команды бота
const (
	CommandStart       = "start"
	CommandHelp        = "help"
	CommandRevenueAdd  = "revenue_add"
	CommandRevenueDel  = "revenue_del"
	CommandRevenueList = "revenue_list"
)

// Callback'и навигации по страницам
const (
	CallbackPageFirst = "page_first"
	CallbackPagePrev  = "page_prev"
	CallbackPageNext  = "page_next"
	CallbackPageLast  = "page_last"
)

// NavButtonTexts - подписи кнопок навигации
var NavButtonTexts = struct {
	First string
	Prev  string
	Next  string
	Last  string
}{
	First: "⏮ First",
	Prev:  "◀️ Previous",
	Next:  "Next ▶️",
	Last:  "Last ⏭",
}

// CommandDescriptions - описания команд для меню бота
var CommandDescriptions = map[string]string{
	CommandStart:       "Start working with the bot",
	CommandHelp:        "Show available commands",
	CommandRevenueAdd:  "Add a new revenue record",
	CommandRevenueDel:  "Delete a revenue record by id",
	CommandRevenueList: "Show revenues for a month",
}
