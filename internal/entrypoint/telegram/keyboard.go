package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

var mainMenu = [][]string{
	{"/receita", "/despesa"},
	{"/consulta_receita", "/consulta_despesa"},
	{"/dashboard"},
}

var dateChoices = [][]string{
	{labelToday, labelOtherDate},
}

// withCancel appends the cancel command as the last keyboard row, so the
// escape hatch is always on screen during a flow.
func withCancel(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, rows...)
	out = append(out, []string{"/cancelar"})
	return out
}

func replyKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	buttonRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		buttonRows = append(buttonRows, buttons)
	}

	markup := tgbotapi.NewReplyKeyboard(buttonRows...)
	markup.ResizeKeyboard = true
	markup.OneTimeKeyboard = true
	return markup
}
