package chat

import (
	"strings"

	"github.com/mkravets/planik/internal/model"
)

// Fixed assistant replies. The assistant speaks Russian; the strings are
// part of the product surface and are not localized.
const (
	replyClarify = "Я не смог определить, что нужно добавить в ежедневник. " +
		"Пожалуйста, уточните, что вы хотите запланировать. " +
		"Например: 'Добавь встречу с Иваном в 15:00' или 'Напомни купить молоко'."
	replyHeader  = "Я добавил в ваш ежедневник:\n\n"
	replyClosing = "\nЧто-нибудь еще добавить в ежедневник?"

	replyParseError    = "Извините, произошла ошибка при обработке вашего запроса. Пожалуйста, попробуйте еще раз."
	replyUnprocessable = "Извините, я не смог обработать ваш запрос. Пожалуйста, попробуйте сформулировать его иначе."
)

// FormatResponse renders a confirmation for the extracted items, one line
// per item. With no items it returns the fixed clarification prompt.
func FormatResponse(items []model.PlannerItem) string {
	if len(items) == 0 {
		return replyClarify
	}

	var b strings.Builder
	b.WriteString(replyHeader)
	for _, item := range items {
		switch item.Type {
		case model.ItemEvent:
			b.WriteString("📅 **Событие**: " + item.Title)
			if item.Time != nil && *item.Time != "" {
				b.WriteString(" в " + *item.Time)
			}
			b.WriteString("\n")
		case model.ItemTask:
			b.WriteString("✅ **Задача**: " + item.Title + "\n")
		case model.ItemNote:
			b.WriteString("📝 **Заметка**: " + item.Title + "\n")
		}
	}
	b.WriteString(replyClosing)
	return b.String()
}
