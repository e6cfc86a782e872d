// Package chat turns free-text Russian planner requests into structured
// planner items: a fixed regex rule table first, a remote chat model as the
// fallback.
package chat

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mkravets/planik/internal/model"
)

// rule couples a compiled pattern with the kind of item it yields. Event
// rules capture (title, time); task and note rules capture (title).
type rule struct {
	re   *regexp.Regexp
	kind string
}

// Patterns run against the lower-cased message, in table order. The title
// groups deliberately exclude the connector letters, so a title containing
// them is truncated at the connector; that boundary is part of the defined
// behavior.
var rules = []rule{
	{regexp.MustCompile(`(?:запланировать|добавить|запланируй|добавь|создать|создай)\s+(?:встречу|событие|мероприятие|звонок|созвон|совещание)\s+(?:с|по|на тему)?\s+([^в]+?)\s+(?:в|на)\s+(\d{1,2}[:.]\d{2})`), model.ItemEvent},
	{regexp.MustCompile(`(?:встреча|событие|мероприятие|звонок|созвон|совещание)\s+(?:с|по|на тему)?\s+([^в]+?)\s+(?:в|на)\s+(\d{1,2}[:.]\d{2})`), model.ItemEvent},
	{regexp.MustCompile(`(?:добавить|добавь|создать|создай)\s+(?:задачу|задание|дело|пункт)\s*(?::|-)?\s*([^на]+?)(?:\s+на\s+|$)`), model.ItemTask},
	{regexp.MustCompile(`(?:напомни(?:ть)?|не забыть)\s+(?:про|о|об|)?\s*([^на]+?)(?:\s+на\s+|$)`), model.ItemTask},
	{regexp.MustCompile(`(?:добавить|добавь|создать|создай)\s+(?:заметку|запись|примечание)\s*(?::|-)?\s*([^на]+?)(?:\s+на\s+|$)`), model.ItemNote},
}

// Messages starting with these tokens never trigger the fallback task.
var questionPrefixes = []string{
	"что", "как", "почему", "где", "когда", "кто", "привет", "здравствуй",
}

// Extract applies the rule table to a message and collects every match, in
// table order. When nothing matches and the message still looks like a
// request (two or more words, not a question or greeting), the whole
// message becomes a single task: capturing ambiguous input beats silently
// dropping it.
func Extract(message string) []model.PlannerItem {
	lower := strings.ToLower(message)

	var items []model.PlannerItem
	for _, r := range rules {
		for _, m := range r.re.FindAllStringSubmatch(lower, -1) {
			item := model.PlannerItem{
				Type:  r.kind,
				Title: capitalize(m[1]),
			}
			if r.kind == model.ItemEvent {
				t := NormalizeTime(m[2])
				item.Time = &t
			}
			items = append(items, item)
		}
	}

	if len(items) == 0 && wordCount(message) >= 2 && !startsWithQuestion(lower) {
		items = append(items, model.PlannerItem{
			Type:  model.ItemTask,
			Title: capitalize(message),
		})
	}

	return items
}

// NormalizeTime converts "H.MM"/"H:MM" forms to zero-padded "HH:MM".
func NormalizeTime(t string) string {
	t = strings.ReplaceAll(t, ".", ":")
	if i := strings.IndexByte(t, ':'); i == 1 {
		t = "0" + t
	}
	return t
}

// capitalize upper-cases the first rune and lower-cases the rest, matching
// the extraction pipeline's title normalization.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func startsWithQuestion(lower string) bool {
	for _, prefix := range questionPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
