package advisor

import (
	"fmt"
	"strings"

	"github.com/abhisek/careerquest/internal/locale"
)

const systemPrompt = `You are a friendly career counsellor for Indian school and college students. You know the Indian education system: streams, board exams, entrance exams such as JEE, NEET, CLAT, CAT, UPSC and GATE, and the careers they lead to.`

func buildUserMessage(question string, l locale.Locale) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("User Question: %s\n", question))
	b.WriteString(fmt.Sprintf(`
Instructions:
Provide a concise, helpful answer (2-4 sentences) in %s.
If needed, use general knowledge or context relevant to career guidance and Indian education.
Answer in plain text without markdown.`, languageName(l)))

	return b.String()
}

func languageName(l locale.Locale) string {
	if l == locale.Hindi {
		return "Hindi"
	}
	return "English"
}
