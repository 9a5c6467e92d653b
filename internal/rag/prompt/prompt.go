package prompt

import (
	"strings"

	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
)

const contextSlot = "{context}"

// SystemPrompt is the fixed instruction sent with every question.
const SystemPrompt = "You are an Medical assistant for question-answering tasks. " +
	"Use the following pieces of retrieved context to answer " +
	"the question. If you don't know the answer, say that you " +
	"don't know. Use three sentences maximum and keep the " +
	"answer concise." +
	"\n\n" +
	contextSlot

const documentSeparator = "\n\n"

// Template pairs a system instruction with the human turn.
type Template struct {
	system string
}

func NewTemplate(system string) Template {
	return Template{system: system}
}

func Default() Template {
	return NewTemplate(SystemPrompt)
}

// Format stuffs every retrieved document into the context slot and returns
// the system and human messages.
func (t Template) Format(input string, docs []chatModel.Document) (system string, human string) {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		if content := strings.TrimSpace(d.Content); content != "" {
			parts = append(parts, content)
		}
	}
	stuffed := strings.Join(parts, documentSeparator)

	if strings.Contains(t.system, contextSlot) {
		system = strings.ReplaceAll(t.system, contextSlot, stuffed)
	} else if stuffed != "" {
		system = t.system + documentSeparator + stuffed
	} else {
		system = t.system
	}
	return system, input
}
