// Package curator подбирает ответ виртуального куратора галереи.
// Ответ зависит только от текста реплики, канала и наличия работы в фокусе.
package curator

import (
	"strings"
	"unicode"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// Темы правил.
const (
	TopicContext       = "context"
	TopicAI            = "ai"
	TopicData          = "data"
	TopicVisualization = "visualization"
	TopicResearch      = "research"
	TopicHelp          = "help"
	TopicGreeting      = "greeting"
	TopicFallback      = "fallback"
)

// Rule одна строка таблицы правил: набор ключевых фраз и ответы по каналам.
// Если для канала нет отдельного ответа, используется Default.
type Rule struct {
	Topic     string
	Keywords  []string
	Responses map[string]string
	Default   string
}

func (r Rule) responseFor(channel string) string {
	if resp, ok := r.Responses[channel]; ok {
		return resp
	}
	return r.Default
}

func (r Rule) matches(normalized string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(normalized, " "+kw+" ") {
			return true
		}
	}
	return false
}

// contextRule срабатывает, когда посетитель смотрит на конкретную работу. Текст не учитывается.
var contextRule = Rule{
	Topic: TopicContext,
	Responses: map[string]string{
		models.InteractionVoice:   "I can hear you're interested in this project. Let me share some details about what makes this work special.",
		models.InteractionGesture: "I see you're exploring this artifact with a gesture. Here's what you should know about the technology behind it and its place in the 3D space.",
		models.InteractionText:    "Great question about this project! Here's some insight into the development process and key features.",
	},
	Default: "Thank you for your interest in this project. Let me guide you through its key components.",
}

// topicRules проверяются сверху вниз, побеждает первое совпадение.
var topicRules = []Rule{
	{
		Topic:    TopicAI,
		Keywords: []string{"ai", "artificial intelligence"},
		Responses: map[string]string{
			models.InteractionVoice: "Let me guide you to the AI projects. Each one shows how Corey applies machine learning to real problems.",
		},
		Default: "Here are the AI projects in the gallery. I can guide you through the models and the ideas behind them.",
	},
	{
		Topic:    TopicData,
		Keywords: []string{"data", "engineering"},
		Responses: map[string]string{
			models.InteractionVoice: "The data engineering projects are right ahead. Ask me about pipelines, storage or scale.",
		},
		Default: "The data engineering projects cover pipelines and platforms. Pick one to see how the data flows.",
	},
	{
		Topic:    TopicVisualization,
		Keywords: []string{"visualization", "visual"},
		Responses: map[string]string{
			models.InteractionVoice: "Let me show you the visualization projects. They turn complex data into something you can explore.",
		},
		Default: "These visualization projects turn complex data into interactive views. Select any of them to take a closer look.",
	},
	{
		Topic:    TopicResearch,
		Keywords: []string{"research", "academic"},
		Responses: map[string]string{
			models.InteractionVoice: "The research work is collected in this wing. I can summarize any paper or experiment for you.",
		},
		Default: "The research section collects papers and experiments. Open one to read the summary and findings.",
	},
	{
		Topic:    TopicHelp,
		Keywords: []string{"help", "what can you do", "commands"},
		Responses: map[string]string{
			models.InteractionVoice: "I can help you navigate the gallery. Say a topic like AI, data or research and I'll take you there.",
		},
		Default: "I can help you navigate the gallery: ask about AI, data engineering, visualization or research projects.",
	},
	{
		Topic:    TopicGreeting,
		Keywords: []string{"hello", "hi", "start"},
		Responses: map[string]string{
			models.InteractionVoice: "Hello and welcome! I'm the curator of this gallery. Where would you like to start?",
		},
		Default: "Hi! I'm the curator of this gallery. Ask me about any project or topic to get started.",
	},
}

// fallbackRule используется, когда ни одна тема не подошла.
var fallbackRule = Rule{
	Topic: TopicFallback,
	Responses: map[string]string{
		models.InteractionVoice:   "Welcome to Corey's portfolio! I'm here to help you explore his work. What would you like to know about?",
		models.InteractionGesture: "I notice you're browsing the gallery. Feel free to interact with any project that catches your eye.",
		models.InteractionText:    "Hello! I'm the AI curator for this portfolio. I can help you discover projects that match your interests.",
	},
	Default: "Welcome! I'm here to guide you through Corey's portfolio and answer any questions you might have.",
}

// Rules возвращает таблицу тематических правил в порядке приоритета.
func Rules() []Rule {
	out := make([]Rule, len(topicRules))
	copy(out, topicRules)
	return out
}

// Select возвращает ответ куратора и тему сработавшего правила.
func Select(userInput, channel string, contextArtifactID *int64) (response, topic string) {
	if contextArtifactID != nil {
		return contextRule.responseFor(channel), contextRule.Topic
	}

	normalized := normalize(userInput)
	for _, rule := range topicRules {
		if rule.matches(normalized) {
			return rule.responseFor(channel), rule.Topic
		}
	}

	return fallbackRule.responseFor(channel), fallbackRule.Topic
}

// SelectResponse то же, что Select, без темы.
func SelectResponse(userInput, channel string, contextArtifactID *int64) string {
	response, _ := Select(userInput, channel, contextArtifactID)
	return response
}

// normalize приводит текст к нижнему регистру, заменяет знаки на пробелы
// и обрамляет пробелами, чтобы ключевые слова сравнивались целиком.
func normalize(input string) string {
	fields := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return " " + strings.Join(fields, " ") + " "
}
