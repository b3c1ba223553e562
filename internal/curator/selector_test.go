package curator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

func id(v int64) *int64 { return &v }

func TestSelect_ContextIgnoresText(t *testing.T) {
	for _, channel := range []string{models.InteractionVoice, models.InteractionText, models.InteractionGesture} {
		want := contextRule.Responses[channel]
		for _, input := range []string{"", "tell me about AI", "hello", "user pointed at artifact"} {
			got, topic := Select(input, channel, id(42))
			assert.Equal(t, want, got, "channel=%s input=%q", channel, input)
			assert.Equal(t, TopicContext, topic)
		}
	}
}

func TestSelect_ContextGestureMentionsSpace(t *testing.T) {
	got := SelectResponse("user pointed at artifact", models.InteractionGesture, id(42))
	assert.Regexp(t, "(?i)gesture", got)
	assert.Regexp(t, "(?i)3D space", got)
}

func TestSelect_UnknownChannelUsesDefault(t *testing.T) {
	assert.Equal(t, contextRule.Default, SelectResponse("x", "telepathy", id(1)))
	assert.Equal(t, fallbackRule.Default, SelectResponse("nothing matches", "telepathy", nil))
}

func TestSelect_Topics(t *testing.T) {
	cases := []struct {
		input   string
		channel string
		topic   string
	}{
		{"I want to explore AI projects", models.InteractionText, TopicAI},
		{"Tell me about artificial intelligence", models.InteractionVoice, TopicAI},
		{"Show me data engineering projects", models.InteractionText, TopicData},
		{"show me visualization projects", models.InteractionText, TopicVisualization},
		{"anything visual?", models.InteractionGesture, TopicVisualization},
		{"academic papers", models.InteractionText, TopicResearch},
		{"what can you do?", models.InteractionText, TopicHelp},
		{"list COMMANDS", models.InteractionVoice, TopicHelp},
		{"Hi there", models.InteractionVoice, TopicGreeting},
		{"where do I start", models.InteractionText, TopicGreeting},
		{"nice colors", models.InteractionText, TopicFallback},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			_, topic := Select(tc.input, tc.channel, nil)
			assert.Equal(t, tc.topic, topic)
		})
	}
}

func TestSelect_PriorityOrder(t *testing.T) {
	_, topic := Select("Hello, can you show me AI projects?", models.InteractionVoice, nil)
	assert.Equal(t, TopicAI, topic)

	_, topic = Select("help me with data", models.InteractionText, nil)
	assert.Equal(t, TopicData, topic)
}

func TestSelect_WholeWordsOnly(t *testing.T) {
	_, topic := Select("this said nothing", models.InteractionText, nil)
	assert.Equal(t, TopicFallback, topic)
}

func TestSelect_ChannelVariants(t *testing.T) {
	voice := SelectResponse("ai", models.InteractionVoice, nil)
	text := SelectResponse("ai", models.InteractionText, nil)

	assert.Equal(t, topicRules[0].Responses[models.InteractionVoice], voice)
	assert.Equal(t, topicRules[0].Default, text)
	assert.NotEqual(t, voice, text)
	assert.Regexp(t, "(?i)AI projects", text)
	assert.Regexp(t, "(?i)guide", text)

	help := SelectResponse("what can you do?", models.InteractionText, nil)
	assert.Regexp(t, "(?i)help", help)
	assert.Regexp(t, "(?i)navigate", help)
}

func TestSelect_Deterministic(t *testing.T) {
	first := SelectResponse("ai", models.InteractionVoice, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectResponse("ai", models.InteractionVoice, nil))
	}
}

func TestSelect_FallbackByChannel(t *testing.T) {
	assert.Equal(t, fallbackRule.Responses[models.InteractionVoice], SelectResponse("", models.InteractionVoice, nil))
	assert.Equal(t, fallbackRule.Responses[models.InteractionGesture], SelectResponse("", models.InteractionGesture, nil))
	assert.Equal(t, fallbackRule.Responses[models.InteractionText], SelectResponse("", models.InteractionText, nil))
}

func TestRules_ReturnsCopy(t *testing.T) {
	rules := Rules()
	rules[0].Topic = "mutated"
	assert.Equal(t, TopicAI, topicRules[0].Topic)
	assert.Len(t, rules, 6)
}
