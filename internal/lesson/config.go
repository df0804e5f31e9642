package lesson

// Params configures one lesson run.
type Params struct {
	// Subject is the broad class subject, e.g. "First Industrial Revolution".
	Subject string `json:"subject"`

	// Topic is the lesson's theme within the subject.
	Topic string `json:"topic"`

	// LearningStyle shapes how the coordinator explains material.
	LearningStyle string `json:"learning_style"`

	// TopicCount is how many focal points the coordinator proposes.
	TopicCount int `json:"topic_count"`

	// QuestionCount is how many questions each quiz asks.
	QuestionCount int `json:"question_count"`
}

// DefaultParams returns the stock history lesson.
func DefaultParams() Params {
	return Params{
		Subject:       "First Industrial Revolution",
		Topic:         "The Invention of the Steam Engine",
		LearningStyle: "Visual and Auditory",
		TopicCount:    2,
		QuestionCount: 1,
	}
}

func (p Params) withDefaults() Params {
	def := DefaultParams()
	if p.Subject == "" {
		p.Subject = def.Subject
	}
	if p.Topic == "" {
		p.Topic = def.Topic
	}
	if p.LearningStyle == "" {
		p.LearningStyle = def.LearningStyle
	}
	if p.TopicCount < 1 {
		p.TopicCount = def.TopicCount
	}
	if p.QuestionCount < 1 {
		p.QuestionCount = def.QuestionCount
	}
	return p
}
