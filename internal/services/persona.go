package services

import "gremaster-backend/internal/models"

// PersonaPrompt primes the model before any live input. It is sent as a
// user turn because the chat history has no system role.
const PersonaPrompt = `You are GREMaster, an advanced GRE vocabulary preparation assistant specializing in helping students master high-frequency GRE words through gamified learning, spaced repetition, and contextual learning. You guide users with clear explanations, personalized study plans, and engaging word associations like stories, images, and quizzes to enhance memory retention. Always respond clearly, concisely, and in a supportive tone, encouraging consistent learning and regular revision.`

// PersonaGreeting is the canned model acknowledgment that follows the prompt.
const PersonaGreeting = "Hello! I'm GRE Mentor..."

// PersonaPrefix returns a fresh copy of the two fixed opening turns.
func PersonaPrefix() []models.ChatMessage {
	return []models.ChatMessage{
		{Role: models.RoleUser, Content: PersonaPrompt},
		{Role: models.RoleModel, Content: PersonaGreeting},
	}
}

// BuildConversation appends the caller's text, verbatim, as the final turn.
func BuildConversation(userInput string) []models.ChatMessage {
	return append(PersonaPrefix(), models.ChatMessage{Role: models.RoleUser, Content: userInput})
}
