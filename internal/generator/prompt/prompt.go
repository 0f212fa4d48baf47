// Package prompt renders generation requests into instruction strings for
// the completion function. Every function is pure and documents the exact
// output shape the pipeline parses; content-language rules (lessons in the
// target language, explanations in the native language) live here too.
package prompt

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// GrammarTitles asks for a JSON array of single-key objects mapping a
// grammar topic title to its description.
func GrammarTitles(learningLang string, exclude []string, count int, nativeLang string) string {
	return fmt.Sprintf(`Generate a list of topics related to %s grammar. Do not generate topics related to this list: %s.

Output ONLY a JSON array in this exact format:
[ { "<topic for grammar>": "<description>" } ]

For example: [ { "Verb": "Words that express actions, states, or occurrences. They can be categorized into action verbs, linking verbs, and auxiliary verbs." } ]

Rules:
- Be extremely specific, as if a beginner is learning grammar; strong basics matter most
- Each array element is an object with exactly one key (the topic title) and one value (the description)
- Generate exactly %d topics
- Write the descriptions in %s, the learner's native language
- Output ONLY the JSON array, no markdown, no explanations`,
		learningLang, excludeList(exclude), count, nativeLang)
}

// VocabularyTitles asks for a JSON array of single-key objects mapping a
// vocabulary topic title to a "<n> words • <level>" value.
func VocabularyTitles(learningLang string, exclude []string, count int, interest, nativeLang, level string) string {
	return fmt.Sprintf(`Generate a list of topics for %s vocabulary. Do not generate topics related to this list: %s.
Base the topics on this user interest: %q. The user's proficiency level is %q and their native language is %s.

Output ONLY a JSON array in this exact format:
[ { "<topic for vocabulary>": "<number of words> words • <proficiency level>" } ]

For example: [ { "Travel": "32 words • A1" } ]

Rules:
- Each array element is an object with exactly one key (the topic title) and one value ("<n> words • <level>")
- Generate exactly %d topics
- Write the topic titles in %s, the learner's native language
- Output ONLY the JSON array, no markdown, no explanations`,
		learningLang, excludeList(exclude), interest, level, nativeLang, count, nativeLang)
}

// DialogueScenario asks for a single JSON object mapping a real-life
// scenario title to a short description.
func DialogueScenario(learningLang string, exclude []string, interest, nativeLang, level string) string {
	return fmt.Sprintf(`Generate one real-life scenario for a %s learner who wants to learn the language because of this: %q. Do not generate a scenario related to this list: %s.
Their native language is %s and their proficiency level is %q.

Output ONLY a single JSON object in this exact format:
{ "<scenario title>": "<short description>" }

For example: { "Ordering at a café": "Practice ordering drinks and snacks, asking about the menu, and paying politely at a busy café." }

Rules:
- The key is the scenario title; the value describes what the scenario is about
- The description must be more than 20 and less than 30 words
- The scenario must relate to the user's interest
- Write the title and description in %s, the learner's native language
- Output ONLY the JSON object, no markdown, no explanations`,
		learningLang, interest, excludeList(exclude), nativeLang, level, nativeLang)
}

// LessonContent asks for the markdown lesson body of one topic.
func LessonContent(title, description string, category domain.TopicCategory, learningLang, nativeLang, level string) string {
	return fmt.Sprintf(`Write a complete %s lesson for the topic %q (%s) in %s.
The learner's native language is %s and their proficiency level is %q.

Rules:
- Use markdown with headers, lists, and tables where they help
- Examples and exercise material must be in %s, the target language
- Explanations of the examples must be in %s, the learner's native language
- Keep the difficulty appropriate for the stated proficiency level
- Output ONLY the lesson markdown, no surrounding commentary`,
		category, title, description, learningLang, nativeLang, level, learningLang, nativeLang)
}

// QuizItems asks for a JSON array of quiz questions for one topic.
// The correct option is always first; the caller stores it at index 0 and
// shuffles for display.
func QuizItems(title string, category domain.TopicCategory, learningLang, nativeLang string, count int) string {
	return fmt.Sprintf(`Generate quiz questions for the %s topic %q in %s.

Output ONLY a JSON array in this exact format:
[ { "question": "<question text>", "options": ["<correct>", "<wrong>", "<wrong>", "<wrong>"], "explanation": "<why the correct option is right>" } ]

Rules:
- Generate exactly %d questions
- Each question has exactly 4 options and the CORRECT option is ALWAYS FIRST
- Questions test the material in %s, the target language
- Explanations must be in %s, the learner's native language
- Output ONLY the JSON array, no markdown, no explanations`,
		category, title, learningLang, count, learningLang, nativeLang)
}

// DialogueRoles asks for the two speaking roles and the scenario body of a
// dialogue topic.
func DialogueRoles(title, description, learningLang string) string {
	return fmt.Sprintf(`For a %s practice dialogue based on the scenario %q (%s), name the two speaking roles and expand the scenario.

Output ONLY a single JSON object in this exact format:
{ "roles": ["<role the learner plays>", "<role the assistant plays>"], "scenario": "<two or three sentences setting the scene>" }

Output ONLY the JSON object, no markdown, no explanations`,
		learningLang, title, description)
}

// DialogueSystemInstruction asks for the system instruction that will
// steer the assistant for the whole conversation.
func DialogueSystemInstruction(title, scenario, learnerRole, assistantRole, learningLang, nativeLang, level string) string {
	return fmt.Sprintf(`Write a system instruction for a language-practice chatbot.

The scenario is %q: %s
The learner plays %q; the chatbot plays %q.
The conversation is in %s. The learner's native language is %s and their proficiency level is %q.

The instruction must tell the chatbot to stay in character, keep replies short and level-appropriate, and gently correct the learner's mistakes in %s.

Output ONLY the instruction text, no surrounding commentary`,
		title, scenario, learnerRole, assistantRole, learningLang, nativeLang, level, nativeLang)
}

// DialogueOpening asks for the assistant's first line of the conversation.
func DialogueOpening(scenario, assistantRole, learningLang, level string) string {
	return fmt.Sprintf(`You are %q in this scenario: %s
Write your opening line to start the conversation in %s, appropriate for a learner at level %q.

Output ONLY the opening line, nothing else`,
		assistantRole, scenario, learningLang, level)
}

func excludeList(exclude []string) string {
	if len(exclude) == 0 {
		return "[]"
	}
	return "[" + strings.Join(exclude, ", ") + "]"
}
