package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be positive (got %v)", c.Auth.SessionTTL)
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 1 {
		return fmt.Errorf("llm.temperature must be in [0, 1] (got %v)", c.LLM.Temperature)
	}
	for name, v := range map[string]int64{
		"llm.title_max_tokens":  c.LLM.TitleMaxTokens,
		"llm.lesson_max_tokens": c.LLM.LessonMaxTokens,
		"llm.quiz_max_tokens":   c.LLM.QuizMaxTokens,
		"llm.reply_max_tokens":  c.LLM.ReplyMaxTokens,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive (got %d)", name, v)
		}
	}

	if c.Generation.TopicsPerRequest <= 0 {
		return fmt.Errorf("generation.topics_per_request must be positive (got %d)", c.Generation.TopicsPerRequest)
	}
	if c.Generation.QuizPerTopic <= 0 {
		return fmt.Errorf("generation.quiz_per_topic must be positive (got %d)", c.Generation.QuizPerTopic)
	}
	if c.Generation.PendingRetention <= 0 {
		return fmt.Errorf("generation.pending_retention must be positive (got %v)", c.Generation.PendingRetention)
	}

	return nil
}
