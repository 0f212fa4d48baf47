package domain

// TopicCategory determines which course collection a topic belongs to and
// what kind of items it carries.
type TopicCategory string

const (
	CategoryGrammar    TopicCategory = "grammar"
	CategoryVocabulary TopicCategory = "vocabulary"
	CategoryDialogue   TopicCategory = "dialogue"
)

func (c TopicCategory) String() string { return string(c) }

func (c TopicCategory) IsValid() bool {
	switch c {
	case CategoryGrammar, CategoryVocabulary, CategoryDialogue:
		return true
	}
	return false
}

// Categories lists all topic categories in their canonical order.
func Categories() []TopicCategory {
	return []TopicCategory{CategoryGrammar, CategoryVocabulary, CategoryDialogue}
}

// TopicStatus tracks whether a topic has been fully populated by the
// generation pipeline. Topics stay PENDING until their items are written,
// so interrupted generations leave a marker that cleanup can collect.
type TopicStatus string

const (
	TopicStatusPending TopicStatus = "PENDING"
	TopicStatusReady   TopicStatus = "READY"
)

func (s TopicStatus) String() string { return string(s) }

func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusPending, TopicStatusReady:
		return true
	}
	return false
}

// ItemKind distinguishes quiz questions from dialogue turns.
type ItemKind string

const (
	ItemKindQuiz ItemKind = "quiz"
	ItemKindTurn ItemKind = "turn"
)

func (k ItemKind) String() string { return string(k) }

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindQuiz, ItemKindTurn:
		return true
	}
	return false
}

// ChatRole tags a dialogue turn with its speaker.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

func (r ChatRole) String() string { return string(r) }

func (r ChatRole) IsValid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}
