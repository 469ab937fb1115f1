package session

// State is a step of the session state machine. Transitions only move
// forward; Done and Failed are terminal.
type State int

const (
	Init State = iota
	TaxonomyLoaded
	Bootstrapped
	TopicCollected
	SelectionMade
	EnhancedPromptObtained
	AnswerObtained
	Done
	Failed
)

var stateNames = [...]string{
	Init:                   "init",
	TaxonomyLoaded:         "taxonomy_loaded",
	Bootstrapped:           "bootstrapped",
	TopicCollected:         "topic_collected",
	SelectionMade:          "selection_made",
	EnhancedPromptObtained: "enhanced_prompt_obtained",
	AnswerObtained:         "answer_obtained",
	Done:                   "done",
	Failed:                 "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool { return s == Done || s == Failed }
