package placement

// Question is one prompt of the placement test.
type Question struct {
	ID    int
	Type  string
	Text  string
	Focus string
}

// Questions is the fixed four-step assessment.
var Questions = []Question{
	{
		ID:    1,
		Type:  "pronunciation",
		Text:  "Please read this sentence aloud: 'The quick brown fox jumps over the lazy dog.'",
		Focus: "Basic pronunciation and rhythm",
	},
	{
		ID:    2,
		Type:  "stress",
		Text:  "Say this word with correct stress: 'PHOTOGRAPH' vs 'photoGRAPHic'",
		Focus: "Word stress patterns",
	},
	{
		ID:    3,
		Type:  "intonation",
		Text:  "Ask this question with rising intonation: 'Are you coming to the party?'",
		Focus: "Question intonation",
	},
	{
		ID:    4,
		Type:  "rhythm",
		Text:  "Read with natural rhythm: 'I would have gone to the store if I had had more time.'",
		Focus: "Connected speech and rhythm",
	},
}
