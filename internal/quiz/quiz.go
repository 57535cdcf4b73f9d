// Package quiz holds the quiz data model and the in-memory session
// engine: countdown, answer selection, navigation and scoring. Nothing
// in here touches the network.
package quiz

// Question is one multiple-choice question. CorrectAnswer indexes into
// Options and is part of the loaded quiz; it is only consulted at
// scoring time and never sent anywhere.
type Question struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Quiz is a static set of questions for one session.
type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// SampleQuiz returns the practice quiz bundled with the client, used
// when no assignment quiz is selected.
func SampleQuiz() Quiz {
	return Quiz{
		Title: "Computing Fundamentals Quiz",
		Questions: []Question{
			{
				ID:     1,
				Prompt: "What does HTTP stand for?",
				Options: []string{
					"HyperText Transfer Protocol",
					"High Throughput Transport Protocol",
					"HyperText Transmission Program",
					"Host Transfer Text Protocol",
				},
				CorrectAnswer: 0,
			},
			{
				ID:     2,
				Prompt: "Which data structure serves elements first-in, first-out?",
				Options: []string{"Stack", "Queue", "Tree", "Hash table"},
				CorrectAnswer: 1,
			},
			{
				ID:     3,
				Prompt: "What is a CSS stylesheet used for?",
				Options: []string{
					"Storing data",
					"Describing page structure",
					"Describing page presentation",
					"Running server logic",
				},
				CorrectAnswer: 2,
			},
			{
				ID:     4,
				Prompt: "What is the decimal number 5 in binary?",
				Options: []string{"100", "101", "110", "111"},
				CorrectAnswer: 1,
			},
			{
				ID:     5,
				Prompt: "Which of these is a relational database?",
				Options: []string{"Redis", "MongoDB", "PostgreSQL", "Kafka"},
				CorrectAnswer: 2,
			},
		},
	}
}
