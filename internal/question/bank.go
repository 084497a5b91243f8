package question

// builtinBank is the generic question set used when no other source yields
// any usable question. Kept in the raw shape so it flows through the same
// normalization path as backend payloads.
var builtinBank = []Raw{
	{
		Prompt:     "Tell me about a time you had to make a difficult decision with incomplete information.",
		Type:       "behavioral",
		Category:   "Decision Making",
		Difficulty: "medium",
		Skills:     []string{"Leadership", "Analytical Thinking"},
	},
	{
		Prompt:     "How would you improve a product you use every day?",
		Type:       "product_design",
		Category:   "Product Sense",
		Difficulty: "medium",
		Skills:     []string{"Product Sense", "User Empathy"},
	},
	{
		Prompt:     "Our key engagement metric dropped 10% week over week. How do you investigate?",
		Type:       "analytical",
		Category:   "Metrics",
		Difficulty: "hard",
		Skills:     []string{"Analytical Thinking", "Data Analysis"},
	},
	{
		Prompt:     "Describe a project where you had to align multiple stakeholders with conflicting goals.",
		Type:       "behavioral",
		Category:   "Collaboration",
		Difficulty: "medium",
		Skills:     []string{"Communication", "Stakeholder Management"},
	},
	{
		Prompt:     "Walk me through how you would prioritize a backlog with twice as many requests as capacity.",
		Type:       "strategic",
		Category:   "Prioritization",
		Difficulty: "medium",
		Skills:     []string{"Prioritization", "Strategy"},
	},
	{
		Prompt:     "Explain a technical concept you know well to a non-technical audience.",
		Type:       "technical",
		Category:   "Communication",
		Difficulty: "easy",
		Skills:     []string{"Communication", "Technical Depth"},
	},
	{
		Prompt:     "Tell me about a time you received hard feedback. What did you change?",
		Type:       "behavioral",
		Category:   "Growth",
		Difficulty: "easy",
		Skills:     []string{"Self Awareness"},
	},
	{
		Prompt:     "How would you decide whether to build, buy, or partner for a new capability?",
		Type:       "strategic",
		Category:   "Strategy",
		Difficulty: "hard",
		Skills:     []string{"Strategy", "Analytical Thinking"},
	},
	{
		Prompt:     "Design a dashboard for a team lead who has five minutes a day to look at it.",
		Type:       "product_design",
		Category:   "Product Sense",
		Difficulty: "medium",
		Skills:     []string{"Product Sense", "Prioritization"},
	},
	{
		Prompt:     "What is the riskiest assumption in your current project, and how would you test it?",
		Type:       "analytical",
		Category:   "Risk",
		Difficulty: "hard",
		Skills:     []string{"Analytical Thinking", "Strategy"},
	},
}

// BuiltinBank returns a copy of the generic question bank.
func BuiltinBank() []Raw {
	return append([]Raw(nil), builtinBank...)
}
