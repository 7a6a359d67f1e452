package repository

import "literacy_edu_backend/internal/model"

// thinkFirstFramework guides students through structured planning before
// they start writing.
var thinkFirstFramework = []model.ThinkFirstStep{
	{
		Name:        "Understand the Situation",
		Prompt:      "What's happening? What background does your reader need to know?",
		Description: "Set the scene so your reader understands the context.",
	},
	{
		Name:        "Identify the Challenge",
		Prompt:      "What's the problem, tension, or interesting question here?",
		Description: "What makes this worth writing about? What needs to be resolved or explained?",
	},
	{
		Name:        "Focus Your Message",
		Prompt:      "If you could only tell your reader ONE thing, what would it be?",
		Description: "This is your main point. Everything else should support this.",
	},
	{
		Name:        "Build Your Support",
		Prompt:      "What are 2-4 different reasons or points that support your main message?",
		Description: "Group similar ideas together. Make sure each point is different and together they cover everything important.",
	},
	{
		Name:        "Check Your Logic",
		Prompt:      "Does each supporting point answer 'why?' or 'how?' about your main message?",
		Description: "Your reader should be able to follow your thinking step by step.",
	},
}

// structureCheckQuestions help students audit their own logical structure
// before submitting.
var structureCheckQuestions = []string{
	"Can you state your main message in ONE sentence? Is that sentence in your opening?",
	"For each paragraph: what ONE point does it make? Write it in the margin.",
	"Do your paragraph points answer 'why?' or 'how?' about your main message?",
	"Look at your paragraph points: are they all different, or do some repeat the same idea?",
	"Together, do your points cover everything important? Is anything major missing?",
	"Can a reader follow your logic from start to finish without getting confused?",
}

// writingCatalog returns the built-in writing prompts.
func writingCatalog() []model.WritingPrompt {
	return []model.WritingPrompt{
		{
			ID:    "narrative_1",
			Title: "A Moment That Changed Everything",
			Grade: "7-8",
			Type:  "Narrative Writing",
			Prompt: `Write a narrative about a moment when you (or a character) faced a difficult decision
that changed everything.

**Start with the moment of change** - hook your reader by showing why this moment matters.
Then build the story around it.

Your story should include:
- An opening that shows the reader why this moment is important
- The situation: who, where, when, and what was happening
- The challenge: what made the decision so difficult
- The choice: what happened and why
- The change: how things were different after

Your narrative should be 3-5 paragraphs in length.`,
			ThinkFirstGuide: model.ThinkFirstGuide{
				Situation: "Who is your character? What was life like before the big moment?",
				Challenge: "What difficult decision did they face? What made it hard?",
				Focus:     "What's the ONE big change or lesson from this story?",
				Support: []string{
					"What events led to the decision?",
					"What did the character think and feel?",
					"What happened because of their choice?",
				},
				LogicCheck: "Does each part of your story connect to the main change?",
			},
			PlanningQuestions: []string{
				"What is the ONE big change or lesson in your story? (Write this first!)",
				"What situation led to the difficult decision?",
				"What made this decision so hard? (the challenge)",
				"What 2-3 key events show how your character changed?",
				"Do your events connect logically - does each one lead to the next?",
			},
			StructureTips: []string{
				"Start with the moment that matters most - hook your reader immediately",
				"Every scene should connect to your main message about change",
				"Group related events together in the same paragraph",
				"Make sure your events don't repeat the same idea - each should add something new",
			},
			SuccessCriteria: []string{
				"Opens with a clear hook that shows why this story matters",
				"Each paragraph has ONE clear purpose that supports the main message",
				"Events are grouped logically and don't overlap",
				"The reader can follow your thinking from beginning to end",
				"Vivid details that help readers visualize the story",
				"Resolution clearly connects back to your opening",
				"Correct spelling, grammar, and punctuation",
			},
			CurriculumAlignment: []string{"developing_ideas", "form_and_style", "conventions"},
			WordMinimum:         250,
			WordMaximum:         500,
		},
		{
			ID:    "persuasive_1",
			Title: "Screen Time: Help or Harm?",
			Grade: "7-8",
			Type:  "Opinion/Persuasive Writing",
			Prompt: `Many adults worry that teenagers spend too much time on screens. Others argue that
screen time can be educational and beneficial.

**Lead with your answer.** State your position clearly in your first paragraph, then
prove why you're right.

Your essay should include:
- Your main argument stated clearly upfront (don't make readers guess!)
- 2-3 different reasons that each support your position
- Evidence or examples for each reason (each reason answers "why?" about your main point)
- Brief acknowledgment of the other side (and why your view is still stronger)
- A conclusion that reinforces your main message

Your essay should be 4-5 paragraphs in length.`,
			ThinkFirstGuide: model.ThinkFirstGuide{
				Situation: "What's the debate about screen time? Why does it matter?",
				Challenge: "Why do people disagree? What makes this complicated?",
				Focus:     "What's YOUR answer? (State this clearly - this is your thesis!)",
				Support: []string{
					"Reason 1: Why is your position correct? (First strongest point)",
					"Reason 2: What's another different reason? (Don't repeat!)",
					"Reason 3: What else supports your view? (Covers new ground)",
				},
				LogicCheck: "Does each reason answer 'why?' about your main position? Are they different from each other?",
			},
			PlanningQuestions: []string{
				"What is your MAIN ARGUMENT in one sentence? (Write this first!)",
				"What's happening with screen time that makes people concerned?",
				"What's the challenge - why do people disagree about this?",
				"List 2-3 DIFFERENT reasons supporting your position (no overlapping!)",
				"For each reason: does it directly answer 'why?' about your main argument?",
				"What would someone who disagrees say? Why is your view still stronger?",
			},
			StructureTips: []string{
				"Put your main argument in the first paragraph - don't make readers wait",
				"Each body paragraph = ONE reason (don't mix multiple reasons together)",
				"Your reasons should be different from each other, not variations of the same idea",
				"Together, your reasons should cover the most important points (nothing major missing)",
				"End by circling back to your main argument",
			},
			SuccessCriteria: []string{
				"Main argument is stated clearly in the introduction",
				"Each body paragraph focuses on ONE distinct supporting reason",
				"Reasons don't overlap - each adds something new",
				"Evidence directly supports each reason",
				"Reader can follow the logic: main point → reason → evidence",
				"Counterargument is addressed",
				"Conclusion reinforces the main argument",
				"Correct spelling, grammar, and punctuation",
			},
			CurriculumAlignment: []string{"developing_ideas", "form_and_style", "conventions"},
			WordMinimum:         300,
			WordMaximum:         600,
		},
		{
			ID:    "informational_1",
			Title: "Explaining a Process",
			Grade: "7-8",
			Type:  "Informational/Explanatory Writing",
			Prompt: `Think of something you know how to do well—it could be a hobby, a skill, a game,
or any process you can explain clearly.

**Start with the big picture.** Tell readers what they'll learn and why it matters
before diving into details.

Your essay should include:
- An opening that explains what this process achieves and why it's useful
- Steps grouped into logical stages (not just a long list!)
- Each stage should answer "how?" about achieving the goal
- Specific details within each stage
- A conclusion that reminds readers of the main outcome

Your essay should be 4-5 paragraphs in length.`,
			ThinkFirstGuide: model.ThinkFirstGuide{
				Situation: "What process will you explain? Who would want to learn this?",
				Challenge: "What makes this tricky to learn? What do beginners struggle with?",
				Focus:     "What's the END RESULT readers will achieve? (State this upfront!)",
				Support: []string{
					"Stage 1: What's the first major phase? (Group related steps)",
					"Stage 2: What comes next? (A different phase, not just more steps)",
					"Stage 3: How do you finish? (Final phase to reach the goal)",
				},
				LogicCheck: "Does each stage answer 'how?' about reaching the goal? Are stages clearly different?",
			},
			PlanningQuestions: []string{
				"What will readers be able to DO after reading this? (State the goal first!)",
				"What situation are your readers in? Why would they want to learn this?",
				"What's challenging about this process?",
				"What are 2-4 major STAGES (not individual steps - group related steps together)?",
				"Does each stage directly help achieve the goal? (answers 'how?')",
				"Are your stages different from each other and in logical order?",
			},
			StructureTips: []string{
				"Start with the outcome - tell readers what they'll achieve",
				"Group small steps into bigger stages (don't list 15 tiny steps)",
				"Each paragraph = one stage (related steps grouped together)",
				"Stages should be different categories, not just 'more steps'",
				"Order matters: each stage builds on the previous one",
			},
			SuccessCriteria: []string{
				"Opening clearly states what readers will learn and why it matters",
				"Steps are grouped into logical stages (not just listed)",
				"Each stage is distinct and answers 'how?' about the goal",
				"Stages are in logical order - each builds on the last",
				"Specific helpful details within each stage",
				"Conclusion reminds readers of the outcome",
				"Correct spelling, grammar, and punctuation",
			},
			CurriculumAlignment: []string{"developing_ideas", "form_and_style", "conventions"},
			WordMinimum:         250,
			WordMaximum:         500,
		},
	}
}
