package service

import (
	"context"
	"encoding/json"
	"fmt"
	"literacy_edu_backend/internal/model"
	"literacy_edu_backend/internal/util"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// TextEvaluationBackend produces a rubric evaluation for a writing
// submission. Implementations: RemoteModelBackend and HeuristicBackend,
// selected once at startup from configuration.
type TextEvaluationBackend interface {
	Evaluate(ctx context.Context, prompt model.WritingPrompt, text string, metrics util.TextMetrics) (model.WritingEvaluation, error)
	AIPowered() bool
}

// evaluationSchema is what the remote model is asked to return. Output
// that extracts but does not validate is replaced by DefaultEvaluation.
const evaluationSchema = `{
	"type": "object",
	"required": ["overall_level", "overall_percentage", "categories", "overall_feedback", "top_priority"],
	"properties": {
		"overall_level": {"type": "integer", "minimum": 1, "maximum": 4},
		"overall_percentage": {"type": "integer", "minimum": 0, "maximum": 100},
		"categories": {
			"type": "object",
			"required": ["main_message", "logical_structure", "grouping", "conventions"],
			"properties": {
				"main_message": {"$ref": "#/definitions/category"},
				"logical_structure": {"$ref": "#/definitions/category"},
				"grouping": {"$ref": "#/definitions/category"},
				"conventions": {"$ref": "#/definitions/category"}
			}
		},
		"overall_feedback": {"type": "string"},
		"top_priority": {"type": "string"}
	},
	"definitions": {
		"category": {
			"type": "object",
			"required": ["level", "strength", "improvement"],
			"properties": {
				"level": {"type": "integer", "minimum": 1, "maximum": 4},
				"strength": {"type": "string"},
				"improvement": {"type": "string"}
			}
		}
	}
}`

var compiledEvaluationSchema = gojsonschema.NewStringLoader(evaluationSchema)

// DefaultEvaluation is the contractual fallback when the model responds
// but its payload cannot be parsed or fails validation. Callers always
// receive well-formed category data for the four fixed keys.
func DefaultEvaluation() model.WritingEvaluation {
	return model.WritingEvaluation{
		OverallLevel:      3,
		OverallPercentage: 72,
		Categories: model.EvaluationCategories{
			MainMessage: model.CategoryScore{
				Level:       3,
				Strength:    "You have ideas to share.",
				Improvement: "Try stating your main point more clearly in your opening.",
			},
			LogicalStructure: model.CategoryScore{
				Level:       3,
				Strength:    "You organized your writing into paragraphs.",
				Improvement: "Make sure each paragraph focuses on one clear point.",
			},
			Grouping: model.CategoryScore{
				Level:       3,
				Strength:    "You included supporting ideas.",
				Improvement: "Check that your points are different from each other.",
			},
			Conventions: model.CategoryScore{
				Level:       3,
				Strength:    "Your writing is readable.",
				Improvement: "Proofread for spelling and grammar.",
			},
		},
		OverallFeedback: "You've made a good effort with this writing. Keep practicing the structure tips you learned.",
		TopPriority:     "Focus on stating your main message clearly in your first paragraph so readers know right away what you're writing about.",
		AIEvaluated:     true,
	}
}

// RemoteModelBackend asks the configured model to grade the submission
// against the four-category rubric.
type RemoteModelBackend struct {
	ai *AIService
}

func NewRemoteModelBackend(ai *AIService) *RemoteModelBackend {
	return &RemoteModelBackend{ai: ai}
}

func (b *RemoteModelBackend) AIPowered() bool { return true }

func (b *RemoteModelBackend) Evaluate(ctx context.Context, prompt model.WritingPrompt, text string, _ util.TextMetrics) (model.WritingEvaluation, error) {
	response, err := b.ai.Chat(ctx, buildEvaluationPrompt(prompt, text))
	if err != nil {
		return model.WritingEvaluation{}, err
	}
	return parseEvaluationResponse(response), nil
}

func buildEvaluationPrompt(prompt model.WritingPrompt, text string) string {
	return fmt.Sprintf(`You are assessing a Grade 7-8 student's writing for an Ontario curriculum assessment.
Evaluate this writing and provide helpful, encouraging feedback.

WRITING PROMPT: %s
TYPE: %s
REQUIREMENTS: %d-%d words

STUDENT'S WRITING:
"""
%s
"""

Evaluate against these four criteria (each worth 25%%):

1. MAIN MESSAGE & FOCUS: Is the main point clear from the start? Does the reader immediately understand what the writer is saying?

2. LOGICAL STRUCTURE: Do supporting points clearly connect to the main message? Does each paragraph answer 'why?' or 'how?' about the main point?

3. GROUPING & COMPLETENESS: Are ideas organized without overlap? Are the supporting points different from each other? Together do they cover everything important?

4. CONVENTIONS & CLARITY: Is the writing clear and relatively error-free? Are sentences varied and words precise?

Respond in this exact JSON format:
{
    "overall_level": <1-4>,
    "overall_percentage": <50-100>,
    "categories": {
        "main_message": {
            "level": <1-4>,
            "strength": "<what they did well in 1 sentence>",
            "improvement": "<specific suggestion to improve in 1 sentence>"
        },
        "logical_structure": {
            "level": <1-4>,
            "strength": "<what they did well in 1 sentence>",
            "improvement": "<specific suggestion to improve in 1 sentence>"
        },
        "grouping": {
            "level": <1-4>,
            "strength": "<what they did well in 1 sentence>",
            "improvement": "<specific suggestion to improve in 1 sentence>"
        },
        "conventions": {
            "level": <1-4>,
            "strength": "<what they did well in 1 sentence>",
            "improvement": "<specific suggestion to improve in 1 sentence>"
        }
    },
    "overall_feedback": "<2-3 sentences of encouraging, specific feedback about what they did well>",
    "top_priority": "<The single most important thing they should focus on improving, explained in a helpful way for a Grade 7-8 student>"
}

Be encouraging but honest. Focus on helping the student improve. Use language appropriate for Grade 7-8 students.`,
		prompt.Title, prompt.Type, prompt.WordMinimum, prompt.WordMaximum, text)
}

// parseEvaluationResponse extracts the JSON object embedded in the model
// reply. The substring between the first '{' and the last '}' is parsed;
// models routinely wrap output in prose, so this stays tolerant. Anything
// unparsable or schema-invalid becomes DefaultEvaluation.
func parseEvaluationResponse(response string) model.WritingEvaluation {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return DefaultEvaluation()
	}

	raw := response[start : end+1]
	result, err := gojsonschema.Validate(compiledEvaluationSchema, gojsonschema.NewStringLoader(raw))
	if err != nil || !result.Valid() {
		return DefaultEvaluation()
	}

	var eval model.WritingEvaluation
	if err := json.Unmarshal([]byte(raw), &eval); err != nil {
		return DefaultEvaluation()
	}
	eval.AIEvaluated = true
	return eval
}

// HeuristicBackend approximates an evaluation from length statistics.
// Pure and deterministic in (metrics, word bounds).
type HeuristicBackend struct{}

func NewHeuristicBackend() *HeuristicBackend { return &HeuristicBackend{} }

func (b *HeuristicBackend) AIPowered() bool { return false }

var heuristicLevelPercentages = map[int]int{1: 55, 2: 65, 3: 74, 4: 85}

func (b *HeuristicBackend) Evaluate(_ context.Context, prompt model.WritingPrompt, _ string, m util.TextMetrics) (model.WritingEvaluation, error) {
	hasGoodLength := prompt.WordMinimum <= m.WordCount && m.WordCount <= prompt.WordMaximum
	hasParagraphs := m.ParagraphCount >= 3
	hasVariety := m.SentenceCount >= 5

	baseLevel := 2.0
	if hasGoodLength {
		baseLevel += 0.5
	}
	if hasParagraphs {
		baseLevel += 0.5
	}
	if hasVariety {
		baseLevel += 0.5
	}

	// Half-to-even rounding: a single satisfied check still rounds down
	// to level 2.
	overallLevel := int(math.RoundToEven(baseLevel))
	if overallLevel < 1 {
		overallLevel = 1
	}
	if overallLevel > 4 {
		overallLevel = 4
	}

	structureLevel := overallLevel
	structureStrength := "You've organized your writing."
	if !hasParagraphs {
		structureStrength = "You've started organizing your ideas."
		if structureLevel > 1 {
			structureLevel--
		}
	}

	lengthRemark := "Good job meeting the word count!"
	if !hasGoodLength {
		verb := "tighten"
		if m.WordCount < prompt.WordMinimum {
			verb = "expand"
		}
		lengthRemark = fmt.Sprintf("Try to %s your writing to meet the target.", verb)
	}

	plural := "s"
	if m.ParagraphCount == 1 {
		plural = ""
	}

	return model.WritingEvaluation{
		OverallLevel:      overallLevel,
		OverallPercentage: heuristicLevelPercentages[overallLevel],
		Categories: model.EvaluationCategories{
			MainMessage: model.CategoryScore{
				Level:       overallLevel,
				Strength:    "You have a message to share with your reader.",
				Improvement: "Make sure your main point is crystal clear in your first paragraph.",
			},
			LogicalStructure: model.CategoryScore{
				Level:       structureLevel,
				Strength:    structureStrength,
				Improvement: "Each paragraph should make ONE clear point that supports your main message.",
			},
			Grouping: model.CategoryScore{
				Level:       overallLevel,
				Strength:    "You've included supporting points.",
				Improvement: "Double-check that your points are different from each other and don't repeat the same idea.",
			},
			Conventions: model.CategoryScore{
				Level:       overallLevel,
				Strength:    "Your writing is understandable.",
				Improvement: "Always proofread your work for spelling and grammar errors.",
			},
		},
		OverallFeedback: fmt.Sprintf("You wrote %d words across %d paragraph%s. %s",
			m.WordCount, m.ParagraphCount, plural, lengthRemark),
		TopPriority: "Focus on making your main message clear from the very first paragraph. Your reader should know exactly what you're saying before they finish your introduction.",
		AIEvaluated: false,
	}, nil
}
