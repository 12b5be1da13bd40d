package services

import (
	"fmt"
	"strings"
)

// Prompt construction is pure string templating. Inputs are trusted
// application data, embedded verbatim.

func BuildOutlinePrompt(title, description string, totalDays int) string {
	descText := ""
	if description != "" {
		descText = fmt.Sprintf(" Description: %s", description)
	}
	return fmt.Sprintf(`You are an expert planner and coach.
The user has set a goal: '%s'.%s
Duration: %d days.

Create a HIGH-LEVEL daily progression for this goal.
Return EXACTLY a JSON array of strings, where each string is the topic for that day.
The array MUST have exactly %d elements.
Do NOT include any markdown blocks other than the JSON itself.
`, title, descText, totalDays, totalDays)
}

func BuildDailyContentPrompt(title, description string, dayNumber int, topic string) string {
	descText := ""
	if description != "" {
		descText = fmt.Sprintf(" Description: %s", description)
	}
	return fmt.Sprintf(`You are an expert coach and planner.
The user's overall goal is: '%s'.%s
Today is Day %d.
Today's focus topic: '%s'

Provide a detailed action plan for today, including:
1. Motivational Overview
2. Specific Tasks or Exercises
3. Diet & Nutrition (if applicable)
4. Key Tips for the day

Format as a detailed, well-structured JSON object like this:
{
    "overview": "A brief overview of today's focus...",
    "tasks": ["Task 1", "Task 2"],
    "details": "Detailed instructions on how to accomplish the tasks. Use markdown for formatting.",
    "tips": "Important things to keep in mind"
}

Return ONLY the JSON object. No other text.
`, title, descText, dayNumber, topic)
}

func BuildChatPrompt(contextTopic, conversationText string) string {
	contextHint := ""
	if contextTopic != "" {
		contextHint = fmt.Sprintf("\nThe user is currently working on: %s. Tailor your response to this topic.", contextTopic)
	}
	return fmt.Sprintf(`You are an expert AI coach helping a user achieve their personal goals.

Your role:
- Explain concepts clearly with examples
- Give constructive feedback on the user's progress
- Ask follow-up questions to deepen understanding
- Be encouraging, practical, and clear
- Keep responses concise but thorough
- Use markdown formatting%s

Conversation so far:
%s

Provide a helpful, encouraging response as the AI coach:`, contextHint, conversationText)
}

func BuildTopicChatPrompt(goalTitle string, dayNumber int, topic, contentJSON, conversationText string) string {
	contextParts := []string{
		fmt.Sprintf("Goal: %s", goalTitle),
		fmt.Sprintf("Today is Day %d.", dayNumber),
		fmt.Sprintf("Topic: %s", topic),
	}
	if contentJSON != "" {
		contextParts = append(contextParts, fmt.Sprintf("Content: %s", contentJSON))
	}
	planContext := strings.Join(contextParts, "\n")

	return fmt.Sprintf(`You are an expert AI coach helping a user with their goal.
Context for today:
%s

Your role:
- Answer doubts related to today's topic and content.
- Be encouraging, practical, and clear.
- Use markdown formatting.

Conversation:
%s

Provide a helpful response:`, planContext, conversationText)
}
