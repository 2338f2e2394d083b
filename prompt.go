package reagent

import (
	"fmt"
	"strings"
)

// DefaultPreamble is the opening section of the system prompt. Override it
// per agent with WithPreamble.
const DefaultPreamble = `You are an assistant that breaks down problems into multiple, simple steps and solves them systematically.
You have access to tools defined in the 'Tools' section.
ALWAYS prefer using tools to relying on your general knowledge, e.g. if you have access to a calculator ALWAYS use it to evaluate formulas.`

const toolsPreamble = `## Tools

You are responsible for using the tools in any sequence you deem appropriate to complete the task at hand.
This may require breaking the task into subtasks and using different tools to complete each subtask.

You have access to the following tools:`

// rawFormatInstructions spells out the response protocol. Code fences are
// written as ''' because Go raw string literals cannot contain backticks;
// they are rewritten before use.
const rawFormatInstructions = `## Output Format

ALWAYS use the following format in your response (EXACTLY one each of 'Thought:', 'Action:' and 'Action Input:'):

'''
Thought: [your current thought]
Action: [tool name]
Action Input: [the input to the tool, in JSON format representing the kwargs (e.g. {"input": "hello world", "num_beams": 5})]
'''

Please communicate in the same language as the question and use ONLY one of the following three alternatives:

1. If you need more information to answer the question:

'''
Thought: I need to use a tool to help me answer the question.
Action: [tool name]
Action Input: [the input to the tool, in JSON format representing the kwargs (e.g. {"input": "hello world", "num_beams": 5})]
'''

2. If you have enough information to answer the question:

'''
Thought: I can answer without using any more tools.
Action: answer
Action Input: [your answer, in JSON format (e.g. {"reply": "OK"})]
'''

3. If you cannot answer the question even after using tools to retrieve more information:

'''
Thought: I cannot answer the question with the provided tools.
Action: answer
Action Input: [your answer, in JSON format (e.g. {"reply": "Sorry"})]
'''

ALWAYS start with a Thought followed by an Action and finally an Action Input.
NEVER surround your response with markdown code markers.

If you decide that a tool other than 'answer' is required, the result will be reported in the following form:

'''
Observation: [tool use result (e.g. 'Stockholm') or an error message (e.g. 'Error: Invalid input') in case of failure]
'''

Use JSON formatted data for the Action Input argument, e.g. {"input": "hello world", "num_beams": 5}.
ALWAYS use a dictionary as the root object in JSON data.
If the tool does not require any input, you MUST provide an empty dictionary as action input, i.e. "Action Input: {}".
NEVER continue after completing the Action Input argument.

You should keep repeating the above steps until you have enough information to answer without using any more tools. At that point, you MUST respond using format 2 or 3.


## Current Conversation

Below is the current conversation consisting of interleaving user and assistant messages.`

var formatInstructions = strings.ReplaceAll(rawFormatInstructions, "'''", "```")

// ComposeSystemPrompt assembles the full system prompt: the preamble, the
// tools block generated from each tool's name and description, and the fixed
// response format instructions. Called once at agent construction; the
// prompt does not change between steps.
func ComposeSystemPrompt(preamble string, tools []Tool) string {
	docs := []string{toolsPreamble}
	for _, t := range tools {
		docs = append(docs, fmt.Sprintf("\n> Tool Name: %s\n%s\n", t.Name(), t.Description()))
	}
	toolInfo := strings.Join(docs, "\n")

	return preamble + "\n\n" + toolInfo + "\n\n" + formatInstructions + "\n\n"
}
