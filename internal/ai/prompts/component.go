package prompts

import "fmt"

const componentPromptTemplate = `
You are an expert Frontend Engineer specializing in Tailwind CSS.
Task: Create a modern, beautiful, and responsive HTML component based on this request: "%s"
Rules:
1. Output ONLY the HTML code for the component.
2. Do NOT write <html>, <head>, or <body> tags.
3. Use 'https://source.unsplash.com/random/400x300' for placeholder images.
4. Use FontAwesome classes for icons.
5. Do not include markdown formatting (like ` + "```html" + `). Just raw code.
`

// GetComponentPrompt embeds the user's request verbatim into the component
// generation instruction.
func GetComponentPrompt(userPrompt string) string {
	return fmt.Sprintf(componentPromptTemplate, userPrompt)
}
