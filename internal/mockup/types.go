package mockup

import "context"

// Category is the kind of UI component a prompt asks for.
type Category string

const (
	CategoryLogin     Category = "Login"
	CategoryDashboard Category = "Dashboard"
	CategoryProfile   Category = "Profile"
	CategoryGeneric   Category = "Generic"
)

// Color is an accent color keyword. Values double as Tailwind color names.
type Color string

const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorPink   Color = "pink"
	ColorYellow Color = "yellow"
	ColorTeal   Color = "teal"
	ColorIndigo Color = "indigo"
	ColorGray   Color = "gray"

	DefaultColor = ColorIndigo
)

// ErrorLabel is the label returned alongside every error document.
const ErrorLabel = "Error"

// Generator turns a prompt into a complete HTML document and a short label.
// Implementations never fail: error conditions come back as an error
// document labelled ErrorLabel.
type Generator interface {
	Generate(ctx context.Context, prompt, credential string) (document string, label string)
}
