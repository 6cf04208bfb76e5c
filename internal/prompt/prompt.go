// Package prompt renders the oracle prompts of every advisor use case.
//
// Each builder embeds the JSON shape its caller decodes, so the field names
// below must stay in sync with the model types they are unmarshalled into.
package prompt

import (
	"fmt"
	"strings"

	"github.com/you-humble/pcbuilder/internal/model"
)

const jsonOnly = "Ensure the response is valid JSON without any additional explanations or text."

const presetShape = `{
    "low": FPS for low preset,
    "medium": FPS for medium preset,
    "high": FPS for high preset,
    "ultra": FPS for ultra preset
  }`

// Build asks for a complete build anchored to one of motherboards.
func Build(userPrompt string, motherboards []string) string {
	var b strings.Builder

	b.WriteString("Given the following user prompt, return a JSON object with the best PC components that match the user's needs.\n")
	b.WriteString("IMPORTANT: Only use motherboards from the provided list below. Do not suggest motherboards that are not in this list.\n\n")
	fmt.Fprintf(&b, "User Prompt: %q\n\n", userPrompt)
	b.WriteString("Available Motherboards:\n")
	b.WriteString(strings.Join(motherboards, ", "))
	b.WriteString("\n\n")
	b.WriteString(`The AI should:
- Stay within the Budget range the user gave
- Suggest a PC build that is within the budget with the following components:
  - CPU name
  - GPU name
  - RAM name (do not include modules or speed)
  - PSU name (do not include efficiency)
  - Case name
  - HDD name (include capacity in GB)
  - SSD name (include capacity in GB)
  - Motherboard name (must be from the Available Motherboards list)

Return the response in the following format:

{
  "cpu": "name of the CPU",
  "gpu": "name of the GPU",
  "ram": "name of the RAM",
  "psu": "name of the PSU",
  "case": "name of the case",
  "hdd": "name of the HDD with capacity in GB",
  "ssd": "name of the SSD with capacity in GB",
  "motherboard": "name of the motherboard"
}

Ensure the response is a valid JSON object and does not contain any additional text or explanations.
`)

	return b.String()
}

func Performance(parts model.GamingParts, game string) string {
	var b strings.Builder

	b.WriteString("Based on the following PC components and game, estimate the average FPS for each graphical preset (low, medium, high, ultra).\n\n")
	writeGamingParts(&b, parts)
	fmt.Fprintf(&b, "\nGame: %s\n\n", game)
	b.WriteString("The AI should return a JSON object in the following format:\n")
	b.WriteString(presetShape)
	b.WriteString("\n\n")
	b.WriteString(jsonOnly)
	b.WriteString("\n")

	return b.String()
}

// TemplateGraph asks for one preset object per game, keyed by the exact game title.
func TemplateGraph(parts model.GamingParts, games []string) string {
	var b strings.Builder

	b.WriteString("Based on the following PC components, estimate the average FPS for each graphical preset (low, medium, high, ultra) for the following games:\n\n")
	writeGamingParts(&b, parts)
	b.WriteString("\nGames:\n")
	b.WriteString(strings.Join(games, ", "))
	b.WriteString("\n\nThe AI should return a JSON object in the following format:\n{\n")
	for i, g := range games {
		fmt.Fprintf(&b, "  %q: %s", g, presetShape)
		if i < len(games)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
	b.WriteString(jsonOnly)
	b.WriteString("\n")

	return b.String()
}

func Compatibility(system model.SystemSpec, motherboards []string) string {
	var b strings.Builder

	b.WriteString("Given the following PC components, check for any compatibility issues and suggest parts to fix the issues.\n\n")
	b.WriteString("Available Motherboards:\n")
	b.WriteString(strings.Join(motherboards, ", "))
	b.WriteString("\n\n")
	writeSystem(&b, system)
	b.WriteString(`
The AI should:
- Check for compatibility issues between the components.
- Identify the parts causing the issues.
- Suggest alternative parts to fix the issues.

For each suggested part, include both the part name and type in the following format:
{
  "name": "Suggested part name",
  "type": "Part type (e.g., CPU, Motherboard, GPU, RAM, PSU, Case, SSD, HDD)"
}

Return the response in the following JSON format:
{
  "compatibilityIssues": [
    {
      "issue": "Description of the compatibility issue",
      "causingParts": ["Part causing the issue"],
      "suggestedParts": [
        { "name": "Suggested part name", "type": "Part type" }
      ]
    }
  ]
}

If there are no issues return {"compatibilityIssues": []}.

`)
	b.WriteString(jsonOnly)
	b.WriteString("\n")

	return b.String()
}

func Rating(system model.SystemSpec) string {
	var b strings.Builder

	b.WriteString("Rate the following PC build on a scale from 0 to 10, where 10 is the best possible value for a modern gaming PC.\n\n")
	writeSystem(&b, system)
	b.WriteString(`
The AI should:
- Rate the CPU for its role in this build.
- Rate the GPU for its role in this build.
- Give an overall rating that accounts for balance, compatibility and value.

Return the response in the following JSON format, using numbers only:
{
  "cpu": CPU rating,
  "gpu": GPU rating,
  "overall": overall rating
}

`)
	b.WriteString(jsonOnly)
	b.WriteString("\n")

	return b.String()
}

func AssemblyGuide(parts model.AssemblyParts) string {
	var b strings.Builder

	b.WriteString("Write a step-by-step assembly guide for building a PC from the following components.\n\n")
	b.WriteString("PC Components:\n")
	fmt.Fprintf(&b, "- CPU: %s\n", parts.CPU)
	fmt.Fprintf(&b, "- GPU: %s\n", parts.GPU)
	fmt.Fprintf(&b, "- RAM: %s\n", parts.RAM)
	fmt.Fprintf(&b, "- Motherboard: %s\n", parts.Motherboard)
	fmt.Fprintf(&b, "- PSU: %s\n", parts.PSU)
	fmt.Fprintf(&b, "- Case: %s\n", parts.Case)
	b.WriteString(`
The AI should:
- List the tools needed.
- Describe every step in order, specific to these components.
- For every step give one or two short image search queries that would find a photo illustrating the step.
- Give cable management tips and common pitfalls.

Return the response in the following JSON format:
{
  "tools": ["tool"],
  "steps": [
    {
      "title": "Step title",
      "description": ["Instruction"],
      "imagePrompts": ["Image search query"]
    }
  ],
  "cableManagementTips": ["Tip"],
  "commonPitfalls": ["Pitfall"]
}

`)
	b.WriteString(jsonOnly)
	b.WriteString("\n")

	return b.String()
}

func writeGamingParts(b *strings.Builder, parts model.GamingParts) {
	b.WriteString("PC Components:\n")
	fmt.Fprintf(b, "- CPU: %s\n", parts.CPU)
	fmt.Fprintf(b, "- GPU: %s\n", parts.GPU)
	fmt.Fprintf(b, "- RAM: %s\n", parts.RAM)
}

func writeSystem(b *strings.Builder, s model.SystemSpec) {
	b.WriteString("PC Components:\n")
	fmt.Fprintf(b, "- CPU: %s\n", s.CPU)
	fmt.Fprintf(b, "- GPU: %s\n", s.GPU)
	fmt.Fprintf(b, "- RAM: %s\n", s.RAM)
	fmt.Fprintf(b, "- Storage: %s\n", s.Storage)
	fmt.Fprintf(b, "- SSD: %s\n", s.SSD)
	fmt.Fprintf(b, "- HDD: %s\n", s.HDD)
	fmt.Fprintf(b, "- Motherboard: %s\n", s.Motherboard)
	fmt.Fprintf(b, "- PSU: %s\n", s.PSU)
	fmt.Fprintf(b, "- Case: %s\n", s.Case)
}
