// Package config holds the profile registry and application settings for kilomoco.
package config

import "sort"

// Profile is a named mapping from Kilo Code operation modes to model identifiers.
type Profile struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Modes       map[string]string `json:"modes" yaml:"modes"`
}

// Registry is the resolved set of profiles, keyed by profile id.
// It is rebuilt on every query; nothing caches it.
type Registry map[string]*Profile

// IDs returns the profile ids in sorted order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ModeNames are the seven modes every built-in profile configures.
var ModeNames = []string{"default", "orchestrator", "architect", "code", "debug", "ask", "administrator"}

// BuiltinProfiles returns the hardcoded profile table used when no profile
// directory yields any valid profiles. The tool stays usable with zero
// configuration.
func BuiltinProfiles() Registry {
	return Registry{
		"lopr": {
			ID:          "lopr",
			Name:        "Low-Price (Economy)",
			Description: "Budget-friendly model combinations for cost-conscious usage",
			Modes: map[string]string{
				"default":       "llama-4-maverick",
				"orchestrator":  "deepseek-v3.2-exp",
				"architect":     "minimax-m2",
				"code":          "minimax-m2",
				"debug":         "deepseek-v3.1-terminus",
				"ask":           "llama-4-maverick",
				"administrator": "deepseek-v3.2-exp",
			},
		},
		"copr": {
			ID:          "copr",
			Name:        "Complex-Programming (Agentic Coding)",
			Description: "Optimized for complex programming tasks and agentic workflows",
			Modes: map[string]string{
				"default":       "gpt-5-mini",
				"orchestrator":  "claude-sonnet-4.5",
				"architect":     "gemini-2.5-pro",
				"code":          "qwen3-coder",
				"debug":         "claude-haiku-4.5",
				"ask":           "glm-4.6",
				"administrator": "glm-4.6",
			},
		},
		"hiq": {
			ID:          "hiq",
			Name:        "High-Quality (Premium)",
			Description: "Premium models for highest quality output",
			Modes: map[string]string{
				"default":       "gemini-2.5-pro",
				"orchestrator":  "claude-sonnet-4.5",
				"architect":     "gpt-5",
				"code":          "claude-sonnet-4.5",
				"debug":         "claude-sonnet-4.5",
				"ask":           "gemini-2.5-pro",
				"administrator": "gpt-5",
			},
		},
		"bas": {
			ID:          "bas",
			Name:        "Balanced-Speed (speed)",
			Description: "Balanced performance with good speed",
			Modes: map[string]string{
				"default":       "grok-code-fast-1",
				"orchestrator":  "gemini-2.5-flash",
				"architect":     "gpt-5-mini",
				"code":          "grok-code-fast-1",
				"debug":         "gemini-2.5-flash",
				"ask":           "grok-code-fast-1",
				"administrator": "gemini-2.5-flash",
			},
		},
		"res": {
			ID:          "res",
			Name:        "Repository-Scale (big codebases)",
			Description: "Optimized for large codebases and repository-scale tasks",
			Modes: map[string]string{
				"default":       "gemini-2.5-flash",
				"orchestrator":  "gemini-2.5-pro",
				"architect":     "qwen3-max",
				"code":          "qwen3-coder",
				"debug":         "glm-4.6",
				"ask":           "llama-4-maverick",
				"administrator": "qwen3-max",
			},
		},
		"ags": {
			ID:          "ags",
			Name:        "Agent-Specialist (Autonome Workflows)",
			Description: "Specialized for autonomous workflows and agent operations",
			Modes: map[string]string{
				"default":       "minimax-m2",
				"orchestrator":  "claude-sonnet-4.5",
				"architect":     "deepseek-v3.1-terminus",
				"code":          "glm-4.6",
				"debug":         "claude-haiku-4.5",
				"ask":           "gpt-5-mini",
				"administrator": "deepseek-v3.1-terminus",
			},
		},
		"refo": {
			ID:          "refo",
			Name:        "Research-Focused (analyse & science)",
			Description: "Optimized for research, analysis, and scientific tasks",
			Modes: map[string]string{
				"default":       "qwen3-max",
				"orchestrator":  "gemini-2.5-pro",
				"architect":     "gpt-5",
				"code":          "mistral-large",
				"debug":         "claude-sonnet-4.5",
				"ask":           "gemini-2.5-flash",
				"administrator": "mistral-large",
			},
		},
		"buco": {
			ID:          "buco",
			Name:        "Budget-Conscious-Pro (budget and efficiency)",
			Description: "Professional quality with budget consciousness",
			Modes: map[string]string{
				"default":       "gemini-2.5-flash",
				"orchestrator":  "gpt-5-mini",
				"architect":     "qwen3-coder",
				"code":          "grok-code-fast-1",
				"debug":         "claude-haiku-4.5",
				"ask":           "deepseek-v3.2-exp",
				"administrator": "minimax-m2",
			},
		},
	}
}
