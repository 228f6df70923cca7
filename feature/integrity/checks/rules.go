package checks

import (
	"context"
	"sort"

	"netcollector/core/reconcile"
	"netcollector/core/rules"
)

// TemplateLoader loads and validates a template by name.
type TemplateLoader interface {
	Load(ctx context.Context, name string) (string, error)
}

// RulesReport is the result of checking the rule index against the
// template source and the handler registry.
type RulesReport struct {
	Rules            int             `json:"rules"`
	Templates        int             `json:"templates"`
	InvalidTemplates []TemplateIssue `json:"invalid_templates"`
	UnknownHandlers  []string        `json:"unknown_handlers"`
	Status           string          `json:"status"` // "ok", "error"
}

// TemplateIssue names a template that cannot be used.
type TemplateIssue struct {
	Template string `json:"template"`
	Error    string `json:"error"`
}

// CheckRules verifies that every rule's template loads and compiles and that
// every rule's handler is registered. Each template is checked once.
func CheckRules(ctx context.Context, loader TemplateLoader, index *rules.Index, registry *reconcile.Registry) *RulesReport {
	report := &RulesReport{
		InvalidTemplates: []TemplateIssue{},
		UnknownHandlers:  []string{},
		Status:           "ok",
	}

	seenTemplates := map[string]bool{}
	seenHandlers := map[string]bool{}
	for _, rule := range index.Rules() {
		report.Rules++

		if !seenTemplates[rule.Template] {
			seenTemplates[rule.Template] = true
			report.Templates++
			if _, err := loader.Load(ctx, rule.Template); err != nil {
				report.InvalidTemplates = append(report.InvalidTemplates, TemplateIssue{Template: rule.Template, Error: err.Error()})
			}
		}

		if !seenHandlers[rule.Handler] {
			seenHandlers[rule.Handler] = true
			if _, ok := registry.Lookup(rule.Handler); !ok {
				report.UnknownHandlers = append(report.UnknownHandlers, rule.Handler)
			}
		}
	}
	sort.Strings(report.UnknownHandlers)

	if len(report.InvalidTemplates) > 0 || len(report.UnknownHandlers) > 0 {
		report.Status = "error"
	}
	return report
}
