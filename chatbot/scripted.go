package chatbot

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

type Rule struct {
	Keywords []string `yaml:"keywords"`
	Reply    string   `yaml:"reply"`
}

type Rules struct {
	Rules       []Rule `yaml:"rules"`
	Fallback    string `yaml:"fallback"`
	Description string `yaml:"description"`
}

// LoadRules reads rules from path, or the built-in set when path is empty.
func LoadRules(path string) (Rules, error) {
	data := defaultRules
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Rules{}, fmt.Errorf("read chatbot rules: %w", err)
		}
		data = b
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parse chatbot rules: %w", err)
	}
	if r.Fallback == "" {
		return Rules{}, errors.New("chatbot rules need a fallback reply")
	}
	return r, nil
}

// ScriptedResponder answers from keyword rules after an artificial delay.
type ScriptedResponder struct {
	rules   Rules
	latency time.Duration
}

func NewScriptedResponder(rules Rules, latency time.Duration) *ScriptedResponder {
	return &ScriptedResponder{rules: rules, latency: latency}
}

func (s *ScriptedResponder) Respond(ctx context.Context, text string) (string, error) {
	if err := s.wait(ctx, s.latency); err != nil {
		return "", err
	}
	return s.rules.Match(text), nil
}

// DescribeProduct fills the description template with the product name.
func (s *ScriptedResponder) DescribeProduct(ctx context.Context, productName string) (string, error) {
	if err := s.wait(ctx, s.latency); err != nil {
		return "", err
	}
	if s.rules.Description == "" {
		return "", errors.New("no description template configured")
	}
	return fmt.Sprintf(s.rules.Description, productName), nil
}

func (s *ScriptedResponder) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Match returns the reply of the first rule whose keyword occurs in text.
func (r Rules) Match(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range r.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Reply
			}
		}
	}
	return r.Fallback
}
