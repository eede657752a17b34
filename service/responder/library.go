package responder

import (
	_ "embed"
	"errors"
	"fmt"

	"serene-backend/model"

	"gopkg.in/yaml.v3"
)

//go:embed library.yaml
var libraryYAML []byte

// Entry 响应库中的一条固定应答
type Entry struct {
	TriggerKeywords  string          `yaml:"trigger_keywords"`
	ResponseText     string          `yaml:"response_text"`
	CopingTipTitle   *string         `yaml:"coping_tip_title"`
	CopingTipContent *string         `yaml:"coping_tip_content"`
	RiskLevel        model.RiskLevel `yaml:"risk_level"`

	// Greeting 标记基础问候语条目，只做精确匹配，不参与子串扫描
	Greeting bool `yaml:"greeting"`
}

func (e *Entry) HasCopingTip() bool {
	return e.CopingTipTitle != nil && e.CopingTipContent != nil
}

type Library struct {
	Negative Entry   `yaml:"negative"`
	Fallback Entry   `yaml:"fallback"`
	Casual   []Entry `yaml:"casual"`
	Topical  []Entry `yaml:"topical"`
}

func LoadLibrary() (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(libraryYAML, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse response library: %w", err)
	}
	if err := lib.validate(); err != nil {
		return nil, fmt.Errorf("invalid response library: %w", err)
	}
	return &lib, nil
}

func (lib *Library) validate() error {
	entries := []*Entry{&lib.Negative, &lib.Fallback}
	for i := range lib.Casual {
		entries = append(entries, &lib.Casual[i])
	}
	for i := range lib.Topical {
		entries = append(entries, &lib.Topical[i])
	}

	greetings := 0
	for _, e := range entries {
		if e.TriggerKeywords == "" {
			return errors.New("entry without trigger keywords")
		}
		if e.ResponseText == "" {
			return fmt.Errorf("entry %q without response text", e.TriggerKeywords)
		}
		if !e.RiskLevel.Valid() {
			return fmt.Errorf("entry %q has invalid risk level %q", e.TriggerKeywords, e.RiskLevel)
		}
		if (e.CopingTipTitle == nil) != (e.CopingTipContent == nil) {
			return fmt.Errorf("entry %q has a partial coping tip", e.TriggerKeywords)
		}
		if e.Greeting {
			greetings++
		}
	}

	if greetings != 1 {
		return fmt.Errorf("expected exactly one greeting entry, got %d", greetings)
	}
	return nil
}
