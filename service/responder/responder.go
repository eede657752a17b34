// Package responder 持有静态响应库和分层匹配流程，
// 将用户原始文本映射为一条带风险级别的固定应答。
package responder

import (
	"fmt"
	"strings"
)

type Responder struct {
	lib      *Library
	expander KeywordExpander
	topical  []*keywordMatcher
	casual   [][]string
}

// Default Responder单例实例
var Default *Responder

func init() {
	var err error
	Default, err = New()
	if err != nil {
		panic(fmt.Sprintf("Failed to load response library: %v", err))
	}
}

func New() (*Responder, error) {
	lib, err := LoadLibrary()
	if err != nil {
		return nil, err
	}

	r := &Responder{
		lib:      lib,
		expander: englishExpander{},
	}
	for i := range lib.Topical {
		r.topical = append(r.topical, newKeywordMatcher(lib.Topical[i].TriggerKeywords, r.expander))
	}
	for i := range lib.Casual {
		r.casual = append(r.casual, splitKeywords(lib.Casual[i].TriggerKeywords))
	}
	return r, nil
}

var simpleGreetings = []string{"hi", "hello", "hey"}

// Classify 按固定优先级选出最匹配的应答，永不失败：
// 负面情绪覆盖 > 主题词库整词扫描 > 问候语精确匹配 > 闲聊子串扫描 > 兜底
func (r *Responder) Classify(text string) *Entry {
	lower := strings.ToLower(text)

	if hasNegativeExpression(lower) {
		return &r.lib.Negative
	}

	for i, matcher := range r.topical {
		if matcher.Match(lower) {
			return &r.lib.Topical[i]
		}
	}

	if isSimpleGreeting(lower) {
		for i := range r.lib.Casual {
			if r.lib.Casual[i].Greeting {
				return &r.lib.Casual[i]
			}
		}
	}

	for i, keywords := range r.casual {
		if r.lib.Casual[i].Greeting {
			continue
		}
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				return &r.lib.Casual[i]
			}
		}
	}

	return &r.lib.Fallback
}

func isSimpleGreeting(lower string) bool {
	trimmed := strings.TrimSpace(lower)
	for _, greeting := range simpleGreetings {
		if trimmed == greeting || trimmed == greeting+"!" || trimmed == greeting+"." {
			return true
		}
	}
	return false
}
