package responder

import (
	"regexp"
	"strings"
)

// KeywordExpander 生成触发关键词的各种匹配形式，便于按语言替换扩展策略
type KeywordExpander interface {
	Expand(keyword string) []string
}

type englishExpander struct{}

// 常规英语词形变化：原形、复数、现在分词、过去式、比较级
var englishSuffixes = []string{"", "s", "ing", "ed", "er"}

// 人工维护的同义扩展
var englishSynonyms = map[string][]string{
	"friends":      {"friendship"},
	"judgment":     {"judged", "judging", "judgmental"},
	"relationship": {"relate", "relating"},
}

func (englishExpander) Expand(keyword string) []string {
	forms := make([]string, 0, len(englishSuffixes))
	for _, suffix := range englishSuffixes {
		forms = append(forms, keyword+suffix)
	}
	return append(forms, englishSynonyms[keyword]...)
}

// keywordMatcher 对一条词表做整词匹配，关键词顺序即匹配顺序
type keywordMatcher struct {
	patterns []*regexp.Regexp
}

func newKeywordMatcher(triggerKeywords string, expander KeywordExpander) *keywordMatcher {
	m := &keywordMatcher{}
	for _, keyword := range splitKeywords(triggerKeywords) {
		for _, form := range expander.Expand(keyword) {
			m.patterns = append(m.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(form)+`\b`))
		}
	}
	return m
}

func (m *keywordMatcher) Match(lowerInput string) bool {
	for _, pattern := range m.patterns {
		if pattern.MatchString(lowerInput) {
			return true
		}
	}
	return false
}

func splitKeywords(list string) []string {
	var keywords []string
	for _, keyword := range strings.Split(strings.ToLower(list), ",") {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}

// negativePatterns 通用负面情绪表达，优先于一切词库匹配，
// 避免诸如 "not feeling good about my exam" 误中考试条目
var negativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bnot\s+(feeling\s+)?good`),
	regexp.MustCompile(`\bnot\s+(feeling\s+)?well`),
	regexp.MustCompile(`\bnot\s+(feeling\s+)?fine`),
	regexp.MustCompile(`\bnot\s+(feeling\s+)?okay`),
	regexp.MustCompile(`\bnot\s+doing\s+well`),
	regexp.MustCompile(`\bnot\s+doing\s+good`),
	regexp.MustCompile(`feeling\s+(bad|terrible|awful|horrible)`),
	regexp.MustCompile(`\bbad\s+day`),
	regexp.MustCompile(`having\s+a\s+(hard|tough|difficult)\s+time`),
}

func hasNegativeExpression(lowerInput string) bool {
	for _, pattern := range negativePatterns {
		if pattern.MatchString(lowerInput) {
			return true
		}
	}
	return false
}
