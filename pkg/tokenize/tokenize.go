// Package tokenize 将自由文本规范化为可比较的词元序列。
// 目录文档与查询文本共用同一套规则，保证词表对齐。
package tokenize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// accented 是放行的带变音符拉丁字母集合，覆盖常见西欧商品文案。
const accented = "àáâãäåèéêëìíîïòóôõöùúûüçñ"

// Tokenize 将文本切分为小写词元：
//  1. 转小写
//  2. Unicode 兼容规范化（NFKC，全角/组合字符折叠）
//  3. 非 {a-z, 0-9, 空白, 变音拉丁字母, '} 的字符替换为空格
//  4. 按空白切分，丢弃长度 <= 1 的词元
//
// 纯函数，无副作用。
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	s = norm.NFKC.String(strings.ToLower(s))

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return r
		case r == '\'':
			return r
		case strings.ContainsRune(accented, r):
			return r
		}
		return ' '
	}, s)

	fields := strings.Fields(cleaned)
	out := fields[:0]
	for _, tok := range fields {
		if utf8.RuneCountInString(tok) > 1 {
			out = append(out, tok)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
