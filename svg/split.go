package svg

import "strings"

const (
	styleOpen  = "<style"
	styleClose = "</style>"
)

// SplitStyle 将组合产物中的 <style> 块原样剪出。
// 返回去掉样式块的几何产物与样式块内的文本；没有样式块时 ok 为 false，
// geometry 等于输入，style 为空。
func SplitStyle(combined string) (geometry, style string, ok bool) {
	start := strings.Index(combined, styleOpen)
	if start < 0 {
		return combined, "", false
	}
	bodyStart := strings.IndexByte(combined[start:], '>')
	if bodyStart < 0 {
		return combined, "", false
	}
	bodyStart += start + 1
	bodyEnd := strings.Index(combined[bodyStart:], styleClose)
	if bodyEnd < 0 {
		return combined, "", false
	}
	bodyEnd += bodyStart
	end := bodyEnd + len(styleClose)

	style = strings.TrimPrefix(combined[bodyStart:bodyEnd], "\n")
	if i := strings.LastIndexByte(style, '\n'); i >= 0 && strings.TrimSpace(style[i:]) == "" {
		style = style[:i+1]
	}

	// 连同所在行的缩进与换行一起移除
	lineStart := start
	for lineStart > 0 && (combined[lineStart-1] == ' ' || combined[lineStart-1] == '\t') {
		lineStart--
	}
	if end < len(combined) && combined[end] == '\n' {
		end++
	}
	return combined[:lineStart] + combined[end:], style, true
}
