package layout

import (
	"errors"
	"fmt"
)

// ErrNoRenderableContent 表示输入中没有任何可绘制的字符（全部为空格或字体缺字）。
var ErrNoRenderableContent = errors.New("layout: 没有可渲染的字符")

// UnresolvableLengthError 表示某段轮廓无法测量长度。
// 该错误只在长度解析内部使用，长度按 0 处理，不会返回给调用方。
type UnresolvableLengthError struct {
	Char    string
	Contour int
	Err     error
}

func (e *UnresolvableLengthError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("layout: 无法测量字符 %q 第 %d 段轮廓的长度", e.Char, e.Contour)
	}
	return fmt.Sprintf("layout: 无法测量字符 %q 第 %d 段轮廓的长度: %v", e.Char, e.Contour, e.Err)
}

func (e *UnresolvableLengthError) Unwrap() error { return e.Err }
