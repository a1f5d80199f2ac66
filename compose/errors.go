package compose

import (
	"errors"
	"fmt"

	"github.com/ByLCY/quill/layout"
)

// Sentinel errors，调用方通过 errors.Is 判断。
var (
	// ErrEmptyText 表示没有输入文本（或只有空白）。
	ErrEmptyText = errors.New("compose: 请先输入文本")

	// ErrFontNotLoaded 表示没有绑定字体。
	ErrFontNotLoaded = errors.New("compose: 请先加载字体文件（.ttf 或 .otf）")

	// ErrNoRenderableContent 由排版阶段传出。
	ErrNoRenderableContent = layout.ErrNoRenderableContent
)

// InvalidParameterError 表示请求中的数值参数不可用。
type InvalidParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("compose: 参数 %s=%v 无效: %s", e.Field, e.Value, e.Reason)
}
