package svg

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	minsvg "github.com/tdewolff/minify/v2/svg"
)

// 媒体类型
const (
	MediaSVG = "image/svg+xml"
	MediaCSS = "text/css"
)

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(MediaSVG, minsvg.Minify)
	m.AddFunc(MediaCSS, css.Minify)
	return m
}

// Minify 压缩 SVG 或 CSS 文本；空字符串原样返回。
func Minify(mediatype, s string) (string, error) {
	if s == "" {
		return s, nil
	}
	out, err := minifier.String(mediatype, s)
	if err != nil {
		return "", fmt.Errorf("svg: 压缩 %s 失败: %w", mediatype, err)
	}
	return out, nil
}
