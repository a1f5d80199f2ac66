// Package svg 是输出产物的类型化模型：一组图元加一组样式规则，
// 仅在边界处序列化为文本，计时与几何逻辑不接触字符串拼接。
package svg

import (
	"math"
	"strconv"
)

// Namespace 为 SVG 的 XML 命名空间。
const Namespace = "http://www.w3.org/2000/svg"

// Document 是一个完整的 SVG 文档。
type Document struct {
	MinX, MinY    float64
	Width, Height float64

	Defs      []*Element
	Keyframes []Keyframes
	Rules     []Rule
	Elements  []*Element
}

// New 创建给定视口的空文档。
func New(minX, minY, width, height float64) *Document {
	return &Document{MinX: minX, MinY: minY, Width: width, Height: height}
}

// HasStyles 报告文档是否包含需要 <style> 块承载的规则。
func (d *Document) HasStyles() bool {
	return len(d.Keyframes) > 0 || len(d.Rules) > 0
}

// AddDef 向 <defs> 追加元素。
func (d *Document) AddDef(e *Element) { d.Defs = append(d.Defs, e) }

// Add 向文档主体追加元素。
func (d *Document) Add(e *Element) { d.Elements = append(d.Elements, e) }

// AddRule 追加一条样式规则。
func (d *Document) AddRule(selector string, decls ...Decl) {
	d.Rules = append(d.Rules, Rule{Selector: selector, Decls: decls})
}

// AddKeyframes 追加一组关键帧。
func (d *Document) AddKeyframes(k Keyframes) { d.Keyframes = append(d.Keyframes, k) }

// Element 为一个 XML 元素。
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

// Attr 为元素属性，按追加顺序输出。
type Attr struct {
	Name  string
	Value string
}

// El 创建元素。
func El(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

// A 创建属性。
func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// Append 追加子元素并返回元素本身。
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Attr 返回属性值。
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Decl 为一条 CSS 声明。
type Decl struct {
	Property string
	Value    string
}

// D 创建声明。
func D(property, value string) Decl { return Decl{Property: property, Value: value} }

// Rule 为一条 CSS 规则。
type Rule struct {
	Selector string
	Decls    []Decl
}

// Keyframes 为一组 @keyframes，Frames 的 Selector 为 from/to/百分比。
type Keyframes struct {
	Name   string
	Frames []Rule
}

// Num 将数值格式化为最多三位小数的紧凑形式。
func Num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // 去掉 -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Seconds 将秒数格式化为 CSS/SMIL 时间值，固定三位小数。
func Seconds(v float64) string {
	if math.Abs(v) < 0.0005 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 3, 64) + "s"
}
