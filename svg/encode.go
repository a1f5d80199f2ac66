package svg

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

const indentUnit = "  "

// String 序列化整个文档。
func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Encode(&sb)
	return sb.String()
}

// Encode 以固定格式输出文档：<defs>、<style>、主体元素依次排列。
// 相同的文档总是得到逐字节相同的输出。
func (d *Document) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	viewBox := Num(d.MinX) + " " + Num(d.MinY) + " " + Num(d.Width) + " " + Num(d.Height)
	root := El("svg",
		A("xmlns", Namespace),
		A("viewBox", viewBox),
		A("width", Num(d.Width)),
		A("height", Num(d.Height)),
	)
	writeOpen(bw, root, 0, false)
	bw.WriteString("\n")

	if len(d.Defs) > 0 {
		bw.WriteString(indentUnit + "<defs>\n")
		for _, e := range d.Defs {
			writeElement(bw, e, 2)
		}
		bw.WriteString(indentUnit + "</defs>\n")
	}
	if d.HasStyles() {
		bw.WriteString(indentUnit + "<style>\n")
		bw.WriteString(d.CSS())
		bw.WriteString(indentUnit + "</style>\n")
	}
	for _, e := range d.Elements {
		writeElement(bw, e, 1)
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// CSS 返回 <style> 块中的样式文本：先关键帧，后规则。
func (d *Document) CSS() string {
	var sb strings.Builder
	for _, k := range d.Keyframes {
		sb.WriteString("@keyframes " + k.Name + " {\n")
		for _, f := range k.Frames {
			sb.WriteString(indentUnit)
			writeRule(&sb, f)
		}
		sb.WriteString("}\n")
	}
	for _, r := range d.Rules {
		writeRule(&sb, r)
	}
	return sb.String()
}

func writeRule(sb *strings.Builder, r Rule) {
	sb.WriteString(r.Selector + " {")
	for _, decl := range r.Decls {
		sb.WriteString(" " + decl.Property + ": " + decl.Value + ";")
	}
	sb.WriteString(" }\n")
}

func writeElement(w *bufio.Writer, e *Element, depth int) {
	if len(e.Children) == 0 {
		writeOpen(w, e, depth, true)
		w.WriteString("\n")
		return
	}
	writeOpen(w, e, depth, false)
	w.WriteString("\n")
	for _, c := range e.Children {
		writeElement(w, c, depth+1)
	}
	w.WriteString(strings.Repeat(indentUnit, depth) + "</" + e.Name + ">\n")
}

func writeOpen(w *bufio.Writer, e *Element, depth int, selfClose bool) {
	w.WriteString(strings.Repeat(indentUnit, depth) + "<" + e.Name)
	for _, a := range e.Attrs {
		w.WriteString(" " + a.Name + `="`)
		xml.EscapeText(w, []byte(a.Value))
		w.WriteString(`"`)
	}
	if selfClose {
		w.WriteString("/>")
		return
	}
	w.WriteString(">")
}
