package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/ByLCY/quill/binding"
	"github.com/ByLCY/quill/compose"
	"github.com/ByLCY/quill/layout"
	"github.com/ByLCY/quill/preset"
	"github.com/ByLCY/quill/renderer"
	canvasrenderer "github.com/ByLCY/quill/renderer/canvas"
	"github.com/ByLCY/quill/timing"
)

const pipeName = "-"

// options 汇总命令行参数。
type options struct {
	input      string
	presetName string
	fontSrc    string
	output     string
	split      bool
	preview    string
	debug      string
	savePreset string
	minify     bool
	data       any

	req compose.Request
}

func main() {
	def := compose.DefaultRequest("")

	input := flag.String("in", "", "预设文件路径")
	presetName := flag.String("preset", "", "预设名称，默认取文件中的第一个")
	fontSrc := flag.String("font", "", "字体：embed:go-regular 等内置字体或 .ttf/.otf 文件路径")
	text := flag.String("text", "", "要书写的文本，支持 ${path} 与 ${path|默认值}")
	size := flag.Float64("size", def.FontSize, "字号（px）")
	spacing := flag.Float64("spacing", def.LetterSpacing, "字间距（px）")
	strokeWidth := flag.Float64("stroke-width", def.StrokeWidth, "描边宽度（px）")
	speed := flag.Float64("speed", def.DrawSpeed, "绘制速度（px/s）")
	fillSpeed := flag.Float64("fill-speed", def.FillSpeedMultiplier, "点的绘制速度倍数")
	delay := flag.String("delay", "120ms", "字间延迟，例如 120ms 或 0.12s")
	timingMode := flag.String("timing", string(def.TimingMode), "时间策略：stagger 或 sequential")
	strategy := flag.String("strategy", string(def.Strategy), "动画策略：stroke-draw 或 sweep-reveal")
	color := flag.String("color", def.Color, "描边/填充颜色")
	easing := flag.String("easing", "", "描边动画的缓动函数，默认 linear")
	output := flag.String("out", "output/quill.svg", "SVG 输出路径，- 表示标准输出")
	split := flag.Bool("split", false, "另外输出几何 .svg 与样式 .css 两个文件")
	preview := flag.String("preview", "", "最终静帧 PDF 输出路径")
	debug := flag.String("debug", "", "排版与时间表调试 JSON 输出路径")
	dataJSON := flag.String("data", "", "绑定到文本的 JSON 数据")
	savePreset := flag.String("save-preset", "", "将最终参数保存为预设文件")
	minify := flag.Bool("minify", false, "压缩输出的 SVG 与 CSS")
	verbose := flag.Bool("v", false, "在标准错误输出调试日志")
	flag.Parse()

	if *verbose {
		compose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := options{
		input:      *input,
		presetName: *presetName,
		fontSrc:    *fontSrc,
		output:     *output,
		split:      *split,
		preview:    *preview,
		debug:      *debug,
		savePreset: *savePreset,
		minify:     *minify,
		req:        def,
	}
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &opts.data); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}
	if opts.input != "" {
		cfg, err := preset.Load(opts.input, opts.presetName, opts.req)
		if err != nil {
			log.Fatalf("读取预设失败: %v", err)
		}
		opts.req = cfg.Request
		if opts.fontSrc == "" && cfg.Font != "" {
			opts.fontSrc = cfg.Font
		}
	}

	// 显式给出的参数覆盖预设中的值。
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			opts.req.Text = *text
		case "size":
			opts.req.FontSize = *size
		case "spacing":
			opts.req.LetterSpacing = *spacing
		case "stroke-width":
			opts.req.StrokeWidth = *strokeWidth
		case "speed":
			opts.req.DrawSpeed = *speed
		case "fill-speed":
			opts.req.FillSpeedMultiplier = *fillSpeed
		case "delay":
			v, err := preset.ParseSeconds(*delay)
			if err != nil {
				flagErr = fmt.Errorf("-delay: %w", err)
			}
			opts.req.InterLetterDelay = v
		case "timing":
			opts.req.TimingMode = timing.Mode(*timingMode)
		case "strategy":
			opts.req.Strategy = renderer.Strategy(*strategy)
		case "color":
			opts.req.Color = *color
		case "easing":
			opts.req.Easing = *easing
		}
	})
	if flagErr != nil {
		log.Fatalf("参数无效: %v", flagErr)
	}

	if opts.output == pipeName && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("`-` 只能用于管道或重定向的标准输出")
	}

	art, err := run(opts, os.Stdout)
	if err != nil {
		log.Fatalf("生成 SVG 失败: %v", err)
	}
	report(os.Stderr, opts, art)
}

// run 串联预设、字体加载、生成与输出。
func run(opts options, stdout io.Writer) (*compose.Artifact, error) {
	rawText := opts.req.Text
	req := opts.req
	req.Text = binding.Interpolate(rawText, opts.data)
	if left := binding.Placeholders(req.Text); len(left) > 0 {
		log.Printf("以下占位符没有数据也没有默认值，按原文输出: %s", strings.Join(left, ", "))
	}

	baseDir := ""
	if opts.input != "" {
		baseDir = filepath.Dir(opts.input)
	}
	font, err := canvasrenderer.NewLoader(baseDir).Load(opts.fontSrc)
	if err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}

	art, err := compose.Generate(font, req, compose.Options{Minify: opts.minify})
	if err != nil {
		return nil, err
	}

	if err := writeSVG(opts, art, stdout); err != nil {
		return nil, err
	}
	if opts.preview != "" {
		style := canvasrenderer.PreviewStyle{
			Color:       req.Color,
			StrokeWidth: req.StrokeWidth,
			Filled:      art.Stats.Strategy == renderer.SweepReveal,
		}
		pdfBytes, err := canvasrenderer.RenderPDF(art.Layout, art.Viewport, style)
		if err != nil {
			return nil, fmt.Errorf("渲染预览 PDF 失败: %w", err)
		}
		if err := writeFile(opts.preview, pdfBytes); err != nil {
			return nil, err
		}
	}
	if opts.debug != "" {
		if err := ensureDir(opts.debug); err != nil {
			return nil, err
		}
		if err := layout.WriteDebugJSON(art.Layout, art.Schedule, opts.debug); err != nil {
			return nil, fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}
	if opts.savePreset != "" {
		saved := opts.req
		saved.Text = rawText
		name := opts.presetName
		if name == "" {
			name = "default"
		}
		if err := writeFile(opts.savePreset, []byte(preset.Encode(name, opts.fontSrc, saved))); err != nil {
			return nil, err
		}
	}
	return art, nil
}

func writeSVG(opts options, art *compose.Artifact, stdout io.Writer) error {
	if opts.output == pipeName {
		if opts.split {
			return errors.New("-split 不能与标准输出同时使用")
		}
		_, err := io.WriteString(stdout, art.Combined)
		return err
	}
	if !opts.split {
		return writeFile(opts.output, []byte(art.Combined))
	}
	if err := writeFile(opts.output, []byte(art.Geometry)); err != nil {
		return err
	}
	if !art.Separable() {
		log.Printf("动画策略 %s 没有样式块，只输出几何文件", art.Stats.Strategy)
		return nil
	}
	return writeFile(stylePath(opts.output), []byte(art.Style))
}

// stylePath 把输出路径的扩展名替换为 .css。
func stylePath(out string) string {
	return strings.TrimSuffix(out, filepath.Ext(out)) + ".css"
}

func writeFile(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入文件 %s 失败: %w", path, err)
	}
	return nil
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	return nil
}

func report(w io.Writer, opts options, art *compose.Artifact) {
	if opts.output != pipeName {
		fmt.Fprintf(w, "已生成 SVG：%s\n", opts.output)
		if opts.split && art.Separable() {
			fmt.Fprintf(w, "已生成样式：%s\n", stylePath(opts.output))
		}
	}
	vp := art.Viewport
	fmt.Fprintf(w, "字形 %d，动画单元 %d，总时长 %.2fs，视口 %.0f×%.0f，%d 字节（%s）\n",
		art.Stats.Glyphs, art.Stats.Units, art.Stats.TotalDuration,
		vp.Width, vp.Height, art.Stats.Bytes, art.Stats.Strategy)
}
