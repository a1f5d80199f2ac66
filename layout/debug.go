package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将排版结果（含子轮廓长度）输出为 JSON，便于调试。
// extra 非空时一并写入，例如时间表。
func WriteDebugJSON(res *Result, extra any, path string) error {
	if res == nil {
		return nil
	}
	payload := struct {
		Layout *Result `json:"layout"`
		Extra  any     `json:"extra,omitempty"`
	}{Layout: res, Extra: extra}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
