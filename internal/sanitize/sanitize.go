// File: internal/sanitize/sanitize.go
package sanitize

import "github.com/microcosm-cc/bluemonday"

// policy 移除所有 HTML 標籤，對應原本套在所有輸入上的 XSS 過濾
var policy = bluemonday.StrictPolicy()

// Clean 清洗單一輸入字串
func Clean(s string) string {
	return policy.Sanitize(s)
}
