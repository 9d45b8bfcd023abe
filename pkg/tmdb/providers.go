package tmdb

import "strings"

// TMDB返回的渠道名到本系统 StreamingService 名称的映射
var providerNameMap = map[string]string{
	"netflix":            "Netflix",
	"hulu":               "Hulu",
	"amazon prime video": "Amazon Prime Video",
	"amazon video":       "Amazon Prime Video",
	"prime video":        "Amazon Prime Video",
	"disney plus":        "Disney+",
	"disney+":            "Disney+",
	"hbo max":            "HBO Max",
	"max":                "Max",
	"peacock":            "Peacock",
	"paramount+":         "Paramount+",
	"paramount plus":     "Paramount+",
	"apple tv plus":      "Apple TV+",
	"apple tv+":          "Apple TV+",
	"starz":              "Starz",
	"showtime":           "Showtime",
	"mubi":               "Mubi",
	"criterion channel":  "Criterion Channel",
	"crunchyroll":        "Crunchyroll",
}

// NormalizeProviderName 将TMDB渠道名映射为规范平台名
// 未知渠道原样返回（仅去除首尾空白）
func NormalizeProviderName(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if name, ok := providerNameMap[key]; ok {
		return name
	}
	return strings.TrimSpace(raw)
}
