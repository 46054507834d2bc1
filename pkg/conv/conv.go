// Package conv 提供类型转换、map/slice 转换等工具，用于简化配置解析中的重复逻辑。
package conv

// ToFloat64 将 any 转为 float64。
// 支持 float64、float32、int、int64、int32；bool 视为 1.0/0.0。
func ToFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	default:
		return 0, false
	}
}

// ToInt 将 any 转为 int。
func ToInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case int32:
		return int(val), true
	case float64:
		return int(val), true
	case float32:
		return int(val), true
	default:
		return 0, false
	}
}

// ToString 将 any 转为 string。仅支持 string 类型，否则返回 ("", false)。
func ToString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ConfigGet 从配置 map 中取值，类型不符时返回默认值。
func ConfigGet[T any](config map[string]any, key string, def T) T {
	if v, ok := config[key]; ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	return def
}

// ConfigGetFloat64 从配置 map 中取数值（兼容 YAML 解析出的 int）。
func ConfigGetFloat64(config map[string]any, key string, def float64) float64 {
	if v, ok := config[key]; ok {
		if f, ok := ToFloat64(v); ok {
			return f
		}
	}
	return def
}

// ConfigGetInt 从配置 map 中取整数（兼容 YAML 解析出的 float64）。
func ConfigGetInt(config map[string]any, key string, def int) int {
	if v, ok := config[key]; ok {
		if n, ok := ToInt(v); ok {
			return n
		}
	}
	return def
}

// SliceAnyToString 将 []any 转为 []string，忽略非字符串元素。
func SliceAnyToString(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// MapToFloat64 将 map[string]any 转为 map[string]float64，忽略无法转换的值。
func MapToFloat64(m map[string]any) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if f, ok := ToFloat64(v); ok {
			out[k] = f
		}
	}
	return out
}
