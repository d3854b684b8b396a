package apierror

// mergeData returns base overlaid with override, one level deep: a key present
// in override replaces the base value whole, nested maps included. The result
// is always a fresh map, nil when both inputs are empty.
func mergeData(base, override map[string]interface{}) map[string]interface{} {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	merged := make(map[string]interface{}, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

func copyData(data map[string]interface{}) map[string]interface{} {
	return mergeData(data, nil)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
