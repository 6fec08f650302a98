package maputil

func GetKeyFromMap(obj map[string]any, key string, defaultValue any) any {
	if len(obj) == 0 {
		return defaultValue
	}

	val, ok := obj[key]
	if !ok {
		return defaultValue
	}

	return val
}
