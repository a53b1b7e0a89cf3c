package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable pipeline from transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// InPlace applies transforms to every non-nil target.
func InPlace[T any](targets []*T, transforms ...func(T) T) {
	for _, target := range targets {
		if target == nil {
			continue
		}
		*target = Apply(*target, transforms...)
	}
}
