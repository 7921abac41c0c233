package enrich

// Outcome is the result of a pipeline stage: either a real value or a
// locally computed fallback. The value is always populated; no stage ever
// returns an error or an absent result.
type Outcome[T any] struct {
	Value    T
	FellBack bool
}

func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

func Fallback[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v, FellBack: true}
}
