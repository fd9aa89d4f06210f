package visitor

// Visitor visits pairs of (key, element) by calling the supplied callback for each pair.
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K any, E any] func(func(key K, element E) (bool, error)) error
