package harness

// RunSuite executes every algorithm once at (size, seed), in order.
// Failures captured by an algorithm's normalizer do not stop the suite.
func RunSuite(algos []Algorithm, size int, seed uint32) []Stat {
	stats := make([]Stat, 0, len(algos))
	for _, a := range algos {
		stats = append(stats, Execute(a.Bind(size, seed)))
	}
	return stats
}
