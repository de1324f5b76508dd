//go:build intern_embedded

package intern

// The reduced build ships no default strategy; callers pass WithHasher.
func defaultHasher() HasherBuilder {
	return nil
}
