//go:build !intern_embedded

package intern

func defaultHasher() HasherBuilder {
	return SeededHasher()
}
