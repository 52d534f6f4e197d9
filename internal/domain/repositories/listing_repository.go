package repositories

// ListingRepository gives access to package listing files such as the
// output of `rpm -qa` captured on each node.
type ListingRepository interface {
	// Exists reports whether a listing exists at path.
	Exists(path string) bool

	// ReadLines returns the listing split into lines, each keeping its
	// trailing line terminator.
	ReadLines(path string) ([]string, error)
}
