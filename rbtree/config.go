package rbtree

// DuplicatePolicy selects what Insert does with a key that is already stored.
type DuplicatePolicy uint8

const (
	// OverwriteDuplicates replaces the stored value, like a Go map.
	OverwriteDuplicates DuplicatePolicy = iota
	// RejectDuplicates leaves the tree untouched and returns ErrDuplicateKey.
	RejectDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case OverwriteDuplicates:
		return "overwrite"
	case RejectDuplicates:
		return "reject"
	default:
		return "unknown"
	}
}

// Config defines the behaviour of a Tree. The zero value is usable.
type Config struct {
	Duplicates DuplicatePolicy

	// NodePool is the number of removed nodes kept for reuse by later
	// inserts. Zero disables recycling.
	NodePool int
}
