package parse

// DefaultMaxDepth bounds element nesting; inputs nesting deeper fail
// with ErrTooDeep rather than exhausting the stack.
const DefaultMaxDepth = 1024

type ParseOption func(*parseOpts)

type parseOpts struct {
	arrayTags map[string]bool
	maxDepth  int
}

func newParseOpts(opts []ParseOption) *parseOpts {
	po := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(po)
	}
	return po
}

// ArrayTags pre-declares tag names that always deserialize to a
// sequence, even on first occurrence.
func ArrayTags(tags ...string) ParseOption {
	return func(po *parseOpts) {
		if po.arrayTags == nil {
			po.arrayTags = make(map[string]bool, len(tags))
		}
		for _, t := range tags {
			po.arrayTags[t] = true
		}
	}
}

// MaxDepth overrides DefaultMaxDepth. n <= 0 keeps the default.
func MaxDepth(n int) ParseOption {
	return func(po *parseOpts) {
		if n > 0 {
			po.maxDepth = n
		}
	}
}
