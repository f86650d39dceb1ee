package pool

// SubmitBlocks parallelizes the half-open range [first, last): the range is
// partitioned into at most numBlocks contiguous blocks, one task per block
// invoking fn(start, end), and the futures are collected into a MultiFuture
// in block order. A numBlocks of zero or less defaults to the worker count.
//
// An empty range submits nothing and returns an empty MultiFuture; that is
// a "do nothing" contract, not an error. Blocks are non-overlapping by
// construction, so block functions writing to disjoint regions of a shared
// slice need no extra locking.
func SubmitBlocks[T Integer, R any](p *Pool, first, last T, fn func(start, end T) (R, error), numBlocks int) *MultiFuture[R] {
	if numBlocks <= 0 {
		numBlocks = p.NumWorkers()
	}

	mf := &MultiFuture[R]{}
	for _, b := range Partition(first, last, numBlocks) {
		start, end := b.Start, b.End
		mf.Push(Submit(p, func() (R, error) {
			return fn(start, end)
		}))
	}
	return mf
}

// DetachBlocks is SubmitBlocks without futures: one detached task per
// block, completion observable only through Wait.
func DetachBlocks[T Integer](p *Pool, first, last T, fn func(start, end T), numBlocks int) error {
	if numBlocks <= 0 {
		numBlocks = p.NumWorkers()
	}

	for _, b := range Partition(first, last, numBlocks) {
		start, end := b.Start, b.End
		if err := p.Detach(func() {
			fn(start, end)
		}); err != nil {
			return err
		}
	}
	return nil
}
