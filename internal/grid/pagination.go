package grid

// SetPage moves to page n, silently clamped into [1, TotalPages].
// Out-of-range requests are never an error.
func (t *Table[T]) SetPage(n int) {
	t.page = clampInt(n, 1, t.TotalPages())
}

// NextPage advances one page, clamped at the end.
func (t *Table[T]) NextPage() { t.SetPage(t.page + 1) }

// PrevPage steps back one page, clamped at 1.
func (t *Table[T]) PrevPage() { t.SetPage(t.page - 1) }

// CurrentPage is always within [1, TotalPages].
func (t *Table[T]) CurrentPage() int { return t.page }

// TotalPages is max(1, ceil(filteredCount/pageSize)), and 1 when
// pagination is disabled. An empty or fully filtered-out dataset still
// has one (empty) page.
func (t *Table[T]) TotalPages() int {
	return t.totalPagesFor(len(t.filtered()))
}

func (t *Table[T]) totalPagesFor(filtered int) int {
	if !t.opts.Paginate {
		return 1
	}
	n := (filtered + t.opts.PageSize - 1) / t.opts.PageSize
	if n < 1 {
		n = 1
	}
	return n
}

// reclampPage re-applies the page bound after anything that can change
// the filtered count. The page stays put unless it fell beyond the new
// total; it is never reset to 1 early.
func (t *Table[T]) reclampPage() {
	t.page = clampInt(t.page, 1, t.TotalPages())
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
