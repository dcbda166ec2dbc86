package thread

import (
	"time"

	"github.com/CrestNiraj12/rantthread/domain"
)

const pageLatency = 800 * time.Millisecond

// pager reveals top-level comments a page at a time. visible never exceeds
// total and only grows through finish.
type pager struct {
	pageSize int
	visible  int
	total    int
	loading  bool
}

func newPager(pageSize, total int) pager {
	return pager{
		pageSize: pageSize,
		visible:  min(pageSize, total),
		total:    total,
	}
}

// displayed returns the exposed prefix of all.
func (p pager) displayed(all []*domain.ReplyNode) []*domain.ReplyNode {
	return all[:min(p.visible, len(all))]
}

func (p pager) canLoadMore() bool {
	return !p.loading && p.visible < p.total
}

// begin enters the loading state. It reports false when a load is already
// in flight or everything is shown.
func (p *pager) begin() bool {
	if !p.canLoadMore() {
		return false
	}
	p.loading = true
	return true
}

func (p *pager) finish() {
	p.visible = min(p.visible+p.pageSize, p.total)
	p.loading = false
}

// allLoaded reports whether the "all comments loaded" indicator applies. It
// is not shown when the first page already held everything.
func (p pager) allLoaded() bool {
	return p.visible == p.total && p.visible > p.pageSize
}

// setTotal follows the top-level list after a local append or delete. When
// everything was shown, a newly appended comment is shown too.
func (p *pager) setTotal(total int) {
	showingAll := p.visible >= p.total
	p.total = max(total, 0)
	if showingAll {
		p.visible = p.total
	}
	p.visible = min(p.visible, p.total)
}

// resync keeps the reveal position across a reload of the same post.
func (p *pager) resync(total int) {
	p.total = max(total, 0)
	p.visible = min(max(p.visible, min(p.pageSize, p.total)), p.total)
}
