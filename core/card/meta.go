package card

import "github.com/asaidimu/go-metafilter/core/filter"

// MetaFilter combines a CostFilter and a VersionFilter. Their builder methods
// are promoted, so a MetaFilter is configured directly:
//
//	f := card.NewMetaFilter()
//	f.AddVersion(1).AddVersion(3)
//	f.MaxCost(50)
//
// A MetaFilter must not be reconfigured while a pass that evaluates it is
// running. Use Build to obtain a frozen copy for concurrent use.
//
// A nil slot accepts every card, so the zero value is an EmptyFilter. The
// promoted builder methods need both slots set; use NewMetaFilter.
type MetaFilter struct {
	*CostFilter
	*VersionFilter
}

// NewMetaFilter creates a MetaFilter with default cost bounds and no
// accepted versions.
func NewMetaFilter() *MetaFilter {
	return &MetaFilter{
		CostFilter:    NewCostFilter(),
		VersionFilter: NewVersionFilter(),
	}
}

// Evaluate reports whether c passes both the cost and the version filter.
func (f *MetaFilter) Evaluate(c *Card) bool {
	return (f.CostFilter == nil || f.CostFilter.Evaluate(c)) &&
		(f.VersionFilter == nil || f.VersionFilter.Evaluate(c))
}

// Build returns a frozen conjunction of the current configuration, cost
// first. Later builder calls on f do not affect it.
func (f *MetaFilter) Build() *filter.Meta[*Card] {
	var cost, version filter.Predicate[*Card] = EmptyFilter{}, EmptyFilter{}
	if f.CostFilter != nil {
		cost = f.CostFilter
	}
	if f.VersionFilter != nil {
		version = f.VersionFilter
	}
	return filter.All(cost, version)
}

// Clone returns Build(), so a MetaFilter passed to filter.All is frozen too.
func (f *MetaFilter) Clone() filter.Predicate[*Card] {
	return f.Build()
}
