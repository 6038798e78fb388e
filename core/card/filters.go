package card

import "github.com/asaidimu/go-metafilter/core/filter"

// EmptyFilter accepts every card.
type EmptyFilter = filter.Always[*Card]

// CostFilter accepts cards whose cost lies strictly between its bounds,
// which default to 0 and math.MaxFloat64.
type CostFilter struct {
	r *filter.Range[*Card]
}

// NewCostFilter creates a CostFilter with the default bounds.
func NewCostFilter() *CostFilter {
	return &CostFilter{r: filter.NewRange((*Card).Cost)}
}

// MinCost sets the exclusive lower cost bound.
func (f *CostFilter) MinCost(value float64) *CostFilter {
	f.r.WithMin(value)
	return f
}

// MaxCost sets the exclusive upper cost bound.
func (f *CostFilter) MaxCost(value float64) *CostFilter {
	f.r.WithMax(value)
	return f
}

func (f *CostFilter) Evaluate(c *Card) bool {
	return f.r.Evaluate(c)
}

func (f *CostFilter) Clone() filter.Predicate[*Card] {
	return f.r.Clone()
}

// VersionFilter accepts cards whose version is in its accepted set.
type VersionFilter struct {
	m *filter.Membership[*Card, int]
}

// NewVersionFilter creates a VersionFilter accepting versions.
func NewVersionFilter(versions ...int) *VersionFilter {
	return &VersionFilter{m: filter.NewMembership((*Card).Version, versions...)}
}

// AddVersion adds version to the accepted set.
func (f *VersionFilter) AddVersion(version int) *VersionFilter {
	f.m.Add(version)
	return f
}

func (f *VersionFilter) Evaluate(c *Card) bool {
	return f.m.Evaluate(c)
}

func (f *VersionFilter) Clone() filter.Predicate[*Card] {
	return f.m.Clone()
}

// LeaderFilter accepts cards whose leader is in its accepted set.
type LeaderFilter struct {
	m *filter.Membership[*Card, int]
}

// NewLeaderFilter creates a LeaderFilter accepting leaders.
func NewLeaderFilter(leaders ...int) *LeaderFilter {
	return &LeaderFilter{m: filter.NewMembership((*Card).LeaderID, leaders...)}
}

// AddLeader adds leader to the accepted set.
func (f *LeaderFilter) AddLeader(leader int) *LeaderFilter {
	f.m.Add(leader)
	return f
}

func (f *LeaderFilter) Evaluate(c *Card) bool {
	return f.m.Evaluate(c)
}

func (f *LeaderFilter) Clone() filter.Predicate[*Card] {
	return f.m.Clone()
}
