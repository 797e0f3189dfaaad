// Region tree: the structural layout of a sequencing library

package model

import (
	"fmt"
	"sort"
	"strings"
)

type SequenceType string

const (
	SequenceTypeFixed  SequenceType = "fixed"
	SequenceTypeRandom SequenceType = "random"
	SequenceTypeOnlist SequenceType = "onlist"
	SequenceTypeJoined SequenceType = "joined"
)

// Region is one node of the library structure. A region without children is
// a leaf and its bounds are authoritative. For an internal node the bounds and
// sequence are derived from the children and may be stale until Resynchronize
// is called.
type Region struct {
	RegionID     string       `json:"region_id"`
	RegionType   string       `json:"region_type"`
	Name         string       `json:"name"`
	SequenceType SequenceType `json:"sequence_type"`
	Sequence     string       `json:"sequence"`
	MinLen       int64        `json:"min_len"`
	MaxLen       int64        `json:"max_len"`
	Onlist       *Onlist      `json:"onlist"`
	Regions      []*Region    `json:"regions"`
}

// RegionUpdate carries the fields to change in UpdateByID. Nil fields are
// left untouched.
type RegionUpdate struct {
	RegionID     *string       `json:"region_id,omitempty"`
	RegionType   *string       `json:"region_type,omitempty"`
	Name         *string       `json:"name,omitempty"`
	SequenceType *SequenceType `json:"sequence_type,omitempty"`
	Sequence     *string       `json:"sequence,omitempty"`
	MinLen       *int64        `json:"min_len,omitempty"`
	MaxLen       *int64        `json:"max_len,omitempty"`
}

func (r *Region) IsLeaf() bool {
	return len(r.Regions) == 0
}

// GetSequence concatenates the leaf sequences left to right. A leaf without a
// literal sequence contributes min_len 'X' characters.
func (r *Region) GetSequence() string {
	if r.IsLeaf() {
		if r.Sequence == "" {
			return placeholder("X", r.MinLen)
		}
		return r.Sequence
	}

	var sb strings.Builder
	for _, child := range r.Regions {
		sb.WriteString(child.GetSequence())
	}
	return sb.String()
}

// GetLength returns (min_len, max_len). Internal nodes sum their children.
func (r *Region) GetLength() (int64, int64) {
	if r.IsLeaf() {
		return r.MinLen, r.MaxLen
	}

	var minLen, maxLen int64
	for _, child := range r.Regions {
		cmin, cmax := child.GetLength()
		minLen += cmin
		maxLen += cmax
	}
	return minLen, maxLen
}

// Resynchronize recomputes bounds and sequence bottom-up. It must be called
// after any direct edit of the subtree.
func (r *Region) Resynchronize() {
	for _, child := range r.Regions {
		child.Resynchronize()
	}

	r.MinLen, r.MaxLen = r.GetLength()

	switch r.SequenceType {
	case SequenceTypeRandom:
		r.Sequence = placeholder("X", r.MinLen)
	case SequenceTypeOnlist:
		r.Sequence = placeholder("N", r.MinLen)
	default:
		r.Sequence = r.GetSequence()
	}
}

// collect walks the subtree in pre-order and keeps every node matching keep.
func (r *Region) collect(keep func(*Region) bool, found []*Region) []*Region {
	if keep(r) {
		found = append(found, r)
	}
	for _, child := range r.Regions {
		found = child.collect(keep, found)
	}
	return found
}

// FindByID returns every node (self included) with the given region_id in
// pre-order.
func (r *Region) FindByID(regionID string) []*Region {
	return r.collect(func(n *Region) bool { return n.RegionID == regionID }, nil)
}

func (r *Region) FindByType(regionType string) []*Region {
	return r.collect(func(n *Region) bool { return n.RegionType == regionType }, nil)
}

// FindWithOnlist returns every node carrying an onlist, leaves or not.
func (r *Region) FindWithOnlist() []*Region {
	return r.collect(func(n *Region) bool { return n.Onlist != nil }, nil)
}

func (r *Region) GetOnlist() *Onlist {
	return r.Onlist
}

func (r *Region) Leaves() []*Region {
	return r.leaves(nil)
}

func (r *Region) leaves(found []*Region) []*Region {
	if r.IsLeaf() {
		return append(found, r)
	}
	for _, child := range r.Regions {
		found = child.leaves(found)
	}
	return found
}

// LeavesCutAt is Leaves with the node named regionID treated as a leaf: it is
// collected whole and its children are not visited.
func (r *Region) LeavesCutAt(regionID string) []*Region {
	return r.leavesCutAt(regionID, nil)
}

func (r *Region) leavesCutAt(regionID string, found []*Region) []*Region {
	if r.RegionID == regionID || r.IsLeaf() {
		return append(found, r)
	}
	for _, child := range r.Regions {
		found = child.leavesCutAt(regionID, found)
	}
	return found
}

// LeafTypes returns the distinct region types of the leaves, sorted.
func (r *Region) LeafTypes() []string {
	seen := make(map[string]struct{})
	for _, leaf := range r.Leaves() {
		seen[leaf.RegionType] = struct{}{}
	}

	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ToNewick renders the subtree as a Newick-like string, e.g.
// ('a:10','b:20')root.
func (r *Region) ToNewick() string {
	if r.IsLeaf() {
		return fmt.Sprintf("'%s:%d'", r.RegionID, r.MaxLen)
	}

	parts := make([]string, len(r.Regions))
	for i, child := range r.Regions {
		parts[i] = child.ToNewick()
	}
	return fmt.Sprintf("(%s)%s", strings.Join(parts, ","), r.RegionID)
}

// UpdateByID applies upd to the first node named targetID on each branch.
// A match stops the descent below that node only; sibling subtrees are
// searched independently, so disjoint duplicates are all updated.
// Derived fields of ancestors are not refreshed.
func (r *Region) UpdateByID(targetID string, upd RegionUpdate) {
	if r.RegionID == targetID {
		r.apply(upd)
		return
	}
	for _, child := range r.Regions {
		child.UpdateByID(targetID, upd)
	}
}

func (r *Region) apply(upd RegionUpdate) {
	if upd.RegionID != nil {
		r.RegionID = *upd.RegionID
	}
	if upd.RegionType != nil {
		r.RegionType = *upd.RegionType
	}
	if upd.Name != nil {
		r.Name = *upd.Name
	}
	if upd.SequenceType != nil {
		r.SequenceType = *upd.SequenceType
	}
	if upd.Sequence != nil {
		r.Sequence = *upd.Sequence
	}
	if upd.MinLen != nil {
		r.MinLen = *upd.MinLen
	}
	if upd.MaxLen != nil {
		r.MaxLen = *upd.MaxLen
	}
}

// Reverse reverses the sequence of every leaf in place. The order of
// children is kept.
func (r *Region) Reverse() {
	if r.IsLeaf() {
		r.Sequence = ReverseSequence(r.Sequence)
		return
	}
	for _, child := range r.Regions {
		child.Reverse()
	}
}

// Complement complements the sequence of every leaf in place.
func (r *Region) Complement() {
	if r.IsLeaf() {
		r.Sequence = ComplementSequence(r.Sequence)
		return
	}
	for _, child := range r.Regions {
		child.Complement()
	}
}

// Clone returns a deep copy of the subtree.
func (r *Region) Clone() *Region {
	if r == nil {
		return nil
	}

	c := *r
	if r.Onlist != nil {
		ol := *r.Onlist
		c.Onlist = &ol
	}
	if r.Regions != nil {
		c.Regions = make([]*Region, len(r.Regions))
		for i, child := range r.Regions {
			c.Regions[i] = child.Clone()
		}
	}
	return &c
}

func (r *Region) String() string {
	return fmt.Sprintf("%s(%d, %d)", r.RegionType, r.MinLen, r.MaxLen)
}
