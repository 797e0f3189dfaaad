// Projection of regions and reads onto library coordinates

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

var ErrUndefinedDifference = errors.New("difference is not defined for overlapping coordinates")

// RegionCoordinate places a region on the half-open interval [Start, Stop).
type RegionCoordinate struct {
	Region
	Start int64 `json:"start"`
	Stop  int64 `json:"stop"`
}

// Coordinate is the set of region coordinates covered by one query object
// (a read, a region or a file).
type Coordinate struct {
	QueryID   string             `json:"query_id"`
	QueryName string             `json:"query_name"`
	QueryType string             `json:"query_type"`
	Strand    Strand             `json:"strand"`
	Regions   []RegionCoordinate `json:"rcv"`
}

// UnmarshalJSON decodes the bounds next to the embedded region, whose own
// UnmarshalJSON would otherwise swallow them.
func (rc *RegionCoordinate) UnmarshalJSON(data []byte) error {
	var bounds struct {
		Start int64 `json:"start"`
		Stop  int64 `json:"stop"`
	}
	if err := json.Unmarshal(data, &bounds); err != nil {
		return err
	}
	if err := rc.Region.UnmarshalJSON(data); err != nil {
		return err
	}
	rc.Start, rc.Stop = bounds.Start, bounds.Stop
	return nil
}

func (rc RegionCoordinate) String() string {
	return fmt.Sprintf("RegionCoordinate %s [%s]: [%d, %d)", rc.Name, rc.RegionType, rc.Start, rc.Stop)
}

// Sub returns the gap between two non-overlapping coordinates. Identical
// spans return that span.
func (rc RegionCoordinate) Sub(other RegionCoordinate) (RegionCoordinate, error) {
	var start, stop int64
	switch {
	case rc.Stop <= other.Start:
		start, stop = rc.Stop, other.Start
	case other.Stop <= rc.Start:
		start, stop = other.Stop, rc.Start
	case rc.Start == other.Start && rc.Stop == other.Stop:
		start, stop = rc.Start, rc.Stop
	default:
		return RegionCoordinate{}, ErrUndefinedDifference
	}

	length := stop - start
	if length < 0 {
		length = -length
	}
	return RegionCoordinate{
		Region: Region{
			RegionID:     fmt.Sprintf("%s - %s", rc.RegionID, other.RegionID),
			RegionType:   "difference",
			Name:         fmt.Sprintf("%s - %s", rc.Name, other.Name),
			SequenceType: "diff",
			Sequence:     placeholder("X", length),
			MinLen:       length,
			MaxLen:       length,
		},
		Start: start,
		Stop:  stop,
	}, nil
}

// ProjectRegionsToCoordinates lays the regions end to end using max_len.
func ProjectRegionsToCoordinates(regions []*Region) []RegionCoordinate {
	rcs := make([]RegionCoordinate, 0, len(regions))
	var prev int64
	for _, r := range regions {
		next := prev + r.MaxLen
		rcs = append(rcs, RegionCoordinate{Region: *r.Clone(), Start: prev, Stop: next})
		prev = next
	}
	return rcs
}

// IntersectRead keeps the coordinates overlapping [readStart, readStop) and
// clips them to it. The input is not modified.
func IntersectRead(rcs []RegionCoordinate, readStart, readStop int64) []RegionCoordinate {
	out := make([]RegionCoordinate, 0, len(rcs))
	for _, rc := range rcs {
		if readStart >= rc.Stop || readStop <= rc.Start {
			continue
		}
		clipped := RegionCoordinate{Region: *rc.Region.Clone(), Start: rc.Start, Stop: rc.Stop}
		if readStart >= clipped.Start {
			clipped.Start = readStart
		}
		if readStop < clipped.Stop {
			clipped.Stop = readStop
		}
		out = append(out, clipped)
	}
	return out
}

// MapReadToRegions returns the read and the leaves it sequences: the leaves
// after its primer for a pos read, the leaves before it (nearest first) for a
// neg read. The libspec is cut at the primer so a composite primer region
// counts as one leaf.
func (a *Assay) MapReadToRegions(modality, readID string) (*Read, []*Region, error) {
	libspec, err := a.GetLibrarySpec(modality)
	if err != nil {
		return nil, nil, err
	}

	idx := slices.IndexFunc(a.SequenceSpec, func(rd *Read) bool {
		return rd.ReadID == readID && rd.Modality == modality
	})
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: read_id '%s' in modality '%s'", ErrReadNotFound, readID, modality)
	}
	read := a.SequenceSpec[idx]

	leaves := libspec.LeavesCutAt(read.PrimerID)
	primerIdx := slices.IndexFunc(leaves, func(r *Region) bool { return r.RegionID == read.PrimerID })
	if primerIdx < 0 {
		return nil, nil, fmt.Errorf("%w: primer '%s' of read '%s'", ErrRegionNotFound, read.PrimerID, readID)
	}

	var regions []*Region
	if read.Strand == StrandNeg {
		regions = slices.Clone(leaves[:primerIdx])
		slices.Reverse(regions)
	} else {
		regions = slices.Clone(leaves[primerIdx+1:])
	}
	return read, regions, nil
}

// ReadCoordinate projects the regions sequenced by a read and clips them to
// the read length.
func (a *Assay) ReadCoordinate(modality, readID string) (*Coordinate, error) {
	read, regions, err := a.MapReadToRegions(modality, readID)
	if err != nil {
		return nil, err
	}

	rcs := IntersectRead(ProjectRegionsToCoordinates(regions), 0, read.MaxLen)
	return &Coordinate{
		QueryID:   read.ReadID,
		QueryName: read.Name,
		QueryType: "Read",
		Strand:    read.Strand,
		Regions:   rcs,
	}, nil
}

// RegionCoordinate projects the leaves of the first region named regionID.
func (a *Assay) RegionCoordinate(modality, regionID string) (*Coordinate, error) {
	libspec, err := a.GetLibrarySpec(modality)
	if err != nil {
		return nil, err
	}

	found := libspec.FindByID(regionID)
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: '%s' in modality '%s'", ErrRegionNotFound, regionID, modality)
	}
	rgn := found[0]

	return &Coordinate{
		QueryID:   rgn.RegionID,
		QueryName: rgn.Name,
		QueryType: "Region",
		Strand:    StrandPos,
		Regions:   ProjectRegionsToCoordinates(rgn.Leaves()),
	}, nil
}
