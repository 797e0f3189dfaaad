package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSelector = errors.New("unknown selector")

// FindSelector names the kind of object Assay.Find searches for.
type FindSelector int

const (
	FindRead FindSelector = iota
	FindRegion
	FindRegionType
	FindFile
)

func (s FindSelector) String() string {
	switch s {
	case FindRead:
		return "read"
	case FindRegion:
		return "region"
	case FindRegionType:
		return "region-type"
	case FindFile:
		return "file"
	default:
		return "unknown"
	}
}

func ParseFindSelector(selector string) (FindSelector, error) {
	switch strings.ToLower(selector) {
	case "read":
		return FindRead, nil
	case "region":
		return FindRegion, nil
	case "region-type", "region_type":
		return FindRegionType, nil
	case "file":
		return FindFile, nil
	default:
		return 0, fmt.Errorf("%w '%s', valid selectors are: read, region, region-type, file", ErrUnknownSelector, selector)
	}
}

// FindResult holds whichever list the selector produced.
type FindResult struct {
	Reads   []*Read   `json:"reads,omitempty"`
	Regions []*Region `json:"regions,omitempty"`
	Files   []File    `json:"files,omitempty"`
}

// Find searches one modality for reads, regions or files by id (or by region
// type for FindRegionType). File search covers read files and onlists.
func (a *Assay) Find(selector FindSelector, modality, id string) (*FindResult, error) {
	res := &FindResult{}

	switch selector {
	case FindRead:
		for _, rd := range a.GetSequenceSpec(modality) {
			if rd.ReadID == id {
				res.Reads = append(res.Reads, rd)
			}
		}
	case FindRegion, FindRegionType:
		libspec, err := a.GetLibrarySpec(modality)
		if err != nil {
			return nil, err
		}
		if selector == FindRegion {
			res.Regions = libspec.FindByID(id)
		} else {
			res.Regions = libspec.FindByType(id)
		}
	case FindFile:
		for _, rd := range a.GetSequenceSpec(modality) {
			for _, f := range rd.Files {
				if f.FileID == id {
					res.Files = append(res.Files, f)
				}
			}
		}
		onlists, err := a.OnlistFiles(modality)
		if err != nil {
			return nil, err
		}
		for _, ol := range onlists {
			if ol.FileID == id {
				res.Files = append(res.Files, File(ol))
			}
		}
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownSelector, selector)
	}
	return res, nil
}
