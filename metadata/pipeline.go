package metadata

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// SceneKeys are the scalar scene statistics present in every document.
var SceneKeys = []string{
	"altitude_variation",
	"curb_height",
	"dist_bicyclists_mean",
	"dist_bicyclists_stddev",
	"dist_buses_mean",
	"dist_buses_stddev",
	"dist_cars_mean",
	"dist_cars_stddev",
	"dist_motorcyclists_mean",
	"dist_motorcyclists_stddev",
	"dist_pedestrians_mean",
	"dist_pedestrians_stddev",
	"dist_trains_mean",
	"dist_trains_stddev",
	"dist_trucks_mean",
	"dist_trucks_stddev",
	"ego_speed",
	"fence_height",
	"fence_presence",
	"median_presence",
	"num_bicyclists",
	"num_buses",
	"num_cars",
	"num_motorcyclists",
	"num_pedestrians",
	"num_trains",
	"num_trucks",
	"parking_angle",
	"parking_presence",
	"rel_dist_to_isect",
	"road_material_type",
	"sidewalk_width",
	"sky_contrast",
	"sun_height",
	"wall_height",
	"wall_presence",
}

// IsSceneKey reports whether key is one of SceneKeys.
func IsSceneKey(key string) bool {
	for _, k := range SceneKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Stride computes the slicing step that subsamples num items down to at most
// desired items. A non-positive desired count yields 1.
func Stride(num, desired int) int {
	if desired <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(float64(num)/float64(desired))))
}

// Subsample keeps every Stride(len(indices), desired)-th index starting at
// the first one. The input is returned untouched when desired <= 0.
func Subsample(indices []int, desired int) []int {
	if desired <= 0 {
		return indices
	}
	step := Stride(len(indices), desired)
	out := make([]int, 0, (len(indices)+step-1)/step)
	for i := 0; i < len(indices); i += step {
		out = append(out, indices[i])
	}
	return out
}

// Values extracts key for every index, in the order given.
func Values(indices []int, records map[int]*Metadata, key string) ([]float64, error) {
	values := make([]float64, len(indices))
	for i, idx := range indices {
		m, ok := records[idx]
		if !ok {
			return nil, errors.Errorf("no metadata loaded for index %d", idx)
		}
		v, err := m.SceneValue(key)
		if err != nil {
			return nil, errors.Wrapf(err, "index %d", idx)
		}
		values[i] = v
	}
	return values, nil
}

// Filter keeps the indices whose key lies in [lo, hi]. The result is sorted
// by index.
func Filter(indices []int, records map[int]*Metadata, key string, lo, hi float64) ([]int, error) {
	values, err := Values(indices, records, key)
	if err != nil {
		return nil, err
	}
	var out []int
	for i, v := range values {
		if v >= lo && v <= hi {
			out = append(out, indices[i])
		}
	}
	sort.Ints(out)
	return out, nil
}

// Sort orders indices by ascending key. Ties keep their input order.
func Sort(indices []int, records map[int]*Metadata, key string) ([]int, error) {
	values, err := Values(indices, records, key)
	if err != nil {
		return nil, err
	}
	order := make([]int, len(indices))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})
	out := make([]int, len(indices))
	for i, o := range order {
		out[i] = indices[o]
	}
	return out, nil
}

// Pipeline selects a subset of the dataset for display.
type Pipeline struct {
	// AnalyzeNum caps how many indices are considered at all (<= 0 disables).
	AnalyzeNum int
	// FilterKey restricts the set to FilterMin <= value <= FilterMax.
	FilterKey string
	FilterMin float64
	FilterMax float64
	// SortKey orders the set by ascending value.
	SortKey string
	// DisplayNum caps how many indices are returned (<= 0 disables).
	DisplayNum int
	// ValueKey forces metadata to be loaded so the caller can report it.
	ValueKey string
}

// Result is the output of a pipeline run.
type Result struct {
	Indices []int
	// Records is nil unless some stage needed metadata.
	Records map[int]*Metadata
}

// Validate rejects unknown keys and inverted ranges.
func (p Pipeline) Validate() error {
	for _, key := range []string{p.FilterKey, p.SortKey, p.ValueKey} {
		if key != "" && !IsSceneKey(key) {
			return errors.Errorf("unknown scene key %q", key)
		}
	}
	if p.FilterKey != "" && p.FilterMin > p.FilterMax {
		return errors.Errorf("filter range [%g, %g] is empty", p.FilterMin, p.FilterMax)
	}
	return nil
}

// Run applies subsample, filter, sort, subsample to indices. Metadata is read
// from dir only when a key is set.
func (p Pipeline) Run(dir string, indices []int) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Indices: Subsample(indices, p.AnalyzeNum)}
	if p.FilterKey == "" && p.SortKey == "" && p.ValueKey == "" {
		res.Indices = Subsample(res.Indices, p.DisplayNum)
		return res, nil
	}

	records, err := ReadMany(dir, res.Indices)
	if err != nil {
		return nil, err
	}
	res.Records = records

	if p.FilterKey != "" {
		if res.Indices, err = Filter(res.Indices, records, p.FilterKey, p.FilterMin, p.FilterMax); err != nil {
			return nil, err
		}
	}
	if p.SortKey != "" {
		if res.Indices, err = Sort(res.Indices, records, p.SortKey); err != nil {
			return nil, err
		}
	}
	res.Indices = Subsample(res.Indices, p.DisplayNum)
	return res, nil
}
