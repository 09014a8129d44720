package engine

import (
	"sort"

	"github.com/groblegark/waveplan/internal/model"
)

// BuildPlanSchedule packs the incomplete issues into capacity-bounded waves
// that respect blocking order. Complete issues are treated as already
// satisfied: they pre-seed the completed set and never occupy a wave slot.
//
// Each round takes the ready subset of the remaining issues; if a pure cycle
// leaves nothing ready, the whole remaining set becomes the candidate pool
// so the loop always makes progress. Candidates are ordered by their index
// in completionOrder (index in the raw input for ids absent from it), then
// by id, which makes wave packing deterministic.
func BuildPlanSchedule(issues []*model.Issue, edges []model.BlockingEdge, completionOrder []string, capacity int) *model.PlanSchedule {
	if capacity < 1 {
		capacity = 1
	}

	orderIdx := make(map[string]int, len(completionOrder))
	for i, id := range completionOrder {
		orderIdx[id] = i
	}

	byID := make(map[string]*model.Issue, len(issues))
	rawIdx := make(map[string]int, len(issues))
	remaining := make(map[string]struct{})
	completed := make(map[string]struct{})
	for i, issue := range issues {
		if issue == nil || issue.ID == "" {
			continue
		}
		byID[issue.ID] = issue
		rawIdx[issue.ID] = i
		if issue.Status.IsComplete() {
			completed[issue.ID] = struct{}{}
		} else {
			remaining[issue.ID] = struct{}{}
		}
	}

	blockers := make(map[string][]string, len(byID))
	for _, e := range edges {
		blockers[e.To] = append(blockers[e.To], e.From)
	}

	sortIdx := func(id string) int {
		if i, ok := orderIdx[id]; ok {
			return i
		}
		return rawIdx[id]
	}

	var waves [][]*model.Issue
	for len(remaining) > 0 {
		var candidates []string
		for id := range remaining {
			blocked := false
			for _, b := range blockers[id] {
				if _, open := remaining[b]; open {
					blocked = true
					break
				}
			}
			if !blocked {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) == 0 {
			// Pure cycle remainder; schedule everything left.
			for id := range remaining {
				candidates = append(candidates, id)
			}
		}

		sort.Slice(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if sortIdx(a) != sortIdx(b) {
				return sortIdx(a) < sortIdx(b)
			}
			return a < b
		})

		if len(candidates) > capacity {
			candidates = candidates[:capacity]
		}

		wave := make([]*model.Issue, 0, len(candidates))
		for _, id := range candidates {
			wave = append(wave, byID[id])
			completed[id] = struct{}{}
			delete(remaining, id)
		}
		waves = append(waves, wave)
	}

	schedule := &model.PlanSchedule{
		Waves:      waves,
		TotalWaves: len(waves),
		Capacity:   capacity,
	}
	for _, w := range waves {
		schedule.TotalItems += len(w)
	}
	if schedule.TotalWaves > 0 {
		schedule.AverageThroughput = float64(schedule.TotalItems) / float64(schedule.TotalWaves)
	}
	if schedule.Waves == nil {
		schedule.Waves = [][]*model.Issue{}
	}
	return schedule
}
