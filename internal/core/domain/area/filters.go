package area

// Filters never fail: a nil or empty input yields an empty, non-nil slice.

// ByType returns the areas whose area_type equals t.
func ByType(areas []Area, t Type) []Area {
	out := make([]Area, 0)
	if t == "" {
		return out
	}
	for _, a := range areas {
		if a.AreaType == t {
			out = append(out, a)
		}
	}
	return out
}

// ByParentID returns the areas whose parent_id equals parentID after normalisation.
// parentID may be an ID, an integer or a numeric string.
func ByParentID(areas []Area, parentID any) []Area {
	id, ok := ParseID(parentID)
	if !ok {
		return make([]Area, 0)
	}
	return ByParentIDs(areas, []ID{id})
}

// ByParentIDs returns the areas whose parent_id is any of parentIDs.
// Values that do not normalise to an id are ignored.
func ByParentIDs[T any](areas []Area, parentIDs []T) []Area {
	out := make([]Area, 0)
	set := idSet(parentIDs)
	if len(set) == 0 {
		return out
	}
	for _, a := range areas {
		if a.ParentID == nil {
			continue
		}
		if _, ok := set[*a.ParentID]; ok {
			out = append(out, a)
		}
	}
	return out
}

// ExcludingIDs returns the areas whose id is not in excludeIDs.
func ExcludingIDs[T any](areas []Area, excludeIDs []T) []Area {
	out := make([]Area, 0, len(areas))
	set := idSet(excludeIDs)
	for _, a := range areas {
		if _, skip := set[a.ID]; !skip {
			out = append(out, a)
		}
	}
	return out
}

// ByID returns the first area with the given id.
func ByID(areas []Area, id any) (Area, bool) {
	want, ok := ParseID(id)
	if !ok {
		return Area{}, false
	}
	for _, a := range areas {
		if a.ID == want {
			return a, true
		}
	}
	return Area{}, false
}

// ByTypeExcludingIDs is ByType followed by ExcludingIDs.
func ByTypeExcludingIDs[T any](areas []Area, t Type, excludeIDs []T) []Area {
	return ExcludingIDs(ByType(areas, t), excludeIDs)
}

// ByTypeAndParent is ByType followed by ByParentID.
func ByTypeAndParent(areas []Area, t Type, parentID any) []Area {
	return ByParentID(ByType(areas, t), parentID)
}

func idSet[T any](values []T) map[ID]struct{} {
	set := make(map[ID]struct{}, len(values))
	for _, id := range ParseIDs(values) {
		set[id] = struct{}{}
	}
	return set
}
