package area

// GroupParent is the trimmed view of a parent area shown above its children.
type GroupParent struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Group is a parent area together with its selected children.
type Group struct {
	Parent   GroupParent `json:"parent"`
	Children []Area      `json:"children"`
}

// GroupByParents builds one group per parent id, in the order the ids are given.
// Unknown parents and parents without children are left out.
func GroupByParents[T any](areas []Area, parentIDs []T) []Group {
	groups := make([]Group, 0, len(parentIDs))
	for _, pid := range ParseIDs(parentIDs) {
		parent, ok := ByID(areas, pid)
		if !ok {
			continue
		}
		children := ByParentID(areas, pid)
		if len(children) == 0 {
			continue
		}
		groups = append(groups, Group{
			Parent:   GroupParent{ID: parent.ID, Name: parent.Name},
			Children: children,
		})
	}
	return groups
}
