package render

type Renderer interface {
	RenderList(view ListView) string
	RenderStats(view StatsView) string
}

type ListView struct {
	Items []ListItem
	Empty string
}

// ListItem is one console or game line. Detail holds tags for consoles and
// developer/publisher for games.
type ListItem struct {
	Name     string
	Detail   string
	Owned    bool
	Wishlist bool
	Favorite bool
}

func (v ListView) IsEmpty() bool {
	return len(v.Items) == 0
}

type StatsView struct {
	Label         string
	Total         int
	Owned         int
	Wishlist      int
	Favorite      int
	Completion    float64
	HasCompletion bool
}
