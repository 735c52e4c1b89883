package gamecode

// FragmentSet holds the three independently editable parts of a game.
type FragmentSet struct {
	Markup string `json:"markup"`
	Styles string `json:"styles"`
	Script string `json:"script"`
}

// IsEmpty reports whether no fragment has any content.
func (f FragmentSet) IsEmpty() bool {
	return f.Markup == "" && f.Styles == "" && f.Script == ""
}
