package entities

// SettingFilter narrows a settings catalog listing. Zero values mean "no
// constraint".
type SettingFilter struct {
	Shape    StoneShape
	Metal    MetalType
	MinPrice float64
	MaxPrice float64
}

// StoneFilter narrows a stones catalog listing. Zero values mean "no
// constraint".
type StoneFilter struct {
	Shape    StoneShape
	MinCarat float64
	MaxCarat float64
	MinPrice float64
	MaxPrice float64
	Cut      string
	Color    string
	Clarity  string
	Lab      string
}
