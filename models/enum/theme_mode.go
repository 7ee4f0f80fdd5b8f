package enum

// ThemeMode 表示網站的顯示主題
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
)

// Valid reports whether the value is a known theme. Unknown persisted values
// are treated as unset, never as an error.
func (m ThemeMode) Valid() bool {
	return m == ThemeModeLight || m == ThemeModeDark
}
