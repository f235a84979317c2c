package tasklist

// Display receives the minimal structural change after each successful operation.
// Indexes are zero-based positions in the controller's ordered list.
type Display interface {
	Reload()
	InsertRow(index int)
	UpdateRow(index int)
	RemoveRow(index int)
}

// NopDisplay ignores every notification
type NopDisplay struct{}

func (NopDisplay) Reload()       {}
func (NopDisplay) InsertRow(int) {}
func (NopDisplay) UpdateRow(int) {}
func (NopDisplay) RemoveRow(int) {}
