package views

// Dialog is the view model for the failure dialog.
type Dialog struct {
	Title       string
	Description string
}
