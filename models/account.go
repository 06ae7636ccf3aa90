package models

// Contact is one entry of the account's contact list.
type Contact struct {
	NSID     string
	Username string
	RealName string
	Family   bool
	Friend   bool
	Ignored  bool
}

// Favorite is a photo of another member that the account marked as favorite.
type Favorite struct {
	PhotoID string
	Owner   string
	Title   string
}

// Group is a public group the account belongs to.
type Group struct {
	NSID  string
	Name  string
	Admin bool
	Adult bool
}
