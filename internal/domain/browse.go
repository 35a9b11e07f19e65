package domain

// BrowseSession is a member's position in the word list
type BrowseSession struct {
	Term string
	Page int
}

// NewBrowseSession starts on the first page of the unfiltered list
func NewBrowseSession() BrowseSession {
	return BrowseSession{Page: 1}
}

// SetTerm changes the search term and goes back to page 1,
// since the view changed under the user
func (b *BrowseSession) SetTerm(term string) {
	b.Term = term
	b.Page = 1
}

// GoTo moves to page clamped to [1, totalPages]
func (b *BrowseSession) GoTo(page, totalPages int) {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	b.Page = page
}

// Session holds everything the bot remembers about one member between updates
type Session struct {
	Dialog AddDialog
	Browse BrowseSession
}

// NewSession returns a session with a closed dialog and a fresh browse position
func NewSession() *Session {
	return &Session{
		Dialog: AddDialog{State: DialogClosed},
		Browse: NewBrowseSession(),
	}
}
