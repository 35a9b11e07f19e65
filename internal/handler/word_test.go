package handler

import (
	"testing"
	"time"

	"vocabtracker/internal/domain"
	"vocabtracker/internal/middleware"
	"vocabtracker/internal/service"
	"vocabtracker/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// openDraft opens the dialog and answers the foreign and English steps
func openDraft(t *testing.T, h *Handler, foreign, english string) {
	t.Helper()
	require.NoError(t, h.handleAdd(newMessageContext("/add")))
	require.NoError(t, h.handleText(newMessageContext(foreign)))
	require.NoError(t, h.handleText(newMessageContext(english)))
	require.Equal(t, domain.StepPronunciation, h.GetSession(testUserID).Dialog.Step)
}

func TestHandleText_AddDialog(t *testing.T) {
	h, deps := newTestHandler(t, nil, 10)
	deps.expectSaves()

	openDraft(t, h, "gato", "cat")

	c := newMessageContext("GAH-toh")
	require.NoError(t, h.handleText(c))

	assert.Contains(t, c.lastSent(), "Saved")
	assert.Contains(t, c.lastSent(), "gato — cat [GAH-toh]")
	assert.Equal(t, 1, deps.words.Count())
	assert.False(t, h.GetSession(testUserID).Dialog.IsOpen())
	deps.state.AssertNumberOfCalls(t, "Save", 1)
}

func TestHandleText_SecondMessageWhileSavingAddsOnce(t *testing.T) {
	h, deps := newTestHandler(t, nil, 10)

	saving := make(chan struct{})
	release := make(chan struct{})
	deps.state.On("Save", testKey, mock.Anything).
		Run(func(mock.Arguments) {
			close(saving)
			<-release
		}).
		Return(nil).
		Once()

	openDraft(t, h, "gato", "cat")

	first := newMessageContext("GAH-toh")
	done := make(chan error, 1)
	go func() {
		done <- h.handleText(first)
	}()

	select {
	case <-saving:
	case <-time.After(5 * time.Second):
		t.Fatal("first submission never reached the repository")
	}

	// Same answer sent again while the first one is still being persisted
	second := newMessageContext("GAH-toh")
	require.NoError(t, h.handleText(second))
	assert.Equal(t, savingText, second.lastSent())

	close(release)
	require.NoError(t, <-done)

	assert.Contains(t, first.lastSent(), "Saved")
	assert.Equal(t, 1, deps.words.Count())
	deps.state.AssertNumberOfCalls(t, "Save", 1)
	assert.False(t, h.GetSession(testUserID).Dialog.Submitted())
}

func TestHandleText_ValidationSkipReopensDialog(t *testing.T) {
	h, deps := newTestHandler(t, nil, 10)
	deps.expectSaves()

	openDraft(t, h, "   ", "cat")

	c := newMessageContext(domain.SkipPronunciation)
	require.NoError(t, h.handleText(c))

	assert.Contains(t, c.lastSent(), "can't be empty")
	assert.Equal(t, 0, deps.words.Count())
	deps.state.AssertNotCalled(t, "Save", testKey, mock.Anything)

	session := h.GetSession(testUserID)
	assert.True(t, session.Dialog.IsOpen())
	assert.Equal(t, domain.StepForeign, session.Dialog.Step)
	assert.Equal(t, "cat", session.Dialog.Draft.English)

	require.NoError(t, h.handleText(newMessageContext("gato")))
	require.NoError(t, h.handleText(newMessageContext("cat")))
	require.NoError(t, h.handleText(newMessageContext(domain.SkipPronunciation)))

	assert.Equal(t, 1, deps.words.Count())
	assert.False(t, h.GetSession(testUserID).Dialog.IsOpen())
}

func TestHandleText_OutsideDialogSearches(t *testing.T) {
	stored := []byte(`[{"id":1,"foreign":"gato","english":"cat"},{"id":2,"foreign":"perro","english":"dog"}]`)
	h, _ := newTestHandler(t, stored, 10)

	c := newMessageContext("  CAT ")
	require.NoError(t, h.handleText(c))

	assert.Equal(t, "CAT", h.GetSession(testUserID).Browse.Term)
	assert.Contains(t, c.lastSent(), "1. gato — cat")
	assert.NotContains(t, c.lastSent(), "perro")
}

func TestHandleText_IgnoresCommands(t *testing.T) {
	h, deps := newTestHandler(t, nil, 10)

	c := newMessageContext("/unknown")
	require.NoError(t, h.handleText(c))

	assert.Empty(t, c.sent)
	deps.members.AssertNotCalled(t, "EnsureMember", testUserID, testUsername)
}

func TestHandleCancel_DropsDraft(t *testing.T) {
	h, deps := newTestHandler(t, nil, 10)

	openDraft(t, h, "gato", "cat")

	c := newCallbackContext("cancel")
	require.NoError(t, h.handleCancel(c))

	assert.False(t, h.GetSession(testUserID).Dialog.IsOpen())
	assert.Equal(t, mainMenuText, c.lastEdited())
	assert.Equal(t, []string{"Cancelled"}, c.responses)
	deps.state.AssertNotCalled(t, "Save", testKey, mock.Anything)
}

func TestUnauthorizedMemberGetsPasswordPrompt(t *testing.T) {
	members := new(testutil.MockMemberRepository)
	members.On("EnsureMember", testUserID, testUsername).Return(nil)
	members.On("IsAuthorized", testUserID).Return(false, nil)
	members.On("Authorize", testUserID).Return(nil)

	h := NewHandler(nil, service.NewAuthService(members, "secret"), nil, testutil.NewTestLogger())

	start := newMessageContext("/start")
	require.NoError(t, h.handleStart(start))
	assert.Equal(t, middleware.PasswordPrompt, start.lastSent())

	wrong := newMessageContext("guess")
	require.NoError(t, h.handleText(wrong))
	assert.Contains(t, wrong.lastSent(), "Wrong password")

	right := newMessageContext("secret")
	require.NoError(t, h.handleText(right))
	assert.Contains(t, right.lastSent(), "Access granted")
	members.AssertCalled(t, "Authorize", testUserID)
}
