package handler

import (
	"sync"
	"testing"

	"vocabtracker/internal/service"
	"vocabtracker/internal/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

const (
	testUserID   int64 = 42
	testUsername       = "tester"
	testKey            = "languageWords"
)

// fakeContext records what a handler sends. Methods the handlers never call
// fall through to the nil embedded Context.
type fakeContext struct {
	tele.Context

	sender   *tele.User
	text     string
	payload  string
	callback *tele.Callback

	mu        sync.Mutex
	sent      []interface{}
	edited    []interface{}
	responses []string
}

func newMessageContext(text string) *fakeContext {
	return &fakeContext{
		sender: &tele.User{ID: testUserID, Username: testUsername},
		text:   text,
	}
}

func newCallbackContext(data string) *fakeContext {
	return &fakeContext{
		sender:   &tele.User{ID: testUserID, Username: testUsername},
		callback: &tele.Callback{ID: "cb-1", Data: data},
	}
}

func (c *fakeContext) Sender() *tele.User       { return c.sender }
func (c *fakeContext) Text() string             { return c.text }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }

func (c *fakeContext) Message() *tele.Message {
	return &tele.Message{Text: c.text, Payload: c.payload}
}

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, what)
	return nil
}

func (c *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.edited = append(c.edited, what)
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	text := ""
	if len(resp) > 0 && resp[0] != nil {
		text = resp[0].Text
	}
	c.responses = append(c.responses, text)
	return nil
}

// lastSent returns the last text sent, or "" when nothing was sent as text
func (c *fakeContext) lastSent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sent) == 0 {
		return ""
	}
	text, _ := c.sent[len(c.sent)-1].(string)
	return text
}

// lastEdited returns the last text the callback message was edited to
func (c *fakeContext) lastEdited() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.edited) == 0 {
		return ""
	}
	text, _ := c.edited[len(c.edited)-1].(string)
	return text
}

type testDeps struct {
	members *testutil.MockMemberRepository
	state   *testutil.MockStateRepository
	words   *service.WordService
}

// newTestHandler wires a handler to mocked repositories with the given
// persisted list and an authorized member
func newTestHandler(t *testing.T, stored []byte, pageSize int) (*Handler, *testDeps) {
	t.Helper()

	members := new(testutil.MockMemberRepository)
	members.On("EnsureMember", testUserID, testUsername).Return(nil).Maybe()
	members.On("IsAuthorized", testUserID).Return(true, nil).Maybe()

	state := new(testutil.MockStateRepository)
	if stored == nil {
		state.On("Load", testKey).Return(nil, nil).Once()
	} else {
		state.On("Load", testKey).Return(stored, nil).Once()
	}

	words, err := service.NewWordService(state, service.WordOptions{
		Key:            testKey,
		PageSize:       pageSize,
		ExportFileName: "language_words.csv",
	}, testutil.NewTestLogger())
	require.NoError(t, err)

	auth := service.NewAuthService(members, "secret")
	h := NewHandler(nil, auth, words, testutil.NewTestLogger())
	return h, &testDeps{members: members, state: state, words: words}
}

// expectSaves accepts any number of persist calls
func (d *testDeps) expectSaves() {
	d.state.On("Save", testKey, mock.Anything).Return(nil).Maybe()
}
