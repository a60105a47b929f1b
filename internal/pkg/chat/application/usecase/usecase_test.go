package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bazaar/internal/pkg/chat/application/port"
	chat "go-bazaar/internal/pkg/chat/domain"
	repository "go-bazaar/internal/pkg/chat/persistence/repository/port"
)

// fakeRepo is an in-memory MessageRepository. Messages keep insertion order,
// which doubles as timestamp order within a test.
type fakeRepo struct {
	messages []chat.Message
	nextID   int
	failSave bool
}

func (f *fakeRepo) SaveMessage(_ context.Context, m chat.Message) (*chat.Message, error) {
	if f.failSave {
		return nil, errors.New("store down")
	}
	f.nextID++
	m.ID = fmt.Sprintf("m%d", f.nextID)
	f.messages = append(f.messages, m)
	return &m, nil
}

func (f *fakeRepo) GetConversation(_ context.Context, a, b string, limit int) ([]chat.Message, error) {
	var out []chat.Message
	for i := len(f.messages) - 1; i >= 0 && len(out) < limit; i-- {
		m := f.messages[i]
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepo) BulkMarkRead(_ context.Context, senderID, receiverID string) error {
	for i := range f.messages {
		m := &f.messages[i]
		if m.SenderID == senderID && m.ReceiverID == receiverID {
			m.IsRead = true
		}
	}
	return nil
}

func (f *fakeRepo) GetMessage(_ context.Context, id string) (*chat.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			copied := m
			return &copied, nil
		}
	}
	return nil, repository.ErrMessageNotFound
}

func (f *fakeRepo) MarkMessageRead(_ context.Context, id string) error {
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages[i].IsRead = true
			return nil
		}
	}
	return repository.ErrMessageNotFound
}

func (f *fakeRepo) CountUnread(_ context.Context, userID string) (int, error) {
	count := 0
	for _, m := range f.messages {
		if m.ReceiverID == userID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) ListConversationSummaries(_ context.Context, userID string) ([]chat.ConversationSummary, error) {
	byCounterpart := map[string]*chat.ConversationSummary{}
	var order []string
	for i := len(f.messages) - 1; i >= 0; i-- {
		m := f.messages[i]
		var other string
		switch userID {
		case m.SenderID:
			other = m.ReceiverID
		case m.ReceiverID:
			other = m.SenderID
		default:
			continue
		}
		s, ok := byCounterpart[other]
		if !ok {
			s = &chat.ConversationSummary{UserID: other, LastMessage: m}
			byCounterpart[other] = s
			order = append(order, other)
		}
		if m.ReceiverID == userID && !m.IsRead {
			s.UnreadCount++
		}
	}
	out := make([]chat.ConversationSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byCounterpart[id])
	}
	return out, nil
}

type fakeDirectory struct {
	users map[string]port.UserRef
}

func (f *fakeDirectory) FindByID(_ context.Context, id string) (*port.UserRef, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, port.ErrUserNotFound
	}
	return &u, nil
}

type recordingNotifier struct {
	created []chat.Message
	read    [][2]string // counterpartID, readerID
}

func (n *recordingNotifier) MessageCreated(m chat.Message) {
	n.created = append(n.created, m)
}

func (n *recordingNotifier) MessagesRead(counterpartID, readerID string) {
	n.read = append(n.read, [2]string{counterpartID, readerID})
}

func fixture() (*fakeRepo, *fakeDirectory, *recordingNotifier) {
	repo := &fakeRepo{}
	dir := &fakeDirectory{users: map[string]port.UserRef{
		"u1": {ID: "u1", Username: "alice", Email: "alice@example.com"},
		"u2": {ID: "u2", Username: "bob", Email: "bob@example.com"},
	}}
	return repo, dir, &recordingNotifier{}
}

func TestSendMessage_PersistsThenNotifiesOnce(t *testing.T) {
	repo, dir, notifier := fixture()
	uc := NewSendMessageUseCase(repo, dir, notifier)

	msg, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:   "u1",
		SenderName: "alice",
		ReceiverID: "u2",
		Body:       "Hi, is it available?",
	})
	require.NoError(t, err)

	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "u1", msg.SenderID)
	assert.Equal(t, "u2", msg.ReceiverID)
	assert.Equal(t, "bob", msg.ReceiverName)
	assert.False(t, msg.IsRead)
	assert.False(t, msg.CreatedAt.IsZero())

	require.Len(t, repo.messages, 1)
	require.Len(t, notifier.created, 1, "exactly one broadcast per persisted message")
	assert.Equal(t, msg.ID, notifier.created[0].ID)
}

func TestSendMessage_ValidationFailuresMutateNothing(t *testing.T) {
	repo, dir, notifier := fixture()
	uc := NewSendMessageUseCase(repo, dir, notifier)

	cases := []SendMessageInput{
		{SenderID: "u1", SenderName: "alice", ReceiverID: "u2", Body: "   "},
		{SenderID: "u1", SenderName: "alice", ReceiverID: "u2", Body: strings.Repeat("x", chat.MaxBodyLength+1)},
		{SenderID: "u1", SenderName: "alice", ReceiverID: "", Body: "hello"},
	}
	for _, in := range cases {
		_, err := uc.Execute(context.Background(), in)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Empty(t, repo.messages)
	assert.Empty(t, notifier.created)
}

func TestSendMessage_UnknownReceiverPersistsNothing(t *testing.T) {
	repo, dir, notifier := fixture()
	uc := NewSendMessageUseCase(repo, dir, notifier)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID: "u1", SenderName: "alice", ReceiverID: "ghost", Body: "anyone there?",
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.messages)
	assert.Empty(t, notifier.created)
}

func TestSendMessage_StoreFailureSkipsBroadcast(t *testing.T) {
	repo, dir, notifier := fixture()
	repo.failSave = true
	uc := NewSendMessageUseCase(repo, dir, notifier)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID: "u1", SenderName: "alice", ReceiverID: "u2", Body: "hello",
	})
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, notifier.created, "no broadcast unless persistence succeeded")
}

func TestSendThenHistory_NewestEntryMatches(t *testing.T) {
	repo, dir, notifier := fixture()
	send := NewSendMessageUseCase(repo, dir, notifier)
	history := NewGetHistoryUseCase(repo, dir, notifier)

	seed := []string{"first", "second", "third"}
	for _, body := range seed {
		_, err := send.Execute(context.Background(), SendMessageInput{
			SenderID: "u1", SenderName: "alice", ReceiverID: "u2", Body: body,
		})
		require.NoError(t, err)
	}

	out, err := history.Execute(context.Background(), GetHistoryInput{
		RequesterID: "u1", CounterpartID: "u2",
	})
	require.NoError(t, err)
	require.Len(t, out.Messages, 3)
	assert.Equal(t, "first", out.Messages[0].Body, "oldest first")
	assert.Equal(t, "third", out.Messages[2].Body, "new entry is the newest")
	assert.Equal(t, "bob", out.Counterpart.Username)
}

func TestGetHistory_HonorsLimit(t *testing.T) {
	repo, dir, notifier := fixture()
	send := NewSendMessageUseCase(repo, dir, notifier)
	history := NewGetHistoryUseCase(repo, dir, notifier)

	for i := 0; i < 5; i++ {
		_, err := send.Execute(context.Background(), SendMessageInput{
			SenderID: "u1", SenderName: "alice", ReceiverID: "u2", Body: fmt.Sprintf("msg %d", i),
		})
		require.NoError(t, err)
	}

	out, err := history.Execute(context.Background(), GetHistoryInput{
		RequesterID: "u2", CounterpartID: "u1", Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, out.Messages, 2)
	assert.Equal(t, "msg 3", out.Messages[0].Body, "limit trims the oldest messages")
	assert.Equal(t, "msg 4", out.Messages[1].Body)
}

func TestGetHistory_CapsRequestedLimit(t *testing.T) {
	repo, dir, notifier := fixture()
	send := NewSendMessageUseCase(repo, dir, notifier)
	history := NewGetHistoryUseCase(repo, dir, notifier)

	for i := 0; i <= MaxHistoryLimit; i++ {
		_, err := send.Execute(context.Background(), SendMessageInput{
			SenderID: "u1", SenderName: "alice", ReceiverID: "u2", Body: fmt.Sprintf("msg %d", i),
		})
		require.NoError(t, err)
	}

	out, err := history.Execute(context.Background(), GetHistoryInput{
		RequesterID: "u2", CounterpartID: "u1", Limit: 1000000,
	})
	require.NoError(t, err)
	assert.Len(t, out.Messages, MaxHistoryLimit, "oversized limits are clamped")
}

func TestGetHistory_MarksReadAndNotifiesCounterpart(t *testing.T) {
	repo, dir, notifier := fixture()
	send := NewSendMessageUseCase(repo, dir, notifier)
	history := NewGetHistoryUseCase(repo, dir, notifier)
	unread := NewGetUnreadCountUseCase(repo)

	for i := 0; i < 3; i++ {
		_, err := send.Execute(context.Background(), SendMessageInput{
			SenderID: "u1", SenderName: "alice", ReceiverID: "u2", Body: "ping",
		})
		require.NoError(t, err)
	}

	count, err := unread.Execute(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = history.Execute(context.Background(), GetHistoryInput{
		RequesterID: "u2", CounterpartID: "u1",
	})
	require.NoError(t, err)

	count, err = unread.Execute(context.Background(), "u2")
	require.NoError(t, err)
	assert.Zero(t, count, "history fetch flips unread messages from the counterpart")

	require.NotEmpty(t, notifier.read)
	assert.Equal(t, [2]string{"u1", "u2"}, notifier.read[len(notifier.read)-1])
}

func TestGetHistory_UnknownCounterpart(t *testing.T) {
	repo, dir, notifier := fixture()
	history := NewGetHistoryUseCase(repo, dir, notifier)

	_, err := history.Execute(context.Background(), GetHistoryInput{
		RequesterID: "u1", CounterpartID: "ghost",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkConversationRead_Idempotent(t *testing.T) {
	repo, dir, notifier := fixture()
	send := NewSendMessageUseCase(repo, dir, notifier)
	markRead := NewMarkConversationReadUseCase(repo, notifier)
	unread := NewGetUnreadCountUseCase(repo)

	_, err := send.Execute(context.Background(), SendMessageInput{
		SenderID: "u1", SenderName: "alice", ReceiverID: "u2", Body: "hello",
	})
	require.NoError(t, err)

	in := MarkConversationReadInput{ReaderID: "u2", CounterpartID: "u1"}
	require.NoError(t, markRead.Execute(context.Background(), in))
	require.NoError(t, markRead.Execute(context.Background(), in))

	count, err := unread.Execute(context.Background(), "u2")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, [2]string{"u1", "u2"}, notifier.read[0])
}

func TestMarkMessageRead_OnlyReceiverMayFlip(t *testing.T) {
	repo, dir, notifier := fixture()
	send := NewSendMessageUseCase(repo, dir, notifier)
	markOne := NewMarkMessageReadUseCase(repo)

	msg, err := send.Execute(context.Background(), SendMessageInput{
		SenderID: "u1", SenderName: "alice", ReceiverID: "u2", Body: "hello",
	})
	require.NoError(t, err)

	err = markOne.Execute(context.Background(), MarkMessageReadInput{MessageID: msg.ID, ActorID: "u1"})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	require.NoError(t, markOne.Execute(context.Background(), MarkMessageReadInput{MessageID: msg.ID, ActorID: "u2"}))

	stored, err := repo.GetMessage(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)
}

func TestMarkMessageRead_UnknownMessage(t *testing.T) {
	repo, _, _ := fixture()
	markOne := NewMarkMessageReadUseCase(repo)

	err := markOne.Execute(context.Background(), MarkMessageReadInput{MessageID: "missing", ActorID: "u2"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListConversations_SummariesPerCounterpart(t *testing.T) {
	repo, dir, notifier := fixture()
	dir.users["u3"] = port.UserRef{ID: "u3", Username: "carol", Email: "carol@example.com"}
	send := NewSendMessageUseCase(repo, dir, notifier)
	list := NewListConversationsUseCase(repo)

	for _, m := range []struct{ from, to, body string }{
		{"u1", "u2", "hey bob"},
		{"u1", "u3", "hey carol"},
		{"u3", "u1", "hi alice"},
	} {
		_, err := send.Execute(context.Background(), SendMessageInput{
			SenderID: m.from, SenderName: "n", ReceiverID: m.to, Body: m.body,
		})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	summaries, err := list.Execute(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "u3", summaries[0].UserID, "most recent conversation first")
	assert.Equal(t, "hi alice", summaries[0].LastMessage.Body)
	assert.Equal(t, 1, summaries[0].UnreadCount)
	assert.Equal(t, "u2", summaries[1].UserID)
	assert.Zero(t, summaries[1].UnreadCount, "own outgoing messages are not unread")
}
