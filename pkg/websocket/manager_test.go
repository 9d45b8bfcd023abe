package websocket

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWithoutRegisteredClient(t *testing.T) {
	m := NewManager()

	ok := m.Send("ghost", []byte("hello"))
	assert.False(t, ok)
	assert.False(t, m.IsOnline("ghost"))
}

func TestSendDeliversToRegisteredClient(t *testing.T) {
	m := NewManager()
	client := NewClient("alice", nil, 8)
	m.Register(client)

	ok := m.Send("alice", []byte("hello"))
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), <-client.Send)
}

func TestRegisterReplacesExistingChannel(t *testing.T) {
	m := NewManager()
	old := NewClient("alice", nil, 8)
	m.Register(old)

	fresh := NewClient("alice", nil, 8)
	m.Register(fresh)
	assert.Equal(t, 1, m.OnlineCount())

	// delivery goes to the newest connection only
	require.True(t, m.Send("alice", []byte("hi")))
	assert.Equal(t, []byte("hi"), <-fresh.Send)
	assert.Empty(t, old.Send)
}

func TestUnregisterOldConnectionKeepsNewMapping(t *testing.T) {
	m := NewManager()
	old := NewClient("alice", nil, 8)
	m.Register(old)
	fresh := NewClient("alice", nil, 8)
	m.Register(fresh)

	// the old connection's deferred cleanup must not kick out the new one
	m.Unregister(old)
	assert.True(t, m.IsOnline("alice"))

	m.Unregister(fresh)
	assert.False(t, m.IsOnline("alice"))
}

func TestSendWithFullBufferDropsMapping(t *testing.T) {
	m := NewManager()
	client := NewClient("alice", nil, 1)
	m.Register(client)

	require.True(t, m.Send("alice", []byte("first")))

	// buffer full: message dropped and mapping removed, no blocking
	assert.False(t, m.Send("alice", []byte("second")))
	assert.False(t, m.IsOnline("alice"))
}

func TestSendDuringDisconnectDoesNotPanic(t *testing.T) {
	m := NewManager()

	// a notify can be in flight while the disconnect cleanup runs
	// Unregister and Close; the Send channel is never closed, so the
	// late channel send lands in a garbage channel instead of panicking
	for i := 0; i < 1000; i++ {
		client := NewClient("alice", nil, 1)
		m.Register(client)

		var wg sync.WaitGroup
		wg.Add(2)
		start := make(chan struct{})
		go func() {
			defer wg.Done()
			<-start
			m.Send("alice", []byte("new match"))
		}()
		go func() {
			defer wg.Done()
			<-start
			m.Unregister(client)
			client.Close()
		}()
		close(start)
		wg.Wait()
	}

	assert.False(t, m.IsOnline("alice"))
}

func TestClientCloseSignalsDone(t *testing.T) {
	client := NewClient("alice", nil, 1)

	select {
	case <-client.Done():
		t.Fatal("done closed before Close")
	default:
	}

	client.Close()
	select {
	case <-client.Done():
	default:
		t.Fatal("done not closed after Close")
	}
}

func TestConcurrentRegisterAndSend(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		username := fmt.Sprintf("user%d", i%10)
		go func() {
			defer wg.Done()
			m.Register(NewClient(username, nil, 64))
		}()
		go func() {
			defer wg.Done()
			m.Send(username, []byte("ping"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, m.OnlineCount())
}
