package websocket

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client 代表一个WebSocket连接的用户
// ConnID: 连接标识（仅用于日志）
// Conn: WebSocket连接，归属读写协程，Manager不直接操作
// Send: 推送通道，写协程消费后写入Conn
// Send永不关闭：关闭会与进行中的推送竞争（send on closed channel）
// 写协程通过done信号退出，残留通道交给GC

type Client struct {
	ConnID   uuid.UUID
	Username string
	Conn     *websocket.Conn
	Send     chan []byte
	done     chan struct{}
}

// NewClient 创建客户端
func NewClient(username string, conn *websocket.Conn, sendBuffer int) *Client {
	if sendBuffer <= 0 {
		sendBuffer = 256
	}
	return &Client{
		ConnID:   uuid.New(),
		Username: username,
		Conn:     conn,
		Send:     make(chan []byte, sendBuffer),
		done:     make(chan struct{}),
	}
}

// Close 通知写协程退出，连接断开时调用一次
func (c *Client) Close() {
	close(c.done)
}

// Done 写协程的退出信号
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Manager 管理所有在线用户的推送通道
// 每个用户名最多一条通道；重复注册时替换旧映射（旧连接由其读写协程自行关闭）
// 无离线缓存：用户不在线时消息直接丢弃

type Manager struct {
	clients map[string]*Client // 在线用户，按用户名索引
	lock    sync.RWMutex
}

// NewManager 创建连接管理器
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
	}
}

// Register 注册连接，同名旧连接的映射被替换
func (m *Manager) Register(client *Client) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.clients[client.Username] = client
}

// Unregister 移除连接映射
// 若该用户名已被更新的连接占用则不动（旧连接断开晚于新连接注册的情况）
func (m *Manager) Unregister(client *Client) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if c, ok := m.clients[client.Username]; ok && c.ConnID == client.ConnID {
		delete(m.clients, client.Username)
	}
}

// Send 推送消息给指定用户
// 返回是否找到通道并接受了消息；发送失败时移除映射
// 不排队：没有通道或缓冲已满（连接可能已死）都直接丢弃
func (m *Manager) Send(username string, payload []byte) bool {
	m.lock.RLock()
	client, ok := m.clients[username]
	m.lock.RUnlock()
	if !ok {
		return false
	}

	select {
	case client.Send <- payload:
		return true
	default:
		// 缓冲已满，连接大概率已断开，移除映射
		m.lock.Lock()
		if c, exists := m.clients[username]; exists && c.ConnID == client.ConnID {
			delete(m.clients, username)
		}
		m.lock.Unlock()
		return false
	}
}

// IsOnline 判断用户是否在线
func (m *Manager) IsOnline(username string) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.clients[username]
	return ok
}

// OnlineCount 当前在线连接数
func (m *Manager) OnlineCount() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.clients)
}
