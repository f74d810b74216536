package agent

import (
	"encoding/json"
	"io"
	"os"
)

// Message is a single entry in the conversation history supplied by the host.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NotificationType values for the notifications an agent emits.
const (
	TypeMessage   = "message"
	TypeCallAgent = "call_agent"
)

// Notification is the structured event an agent emits to its host.
type Notification struct {
	Type    string         `json:"type"`
	Content string         `json:"content,omitempty"`
	AgentID string         `json:"agent_id,omitempty"`
	Input   map[string]any `json:"input,omitempty"`
}

// HostChannel carries notifications from agent code to the host runtime.
type HostChannel interface {
	Emit(Notification) error
}

// WriterChannel emits each notification as one JSON line.
type WriterChannel struct {
	enc *json.Encoder
}

// NewWriterChannel returns a HostChannel writing JSON lines to w.
func NewWriterChannel(w io.Writer) *WriterChannel {
	return &WriterChannel{enc: json.NewEncoder(w)}
}

// Emit encodes the notification as a single JSON line.
func (c *WriterChannel) Emit(n Notification) error {
	return c.enc.Encode(n)
}

// Data holds the host-provided state a Context is built from.
type Data struct {
	EnvVars     map[string]string
	UserVars    map[string]string
	ChatHistory []Message
}

// Context exposes host state to agent code. It is constructed once by the
// host before any agent code runs and is read-only afterwards. The zero
// value is usable: accessors return empty containers and emits go to stdout.
type Context struct {
	data    Data
	channel HostChannel
}

// New returns a Context over the given host data, emitting notifications on
// channel. A nil channel falls back to JSON lines on stdout.
func New(data Data, channel HostChannel) *Context {
	return &Context{data: data, channel: channel}
}

// EnvVars returns a copy of the environment variables for this run.
func (c *Context) EnvVars() map[string]string {
	if c == nil {
		return map[string]string{}
	}
	return copyMap(c.data.EnvVars)
}

// UserVars returns a copy of the user variables for this run.
func (c *Context) UserVars() map[string]string {
	if c == nil {
		return map[string]string{}
	}
	return copyMap(c.data.UserVars)
}

// ChatHistory returns a copy of the conversation history for this run.
func (c *Context) ChatHistory() []Message {
	if c == nil || len(c.data.ChatHistory) == 0 {
		return []Message{}
	}
	out := make([]Message, len(c.data.ChatHistory))
	copy(out, c.data.ChatHistory)
	return out
}

// SendMessage emits a "message" notification with the given content.
// Fire-and-forget: any host response arrives out of band.
func (c *Context) SendMessage(text string) error {
	return c.emit(Notification{Type: TypeMessage, Content: text})
}

// CallAgent emits a "call_agent" notification addressed to agentID with the
// given input payload. Fire-and-forget.
func (c *Context) CallAgent(agentID string, input map[string]any) error {
	return c.emit(Notification{Type: TypeCallAgent, AgentID: agentID, Input: input})
}

func (c *Context) emit(n Notification) error {
	if c == nil || c.channel == nil {
		return NewWriterChannel(os.Stdout).Emit(n)
	}
	return c.channel.Emit(n)
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
