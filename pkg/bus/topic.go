package bus

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Topic kinds. Commands are inputs to the plugin; events are its outputs.
const (
	KindCommand = "cmd"
	KindEvent   = "evt"
)

// Producer is the fixed producer segment for every topic this plugin
// publishes or subscribes to.
const Producer = "omniintelligence"

// DLQSuffix is appended to a topic to form its dead-letter topic.
const DLQSuffix = ".dlq"

// Topic is a parsed bus topic: {env}.onex.{kind}.{producer}.{name}.v{version}.
type Topic struct {
	Env      string
	Kind     string
	Producer string
	Name     string
	Version  int
	DLQ      bool
}

// String renders the topic back to its wire form.
func (t Topic) String() string {
	s := fmt.Sprintf("%s.onex.%s.%s.%s.v%d", t.Env, t.Kind, t.Producer, t.Name, t.Version)
	if t.DLQ {
		s += DLQSuffix
	}
	return s
}

// CommandTopic builds a v1 command topic for the given event name.
func CommandTopic(env, name string) string {
	return Topic{Env: env, Kind: KindCommand, Producer: Producer, Name: name, Version: 1}.String()
}

// EventTopic builds a v1 event topic for the given event name.
func EventTopic(env, name string) string {
	return Topic{Env: env, Kind: KindEvent, Producer: Producer, Name: name, Version: 1}.String()
}

// DLQTopic returns the dead-letter topic for the given topic. Applying it
// to a topic that is already a DLQ returns the topic unchanged so failures
// never recurse into .dlq.dlq.
func DLQTopic(topic string) string {
	if strings.HasSuffix(topic, DLQSuffix) {
		return topic
	}
	return topic + DLQSuffix
}

// ParseTopic validates a topic string against the grammar and returns its
// parts.
func ParseTopic(s string) (Topic, error) {
	var t Topic
	base := s
	if strings.HasSuffix(base, DLQSuffix) {
		t.DLQ = true
		base = strings.TrimSuffix(base, DLQSuffix)
	}

	parts := strings.Split(base, ".")
	if len(parts) != 6 {
		return Topic{}, fmt.Errorf("%w: expected 6 segments, got %d in %q", ErrInvalidTopic, len(parts), s)
	}
	if parts[1] != "onex" {
		return Topic{}, fmt.Errorf("%w: second segment must be 'onex' in %q", ErrInvalidTopic, s)
	}
	if parts[2] != KindCommand && parts[2] != KindEvent {
		return Topic{}, fmt.Errorf("%w: kind must be cmd or evt in %q", ErrInvalidTopic, s)
	}

	var version int
	if _, err := fmt.Sscanf(parts[5], "v%d", &version); err != nil || version < 1 {
		return Topic{}, fmt.Errorf("%w: bad version segment %q in %q", ErrInvalidTopic, parts[5], s)
	}

	t.Env = parts[0]
	t.Kind = parts[2]
	t.Producer = parts[3]
	t.Name = parts[4]
	t.Version = version
	return t, nil
}

// PartitionFor maps a partition key to a partition index. An empty key
// hashes to partition 0 so keyless messages still have a stable home.
func PartitionFor(key string, partitions int) int {
	if partitions <= 1 || key == "" {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(partitions))
}

// NotifyChannel derives the pg_notify channel name for a topic. Postgres
// channel identifiers are quoted by the listener, so dots are legal, but a
// fixed prefix keeps bus traffic distinct from any other NOTIFY user on
// the same database.
func NotifyChannel(topic string) string {
	return "bus:" + topic
}
