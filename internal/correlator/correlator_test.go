package correlator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fsevents/internal/event"
)

type recordingSink struct {
	actions []event.Action
}

func (s *recordingSink) Emit(action event.Action) {
	s.actions = append(s.actions, action)
}

type MockSink struct {
	mock.Mock
}

func (m *MockSink) Emit(action event.Action) {
	m.Called(action)
}

func del(ts int64, path, sig string) event.Event {
	return event.Event{Kind: event.Delete, Timestamp: ts, Path: path, Signature: sig}
}

func add(ts int64, path, sig string) event.Event {
	return event.Event{Kind: event.Create, Timestamp: ts, Path: path, Signature: sig}
}

const dir = event.DirectorySignature

type emitted struct {
	Kind    event.ActionKind
	Type    string
	Details string
}

func run(t *testing.T, events ...event.Event) ([]emitted, Stats) {
	t.Helper()

	sink := &recordingSink{}
	c, err := New(sink, Config{})
	require.NoError(t, err)

	for _, e := range events {
		require.NoError(t, c.Ingest(e))
	}
	require.NoError(t, c.Finalize())

	out := make([]emitted, 0, len(sink.actions))
	for _, a := range sink.actions {
		out = append(out, emitted{Kind: a.Kind, Type: a.Event.FileType(), Details: a.Details})
	}
	return out, c.Stats()
}

func TestCorrelator_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		events   []event.Event
		expected []emitted
	}{
		{
			name:     "File renamed in place",
			events:   []event.Event{del(1, "/a/x", "AAAAAAAA"), add(2, "/a/y", "AAAAAAAA")},
			expected: []emitted{{event.Renamed, "file", "/a/x to /a/y"}},
		},
		{
			name:     "File moved to another directory",
			events:   []event.Event{del(1, "/a/x", "AAAAAAAA"), add(2, "/b/x", "AAAAAAAA")},
			expected: []emitted{{event.Moved, "file", "/a/x to /b/x"}},
		},
		{
			name: "Directory renamed with its content",
			events: []event.Event{
				del(1, "/dir", dir),
				del(2, "/dir/f", "BBBBBBBB"),
				add(3, "/dir2", dir),
				add(4, "/dir2/f", "BBBBBBBB"),
			},
			expected: []emitted{{event.Renamed, "dir", "/dir to /dir2"}},
		},
		{
			name: "Directory moved with its content",
			events: []event.Event{
				del(1, "/a/dir", dir),
				del(2, "/a/dir/f", "BBBBBBBB"),
				del(3, "/a/dir/g", "CCCCCCCC"),
				add(4, "/b/dir", dir),
				add(5, "/b/dir/f", "BBBBBBBB"),
				add(6, "/b/dir/g", "CCCCCCCC"),
			},
			expected: []emitted{{event.Moved, "dir", "/a/dir to /b/dir"}},
		},
		{
			name:     "Lone create",
			events:   []event.Event{add(1, "/new", "CCCCCCCC")},
			expected: []emitted{{event.Added, "file", "/new"}},
		},
		{
			name:     "Lone delete",
			events:   []event.Event{del(1, "/old", "CCCCCCCC")},
			expected: []emitted{{event.Deleted, "file", "/old"}},
		},
		{
			name:     "Deleted directory hides orphan child",
			events:   []event.Event{del(1, "/dir", dir), del(2, "/dir/orphan", "DDDDDDDD")},
			expected: []emitted{{event.Deleted, "dir", "/dir"}},
		},
		{
			name: "Deleted directory hides every direct child",
			events: []event.Event{
				del(1, "/dir", dir),
				del(2, "/dir/a", "AAAAAAAA"),
				del(3, "/dir/b", "BBBBBBBB"),
			},
			expected: []emitted{{event.Deleted, "dir", "/dir"}},
		},
		{
			name: "Unmatched child reported after directory rename",
			events: []event.Event{
				del(1, "/d", dir),
				del(2, "/d/a", "AAAAAAAA"),
				del(3, "/d/b", "BBBBBBBB"),
				add(4, "/e", dir),
				add(5, "/e/a", "AAAAAAAA"),
			},
			expected: []emitted{
				{event.Renamed, "dir", "/d to /e"},
				{event.Deleted, "file", "/d/b"},
			},
		},
		{
			name:     "Empty directory renamed",
			events:   []event.Event{del(1, "/a/x", "AAAAAAAA"), del(2, "/d", dir), add(3, "/d2", dir)},
			expected: []emitted{{event.Deleted, "file", "/a/x"}, {event.Renamed, "dir", "/d to /d2"}},
		},
		{
			name: "Relative path mismatch falls back to plain actions",
			events: []event.Event{
				del(1, "/d", dir),
				del(2, "/d/a", "AAAAAAAA"),
				add(3, "/e", dir),
				add(4, "/e/b", "AAAAAAAA"),
			},
			expected: []emitted{
				{event.Deleted, "dir", "/d"},
				{event.Added, "dir", "/e"},
				{event.Added, "file", "/e/b"},
			},
		},
		{
			name:     "Unrelated create flushes pending delete",
			events:   []event.Event{del(1, "/a/x", "AAAAAAAA"), add(2, "/b/y", "BBBBBBBB")},
			expected: []emitted{{event.Deleted, "file", "/a/x"}, {event.Added, "file", "/b/y"}},
		},
		{
			name:     "Directory create after file delete is not a continuation",
			events:   []event.Event{del(1, "/a/x", "AAAAAAAA"), add(2, "/newdir", dir)},
			expected: []emitted{{event.Deleted, "file", "/a/x"}, {event.Added, "dir", "/newdir"}},
		},
		{
			name: "Copies after delete are replayed",
			events: []event.Event{
				del(1, "/a/x", "AAAAAAAA"),
				add(2, "/a/y", "AAAAAAAA"),
				add(3, "/a/z", "AAAAAAAA"),
			},
			expected: []emitted{
				{event.Deleted, "file", "/a/x"},
				{event.Added, "file", "/a/y"},
				{event.Added, "file", "/a/z"},
			},
		},
		{
			name: "Two independent renames",
			events: []event.Event{
				del(1, "/a/x", "AAAAAAAA"),
				add(2, "/a/y", "AAAAAAAA"),
				del(3, "/b/x", "BBBBBBBB"),
				add(4, "/c/x", "BBBBBBBB"),
			},
			expected: []emitted{
				{event.Renamed, "file", "/a/x to /a/y"},
				{event.Moved, "file", "/b/x to /c/x"},
			},
		},
		{
			name:     "Nested file delete after resolved directory delete is implied",
			events:   []event.Event{del(1, "/d", dir), del(2, "/d/sub/f", "AAAAAAAA")},
			expected: []emitted{{event.Deleted, "dir", "/d"}},
		},
		{
			name:     "Sibling with shared name prefix is not implied",
			events:   []event.Event{del(1, "/d", dir), del(2, "/dx/f", "AAAAAAAA")},
			expected: []emitted{{event.Deleted, "dir", "/d"}, {event.Deleted, "file", "/dx/f"}},
		},
		{
			name:     "Empty input",
			events:   nil,
			expected: []emitted{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := run(t, tt.events...)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, stats.Ingested, stats.Consumed+stats.Suppressed)
			assert.Equal(t, int64(len(tt.events)), stats.Ingested)
		})
	}
}

func TestCorrelator_StatsPartition(t *testing.T) {
	_, stats := run(t,
		del(1, "/d", dir),
		del(2, "/d/a", "AAAAAAAA"),
		del(3, "/d/b", "BBBBBBBB"),
		add(4, "/e", dir),
		add(5, "/e/a", "AAAAAAAA"),
		del(6, "/x", dir),
		del(7, "/x/y/z", "CCCCCCCC"),
	)

	assert.Equal(t, int64(7), stats.Ingested)
	assert.Equal(t, int64(3), stats.Actions)
	assert.Equal(t, int64(6), stats.Consumed)
	assert.Equal(t, int64(1), stats.Suppressed)
	assert.Equal(t, int64(2), stats.Groups)
}

func TestCorrelator_Totality(t *testing.T) {
	paths := []string{"/a", "/a/x", "/a/y", "/b", "/b/x", "/a/b", "/a/b/x", "/ab", "/ab/x"}
	sigs := []string{dir, "AAAAAAAA", "BBBBBBBB", "CCCCCCCC"}
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		n := rnd.Intn(12)
		events := make([]event.Event, 0, n)
		for j := 0; j < n; j++ {
			kind := event.Create
			if rnd.Intn(2) == 0 {
				kind = event.Delete
			}
			events = append(events, event.Event{
				Kind:      kind,
				Timestamp: int64(j),
				Path:      paths[rnd.Intn(len(paths))],
				Signature: sigs[rnd.Intn(len(sigs))],
			})
		}

		first, stats := run(t, events...)
		require.Equal(t, stats.Ingested, stats.Consumed+stats.Suppressed, "events: %v", events)
		require.Equal(t, int64(len(first)), stats.Actions)

		second, _ := run(t, events...)
		require.Equal(t, first, second, "output must be deterministic")
	}
}

func TestCorrelator_IngestAfterFinalize(t *testing.T) {
	c, err := New(&recordingSink{}, Config{})
	require.NoError(t, err)

	require.NoError(t, c.Finalize())
	assert.NoError(t, c.Finalize())
	assert.ErrorIs(t, c.Ingest(add(1, "/x", "AAAAAAAA")), ErrFinalized)
	assert.Equal(t, int64(0), c.Stats().Ingested)
}

func TestNew_NilSink(t *testing.T) {
	c, err := New(nil, Config{})
	assert.ErrorIs(t, err, ErrNilSink)
	assert.Nil(t, c)
}

func TestCorrelator_EmitsRepresentativeEvent(t *testing.T) {
	from := del(10, "/a/x", "AAAAAAAA")
	to := add(20, "/b/x", "AAAAAAAA")

	sink := new(MockSink)
	sink.On("Emit", event.Action{Kind: event.Moved, Event: from, Details: "/a/x to /b/x"}).Once()

	c, err := New(sink, Config{})
	require.NoError(t, err)
	require.NoError(t, c.Ingest(from))
	require.NoError(t, c.Ingest(to))

	// пара остается в буфере до финализации
	sink.AssertNotCalled(t, "Emit", mock.Anything)

	require.NoError(t, c.Finalize())
	sink.AssertExpectations(t)
}
