package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"
)

func openIndex(t *testing.T) ChatIndex {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewChatIndex(writer, slog.Default())
}

func Test_Search_Is_Scoped_To_Room(t *testing.T) {
	req := require.New(t)
	index := openIndex(t)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// Given the same words said in two rooms
	lounge := diskChat("lounge", "c1", at)
	lounge.Message = "who is playing tonight"
	attic := diskChat("attic", "c2", at)
	attic.Message = "playing records tonight"
	other := diskChat("lounge", "c3", at)
	other.Message = "good morning"
	req.NoError(index.Index(lounge))
	req.NoError(index.Index(attic))
	req.NoError(index.Index(other))

	// When searching lounge
	hits, err := index.Search(context.Background(), "lounge", "tonight", 10)

	// Then only the lounge line matches
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("c1", hits[0].ChatID)
	req.Equal("alice", hits[0].Username)
	req.Equal("who is playing tonight", hits[0].Message)
}

func Test_Removed_Chat_Is_Not_Found(t *testing.T) {
	req := require.New(t)
	index := openIndex(t)
	chat := diskChat("lounge", "c1", time.Now())
	chat.Message = "buy cheap followers"

	// Given an indexed line
	req.NoError(index.Index(chat))

	// When it is removed
	req.NoError(index.Remove("lounge", "c1"))

	// Then a search misses it
	hits, err := index.Search(context.Background(), "lounge", "followers", 10)
	req.NoError(err)
	req.Empty(hits)
}

func Test_Reindex_Replaces_Line(t *testing.T) {
	req := require.New(t)
	index := openIndex(t)
	chat := diskChat("lounge", "c1", time.Now())
	chat.Message = "first draft"
	req.NoError(index.Index(chat))

	// When the same line is indexed again
	chat.Message = "second draft"
	req.NoError(index.Index(chat))

	// Then it is found once, with the latest text
	hits, err := index.Search(context.Background(), "lounge", "draft", 10)
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("second draft", hits[0].Message)
}
