// room_inspect prints the archived chat or plays of a room, newest first,
// or searches its chat index.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"room-bot/repositories"
	"strconv"
	"strings"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	_ = godotenv.Load()
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromString("ERROR")
	var header []string
	var rows [][]string
	switch cfg.Kind {
	case "chat":
		chats, _, err := repositories.NewChatRepository(db, logger, &cfg.Limit).GetChats(cfg.Room, nil)
		if err != nil {
			log.Fatal(err)
		}
		header, rows = chatHeader, chatRows(chats, cfg.Colours)
	case "play":
		plays, _, err := repositories.NewPlayRepository(db, logger, &cfg.Limit).GetPlays(cfg.Room, nil)
		if err != nil {
			log.Fatal(err)
		}
		header, rows = playHeader, playRows(plays, cfg.Colours)
	case "search":
		if cfg.BlugeFilepath == "" || cfg.Query == "" {
			log.Fatal("INSPECT_KIND=search needs BLUGE_FILEPATH and INSPECT_QUERY")
		}
		reader, err := bluge.OpenReader(bluge.DefaultConfig(cfg.BlugeFilepath))
		if err != nil {
			log.Fatal("Error while opening Bluge: ", err)
		}
		defer reader.Close()
		hits, err := repositories.SearchReader(context.Background(), reader, cfg.Room, cfg.Query, cfg.Limit)
		if err != nil {
			log.Fatal(err)
		}
		header, rows = searchHeader, searchRows(hits, cfg.Query, cfg.Colours)
	default:
		log.Fatalf("Unknown INSPECT_KIND %q, expected chat, play or search", cfg.Kind)
	}
	render(os.Stdout, header, rows)
}

var (
	chatHeader   = []string{"At", "Chat ID", "User", "Type", "Message", "Deleted"}
	playHeader   = []string{"Started", "DJ", "Title", "Duration", "Woots", "Mehs", "Grabs"}
	searchHeader = []string{"Score", "Chat ID", "User", "Message"}
)

func chatRows(chats []repositories.DiskChat, colours bool) [][]string {
	rows := make([][]string, 0, len(chats))
	for _, c := range chats {
		deleted := ""
		if c.Deleted {
			deleted = fmt.Sprintf("by %d at %s", c.DeletedBy, c.DeletedAt.Format("15:04:05"))
			if colours {
				deleted = color.Red.Render(deleted)
			}
		}
		rows = append(rows, []string{
			c.At.Format("15:04:05"),
			c.ChatID,
			fmt.Sprintf("%s (%d)", c.Username, c.UserID),
			c.Type,
			c.Message,
			deleted,
		})
	}
	return rows
}

func playRows(plays []repositories.DiskPlay, colours bool) [][]string {
	rows := make([][]string, 0, len(plays))
	for _, p := range plays {
		mehs := strconv.Itoa(p.Mehs)
		if colours && p.Mehs > p.Woots {
			mehs = color.Yellow.Render(mehs)
		}
		rows = append(rows, []string{
			p.StartedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%s (%d)", p.DJName, p.DJID),
			p.Title,
			fmt.Sprintf("%ds", p.Duration),
			strconv.Itoa(p.Woots),
			mehs,
			strconv.Itoa(p.Grabs),
		})
	}
	return rows
}

func searchRows(hits []repositories.SearchHit, query string, colours bool) [][]string {
	rows := make([][]string, 0, len(hits))
	for _, h := range hits {
		message := h.Message
		if colours {
			message = highlight(message, query)
		}
		rows = append(rows, []string{
			strconv.FormatFloat(h.Score, 'f', 2, 64),
			h.ChatID,
			h.Username,
			message,
		})
	}
	return rows
}

// highlight colours every word of the message that appears in the query.
func highlight(message, query string) string {
	terms := lo.SliceToMap(strings.Fields(strings.ToLower(query)), func(t string) (string, struct{}) {
		return t, struct{}{}
	})
	words := strings.Fields(message)
	for i, w := range words {
		if _, ok := terms[strings.ToLower(w)]; ok {
			words[i] = color.Green.Render(w)
		}
	}
	return strings.Join(words, " ")
}

func render(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}
